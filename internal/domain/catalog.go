package domain

import "github.com/shopspring/decimal"

// Service is a bookable service (haircut, beard trim...). Reference data.
type Service struct {
	ID              int64
	Name            string
	Price           decimal.Decimal
	DurationMinutes int
}

// Professional is a barber that performs services
type Professional struct {
	ID        int64
	Name      string
	Specialty string
	Rating    float64 // 0..5
}

// Product is a retail item that can be added to a tab
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// AsCandidate returns the ledger candidate representing this service
func (s *Service) AsCandidate() ItemCandidate {
	return ItemCandidate{Kind: ItemKindService, Name: s.Name, UnitPrice: s.Price}
}

// AsCandidate returns the ledger candidate representing this product
func (p *Product) AsCandidate() ItemCandidate {
	return ItemCandidate{Kind: ItemKindProduct, Name: p.Name, UnitPrice: p.Price}
}
