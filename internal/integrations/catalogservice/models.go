package catalogservice

import (
	"github.com/jneves25/barber-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Service модель услуги из справочника
type Service struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
}

// ToDomain конвертирует в доменную модель
func (s *Service) ToDomain() *domain.Service {
	return &domain.Service{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// Professional модель мастера из справочника
type Professional struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Rating    float64 `json:"rating"`
}

// ToDomain конвертирует в доменную модель.
// Рейтинг вне [0, 5] обрезается до границ
func (p *Professional) ToDomain() *domain.Professional {
	rating := p.Rating
	if rating < 0 {
		rating = 0
	}
	if rating > domain.MaxProfessionalRating {
		rating = domain.MaxProfessionalRating
	}
	return &domain.Professional{
		ID:        p.ID,
		Name:      p.Name,
		Specialty: p.Specialty,
		Rating:    rating,
	}
}

// Product модель товара из справочника
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ToDomain конвертирует в доменную модель
func (p *Product) ToDomain() *domain.Product {
	return &domain.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}
