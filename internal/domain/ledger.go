package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemKind distinguishes services from retail products on a tab
type ItemKind string

const (
	ItemKindService ItemKind = "service"
	ItemKindProduct ItemKind = "product"
)

// IsValid returns true for known kinds
func (k ItemKind) IsValid() bool {
	return k == ItemKindService || k == ItemKindProduct
}

// OrderItem is one line of a tab. Two items are the same line when Kind and Name match.
type OrderItem struct {
	ID        uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Kind      ItemKind
}

// Subtotal returns UnitPrice * Quantity
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i OrderItem) sameLine(kind ItemKind, name string) bool {
	return i.Kind == kind && i.Name == name
}

// ItemCandidate is what the caller wants to add to a tab
type ItemCandidate struct {
	Kind      ItemKind
	Name      string
	UnitPrice decimal.Decimal
}

// Validate checks the candidate before it reaches the ledger
func (c ItemCandidate) Validate() error {
	if !c.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidItem, c.Kind)
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if len(name) > MaxOrderItemNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidItem)
	}
	if c.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price must not be negative", ErrInvalidItem)
	}
	if !HasMoneyScale(c.UnitPrice) {
		return fmt.Errorf("%w: unit price has more than %d decimal places", ErrInvalidItem, MoneyScale)
	}
	return nil
}

// OrderLedger is the mutable set of items billed to one appointment.
// A ledger instance belongs to a single edit session and is not safe for concurrent use.
type OrderLedger struct {
	appointment *Appointment
	perms       PermissionChecker
	items       []OrderItem
}

// NewOrderLedger wraps the stored items of an appointment.
// perms is the capability check of the session editing the tab and may be nil.
func NewOrderLedger(appointment *Appointment, items []OrderItem, perms PermissionChecker) *OrderLedger {
	copied := make([]OrderItem, len(items))
	copy(copied, items)

	return &OrderLedger{
		appointment: appointment,
		perms:       perms,
		items:       copied,
	}
}

// Items returns a copy of the current items in insertion order
func (l *OrderLedger) Items() []OrderItem {
	out := make([]OrderItem, len(l.items))
	copy(out, l.items)
	return out
}

// Seed adds the appointment's primary service at quantity 1.
// Only applies to an empty ledger of an appointment with a primary service; returns whether it seeded.
func (l *OrderLedger) Seed(service *Service) bool {
	if service == nil || !l.appointment.HasPrimaryService() || len(l.items) > 0 {
		return false
	}
	l.items = append(l.items, OrderItem{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(service.Name),
		UnitPrice: service.Price,
		Quantity:  1,
		Kind:      ItemKindService,
	})
	return true
}

// AddItem merges the candidate into an existing line with the same (kind, name)
// or appends a new line with quantity 1
func (l *OrderLedger) AddItem(candidate ItemCandidate) ([]OrderItem, error) {
	if err := l.checkEditable(); err != nil {
		return nil, err
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(candidate.Name)
	for i := range l.items {
		if l.items[i].sameLine(candidate.Kind, name) {
			if l.items[i].Quantity >= MaxOrderItemQuantity {
				return nil, fmt.Errorf("%w: quantity would exceed %d", ErrInvalidItem, MaxOrderItemQuantity)
			}
			l.items[i].Quantity++
			return l.Items(), nil
		}
	}

	l.items = append(l.items, OrderItem{
		ID:        uuid.New(),
		Name:      name,
		UnitPrice: candidate.UnitPrice,
		Quantity:  1,
		Kind:      candidate.Kind,
	})
	return l.Items(), nil
}

// AdjustQuantity sets quantity to max(1, current+delta). Use RemoveItem to delete a line.
// A sum above MaxOrderItemQuantity is rejected, not clamped.
func (l *OrderLedger) AdjustQuantity(itemID uuid.UUID, delta int) ([]OrderItem, error) {
	if err := l.checkEditable(); err != nil {
		return nil, err
	}

	idx := l.indexOf(itemID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: id=%s", ErrItemNotFound, itemID)
	}

	current := l.items[idx].Quantity
	if delta > MaxOrderItemQuantity-current {
		return nil, fmt.Errorf("%w: quantity would exceed %d", ErrInvalidItem, MaxOrderItemQuantity)
	}

	quantity := current + delta
	if quantity < MinOrderItemQuantity {
		quantity = MinOrderItemQuantity
	}
	l.items[idx].Quantity = quantity

	return l.Items(), nil
}

// RemoveItem deletes the line regardless of its quantity
func (l *OrderLedger) RemoveItem(itemID uuid.UUID) ([]OrderItem, error) {
	if err := l.checkEditable(); err != nil {
		return nil, err
	}

	idx := l.indexOf(itemID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: id=%s", ErrItemNotFound, itemID)
	}

	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return l.Items(), nil
}

// Total returns the sum of UnitPrice * Quantity, recomputed on every call
func (l *OrderLedger) Total() decimal.Decimal {
	return TotalOf(l.items)
}

// TotalOf sums the subtotals of items
func TotalOf(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (l *OrderLedger) checkEditable() error {
	switch l.appointment.Status {
	case StatusOpen:
		return nil
	case StatusCompleted:
		if l.perms != nil && l.perms.HasPermission(PermissionManageOrders) {
			return nil
		}
		return fmt.Errorf("%w: %s is required to edit a completed appointment", ErrPermissionDenied, PermissionManageOrders)
	default:
		return ErrLedgerNotEditable
	}
}

func (l *OrderLedger) indexOf(itemID uuid.UUID) int {
	for i := range l.items {
		if l.items[i].ID == itemID {
			return i
		}
	}
	return -1
}
