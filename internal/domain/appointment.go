package domain

import (
	"fmt"
	"time"

	"github.com/jneves25/barber-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusOpen      AppointmentStatus = "open"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValid returns true for known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusOpen, StatusCompleted:
		return true
	}
	return false
}

// Appointment is a client's booking of a service with a professional.
// It owns at most one order ledger (tab).
type Appointment struct {
	ID             int64
	ClientName     string
	ServiceID      int64
	ProfessionalID int64
	Date           time.Time
	StartTime      types.TimeString

	// DurationMinutes is denormalized from the service at booking time
	DurationMinutes int
	Status          AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPrimaryService returns true if the appointment was booked for a service
func (a *Appointment) HasPrimaryService() bool {
	return a.ServiceID > 0
}

// IsEditable returns true while the tab accepts changes without extra privileges
func (a *Appointment) IsEditable() bool {
	return a.Status == StatusOpen
}

// IsCompleted returns true if the appointment is closed
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// Open moves Pending -> Open
func (a *Appointment) Open() error {
	if a.Status != StatusPending {
		return fmt.Errorf("%w: cannot open appointment in status %s", ErrInvalidTransition, a.Status)
	}
	a.Status = StatusOpen
	return nil
}

// Complete moves Open -> Completed
func (a *Appointment) Complete() error {
	if a.Status != StatusOpen {
		return fmt.Errorf("%w: cannot complete appointment in status %s", ErrInvalidTransition, a.Status)
	}
	a.Status = StatusCompleted
	return nil
}

// Booking returns the interval this appointment occupies in the professional's day
func (a *Appointment) Booking() BookedInterval {
	return BookedInterval{
		StartTime:       a.StartTime,
		DurationMinutes: a.DurationMinutes,
	}
}

// BookedInterval is an existing booking as seen by slot generation
type BookedInterval struct {
	StartTime       types.TimeString
	DurationMinutes int
}
