package models

import (
	"errors"
	"time"

	"github.com/jneves25/barber-service/internal/domain"
)

// MaxListPeriodDays максимальная длина периода выборки записей мастера
const MaxListPeriodDays = 92

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidPeriod возвращается при некорректном периоде
	ErrInvalidPeriod = errors.New("invalid period")
)

// Request модели

// ListByProfessionalRequest запрос записей мастера за период [From, To]
type ListByProfessionalRequest struct {
	ProfessionalID int64
	From           time.Time
	To             time.Time
	Status         *string // Фильтр по статусу (опционально)
}

// Validate проверяет период и статус
func (r *ListByProfessionalRequest) Validate() error {
	if r.To.Before(r.From) {
		return ErrInvalidPeriod
	}
	if r.To.Sub(r.From) > MaxListPeriodDays*24*time.Hour {
		return ErrInvalidPeriod
	}
	if r.Status != nil {
		if _, err := ToDomainStatus(*r.Status); err != nil {
			return err
		}
	}
	return nil
}

// Response модели

// AppointmentResponse запись к мастеру
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"clientName"`
	ProfessionalID  int64  `json:"professionalId"`
	ServiceID       *int64 `json:"serviceId,omitempty"`
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// Методы конвертации

// ToDomainStatus конвертирует строку в статус записи
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// FromDomainAppointment конвертирует доменную модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:              a.ID,
		ClientName:      a.ClientName,
		ProfessionalID:  a.ProfessionalID,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
	if a.HasPrimaryService() {
		serviceID := a.ServiceID
		resp.ServiceID = &serviceID
	}
	return resp
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(list)),
		Total:        len(list),
	}
	for i, a := range list {
		resp.Appointments[i] = *FromDomainAppointment(a)
	}
	return resp
}
