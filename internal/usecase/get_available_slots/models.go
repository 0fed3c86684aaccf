package get_available_slots

import (
	"time"

	"github.com/jneves25/barber-service/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	ProfessionalID int64     // ID мастера
	ServiceID      int64     // ID услуги, 0 если услуга еще не выбрана
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date           time.Time
	ProfessionalID int64
	ServiceID      int64
	Slots          []domain.TimeSlot // По возрастанию времени, может быть пустым
}

// Schedule настройки расписания салона
type Schedule struct {
	WorkingHours   domain.WorkingHours
	StepMinutes    int
	MaxAdvanceDays int // 0 = без ограничений
}

// DefaultSchedule возвращает расписание 09:00-19:00 с шагом 30 минут
func DefaultSchedule() Schedule {
	return Schedule{
		WorkingHours:   domain.DefaultWorkingHours(),
		StepMinutes:    domain.DefaultSlotStepMinutes,
		MaxAdvanceDays: domain.DefaultMaxAdvanceDays,
	}
}

// SlotParams входные данные генератора слотов
type SlotParams struct {
	WorkingHours domain.WorkingHours
	StepMinutes  int

	// ServiceDurationMinutes длительность выбранной услуги, 0 если неизвестна
	ServiceDurationMinutes int
	Bookings               []domain.BookedInterval
}
