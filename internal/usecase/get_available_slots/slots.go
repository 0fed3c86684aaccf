package get_available_slots

import (
	"fmt"
	"time"

	"github.com/jneves25/barber-service/internal/domain"
	"github.com/jneves25/barber-service/pkg/types"
)

// GenerateSlots строит упорядоченный список слотов на дату.
// Функция чистая: результат зависит только от аргументов.
//
// Кандидаты идут от открытия с шагом StepMinutes, пока начало раньше закрытия.
// Если известна длительность услуги, слот должен успеть закончиться до закрытия.
// Для прошедшей даты список пуст. Для сегодняшней даты кандидаты раньше now
// (округленного вверх до границы шага) не генерируются вовсе.
func GenerateSlots(date, now time.Time, params SlotParams) ([]domain.TimeSlot, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	// Проверяем, что дата не в прошлом
	if isDateInPast(date, now) {
		return []domain.TimeSlot{}, nil
	}

	open := params.WorkingHours.OpenMinutes()
	closeAt := params.WorkingHours.CloseMinutes()

	first := open
	if isSameDay(date, now) {
		first = firstStartToday(open, params.StepMinutes, now)
	}

	slotLength := params.StepMinutes
	if params.ServiceDurationMinutes > 0 {
		slotLength = params.ServiceDurationMinutes
	}

	bookings := bookedMinutes(params.Bookings, params.StepMinutes)

	slots := make([]domain.TimeSlot, 0)
	for start := first; start < closeAt; start += params.StepMinutes {
		// Услуга должна закончиться не позже закрытия
		if params.ServiceDurationMinutes > 0 && start+params.ServiceDurationMinutes > closeAt {
			break
		}

		slotTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}

		slots = append(slots, domain.TimeSlot{
			Time:      slotTime,
			Available: !overlapsAny(start, start+slotLength, bookings),
		})
	}

	return slots, nil
}

// interval полуинтервал [start, end) в минутах от полуночи
type interval struct {
	start int
	end   int
}

// bookedMinutes переводит записи в интервалы минут.
// Запись без длительности занимает один шаг, нераспознанное время пропускается
func bookedMinutes(bookings []domain.BookedInterval, step int) []interval {
	result := make([]interval, 0, len(bookings))
	for _, booking := range bookings {
		start, err := booking.StartTime.Minutes()
		if err != nil {
			continue
		}
		duration := booking.DurationMinutes
		if duration <= 0 {
			duration = step
		}
		result = append(result, interval{start: start, end: start + duration})
	}
	return result
}

// overlapsAny проверяет пересечение [start, end) хотя бы с одной записью.
// Граничащие интервалы (конец одного ровно в начале другого) не пересекаются
func overlapsAny(start, end int, bookings []interval) bool {
	for _, b := range bookings {
		if b.start < end && b.end > start {
			return true
		}
	}
	return false
}

// firstStartToday возвращает первое начало слота не раньше now,
// выровненное по сетке open + k*step
func firstStartToday(open, step int, now time.Time) int {
	nowSeconds := now.Hour()*3600 + now.Minute()*60 + now.Second()
	openSeconds := open * 60
	if nowSeconds <= openSeconds {
		return open
	}

	stepSeconds := step * 60
	steps := (nowSeconds - openSeconds + stepSeconds - 1) / stepSeconds
	return open + steps*step
}

func validateParams(params SlotParams) error {
	if !params.WorkingHours.IsValid() {
		return fmt.Errorf("%w: working hours %d-%d", ErrInvalidSchedule, params.WorkingHours.OpenHour, params.WorkingHours.CloseHour)
	}
	if params.StepMinutes < domain.MinSlotStepMinutes || params.StepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: step must be between %d and %d minutes", ErrInvalidSchedule, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}
	if params.ServiceDurationMinutes < 0 {
		return fmt.Errorf("%w: service duration must not be negative", ErrInvalidSchedule)
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
