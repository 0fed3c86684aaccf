package domain

import "github.com/jneves25/barber-service/pkg/types"

// TimeSlot is a candidate appointment start time. Never persisted.
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}

// WorkingHours is the [Open, Close) range of whole hours the shop takes bookings in
type WorkingHours struct {
	OpenHour  int
	CloseHour int
}

// DefaultWorkingHours returns 09:00-19:00
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{OpenHour: DefaultOpenHour, CloseHour: DefaultCloseHour}
}

// IsValid returns true if 0 <= open < close <= 24
func (w WorkingHours) IsValid() bool {
	return w.OpenHour >= 0 && w.OpenHour < w.CloseHour && w.CloseHour <= 24
}

// OpenMinutes returns opening time as minutes since midnight
func (w WorkingHours) OpenMinutes() int {
	return w.OpenHour * 60
}

// CloseMinutes returns closing time as minutes since midnight
func (w WorkingHours) CloseMinutes() int {
	return w.CloseHour * 60
}
