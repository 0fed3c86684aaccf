package create_booking

import (
	"time"

	"github.com/jneves25/barber-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName     string           // Имя клиента
	ProfessionalID int64            // ID мастера
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ClientName      string
	ProfessionalID  int64
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice string

	CreatedAt time.Time
	UpdatedAt time.Time
}
