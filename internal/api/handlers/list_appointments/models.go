package list_appointments

import (
	"errors"
	"time"

	"github.com/jneves25/barber-service/internal/domain"
	"github.com/jneves25/barber-service/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// date задает один день, from/to задают период; без параметров берется текущий день
func ToServiceRequest(professionalID int64, dateStr, fromStr, toStr, statusStr string, now time.Time) (*models.ListByProfessionalRequest, error) {
	req := &models.ListByProfessionalRequest{ProfessionalID: professionalID}

	switch {
	case dateStr != "":
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.From, req.To = date, date

	case fromStr != "" || toStr != "":
		if fromStr == "" || toStr == "" {
			return nil, errors.New("both from and to are required")
		}
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.From, req.To = from, to

	default:
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		req.From, req.To = today, today
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
