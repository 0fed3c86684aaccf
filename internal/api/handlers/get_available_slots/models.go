package get_available_slots

import (
	"strconv"
	"time"

	"github.com/jneves25/barber-service/internal/domain"
	getAvailableSlots "github.com/jneves25/barber-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string          `json:"date"`
	ProfessionalID int64           `json:"professionalId"`
	ServiceID      *int64          `json:"serviceId,omitempty"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}

	out := &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		ProfessionalID: resp.ProfessionalID,
		Slots:          slots,
	}
	if resp.ServiceID > 0 {
		serviceID := resp.ServiceID
		out.ServiceID = &serviceID
	}
	return out
}

// ToUseCaseRequest создает запрос use case из query параметров.
// serviceId необязателен
func ToUseCaseRequest(professionalID int64, serviceIDStr, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	var serviceID int64
	if serviceIDStr != "" {
		serviceID, err = strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
	}

	return &getAvailableSlots.Request{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	}, nil
}
