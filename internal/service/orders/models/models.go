package models

import (
	"github.com/jneves25/barber-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Request модели

// CandidateRequest произвольная позиция заказа
type CandidateRequest struct {
	Kind      string          `json:"kind" validate:"required,oneof=service product"`
	Name      string          `json:"name" validate:"required,max=200"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// AddItemRequest запрос на добавление позиции.
// Задается ровно одно из полей: услуга из справочника, товар из справочника или произвольная позиция
type AddItemRequest struct {
	ServiceID *int64            `json:"serviceId,omitempty" validate:"omitempty,gt=0"`
	ProductID *int64            `json:"productId,omitempty" validate:"omitempty,gt=0"`
	Item      *CandidateRequest `json:"item,omitempty"`
}

// AdjustQuantityRequest запрос на изменение количества. Нулевой delta допустим и ничего не меняет
type AdjustQuantityRequest struct {
	Delta int `json:"delta" validate:"gte=-100000,lte=100000"`
}

// Response модели

// ItemResponse позиция заказа
type ItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Kind      string `json:"kind"`
	Subtotal  string `json:"subtotal"`
}

// TabResponse заказ записи с итоговой суммой
type TabResponse struct {
	AppointmentID int64          `json:"appointmentId"`
	Status        string         `json:"status"`
	Items         []ItemResponse `json:"items"`
	Total         string         `json:"total"`
}

// Методы конвертации

// FromDomainTab конвертирует запись и её позиции в DTO.
// Итог считается заново по переданным позициям
func FromDomainTab(appt *domain.Appointment, items []domain.OrderItem) *TabResponse {
	resp := &TabResponse{
		AppointmentID: appt.ID,
		Status:        string(appt.Status),
		Items:         make([]ItemResponse, len(items)),
		Total:         domain.TotalOf(items).StringFixed(2),
	}

	for i, item := range items {
		resp.Items[i] = ItemResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
			Kind:      string(item.Kind),
			Subtotal:  item.Subtotal().StringFixed(2),
		}
	}

	return resp
}
