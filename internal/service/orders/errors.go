package orders

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в справочнике
	ErrServiceNotFound = errors.New("service not found")

	// ErrProductNotFound возвращается, когда товар не найден в справочнике
	ErrProductNotFound = errors.New("product not found")

	// ErrItemNotFound возвращается, когда позиция заказа не найдена
	ErrItemNotFound = errors.New("order item not found")

	// ErrAccessDenied возвращается, когда для изменения завершенной записи нет прав
	ErrAccessDenied = errors.New("access denied")

	// ErrNotEditable возвращается при изменении заказа записи, которая еще не открыта
	ErrNotEditable = errors.New("order is not editable until the appointment is open")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid appointment status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
