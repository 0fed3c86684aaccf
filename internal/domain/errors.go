package domain

import "errors"

var (
	// ErrInvalidTransition возвращается при недопустимой смене статуса записи
	ErrInvalidTransition = errors.New("domain: invalid appointment status transition")

	// ErrLedgerNotEditable возвращается при попытке изменить заказ записи в статусе Pending
	ErrLedgerNotEditable = errors.New("domain: order is not editable until the appointment is open")

	// ErrPermissionDenied возвращается, когда для действия нужна дополнительная привилегия
	ErrPermissionDenied = errors.New("domain: permission denied")

	// ErrItemNotFound возвращается, когда позиция заказа не найдена
	ErrItemNotFound = errors.New("domain: order item not found")

	// ErrInvalidItem возвращается при некорректной позиции заказа
	ErrInvalidItem = errors.New("domain: invalid order item")

	// ErrInvalidPercentage возвращается, когда процент вне диапазона [0, 100]
	ErrInvalidPercentage = errors.New("domain: percentage must be between 0 and 100")

	// ErrInvalidFixedAmount возвращается, когда фиксированная сумма вне диапазона [0, цена услуги]
	ErrInvalidFixedAmount = errors.New("domain: fixed amount must be between 0 and the service price")

	// ErrInvalidRuleType возвращается при неизвестном типе правила комиссии
	ErrInvalidRuleType = errors.New("domain: unknown commission rule type")

	// ErrInvalidGoal возвращается при некорректных параметрах цели
	ErrInvalidGoal = errors.New("domain: invalid goal")
)
