package goals

import "errors"

var (
	// ErrGoalNotFound возвращается, когда цель не найдена
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalAlreadyExists возвращается, когда у мастера уже есть цель на этот месяц
	ErrGoalAlreadyExists = errors.New("goal already exists for this month")

	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrAccessDenied возвращается, когда у пользователя нет права управлять целями
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
