package goal

import "errors"

var (
	// ErrGoalNotFound возвращается, когда цель не найдена
	ErrGoalNotFound = errors.New("goal.repository: goal not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("goal.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("goal.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("goal.repository: failed to scan row")
)
