package commission

import "errors"

var (
	// ErrConfigNotFound возвращается, когда у мастера нет общей конфигурации комиссии
	ErrConfigNotFound = errors.New("commission.repository: config not found")

	// ErrRuleNotFound возвращается, когда правило для услуги не найдено
	ErrRuleNotFound = errors.New("commission.repository: rule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("commission.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("commission.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("commission.repository: failed to scan row")
)
