package rule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило доступности не найдено
	ErrRuleNotFound = errors.New("rule.repository: availability rule not found")

	// ErrDuplicateRule возвращается при попытке создать второе правило
	// для пары (владелец, день недели)
	ErrDuplicateRule = errors.New("rule.repository: rule for this owner and day already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rule.repository: failed to scan row")
)
