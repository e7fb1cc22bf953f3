package rules

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило доступности не найдено
	ErrRuleNotFound = errors.New("availability rule not found")

	// ErrOwnerNotFound возвращается, когда владелец календаря не найден
	ErrOwnerNotFound = errors.New("calendar owner not found")

	// ErrDuplicateRule возвращается, когда у владельца уже есть правило на этот день недели
	ErrDuplicateRule = errors.New("availability rule for this day already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
