package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrOwnerNotFound возвращается, когда владелец календаря не найден
	ErrOwnerNotFound = errors.New("calendar owner not found")

	// ErrInvalidStatus возвращается при попытке фильтрации по недопустимому статусу
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
