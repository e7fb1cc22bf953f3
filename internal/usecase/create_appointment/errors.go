package create_appointment

import "errors"

var (
	// ErrOwnerNotFound возвращается, когда владелец календаря не найден
	ErrOwnerNotFound = errors.New("create_appointment: calendar owner not found")

	// ErrAppointmentInPast возвращается, когда момент начала не в будущем
	ErrAppointmentInPast = errors.New("create_appointment: appointment must be scheduled in the future")

	// ErrInvalidTimeSlot возвращается, когда время начала не совпадает
	// с границей ни одного слота из окна доступности
	ErrInvalidTimeSlot = errors.New("create_appointment: start time does not match a slot boundary")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот занят
	// подтверждённой записью либо в этот день нет активного правила
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
