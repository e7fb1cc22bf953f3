package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CalendarOwnerID == "" {
		return fmt.Errorf("%w: calendarOwnerId is required", ErrInvalidInput)
	}

	if _, err := uuid.Parse(req.CalendarOwnerID); err != nil {
		return fmt.Errorf("%w: calendarOwnerId must be a valid uuid", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
