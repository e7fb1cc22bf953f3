package create_appointment

import (
	"fmt"
	"net/mail"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CalendarOwnerID == "" {
		return fmt.Errorf("%w: calendarOwnerId is required", ErrInvalidInput)
	}

	if _, err := uuid.Parse(req.CalendarOwnerID); err != nil {
		return fmt.Errorf("%w: calendarOwnerId must be a valid uuid", ErrInvalidInput)
	}

	if req.InviteeName == "" {
		return fmt.Errorf("%w: inviteeName is required", ErrInvalidInput)
	}

	if len(req.InviteeName) > domain.MaxInviteeNameLen {
		return fmt.Errorf("%w: inviteeName is too long", ErrInvalidInput)
	}

	if req.InviteeEmail == "" {
		return fmt.Errorf("%w: inviteeEmail is required", ErrInvalidInput)
	}

	if len(req.InviteeEmail) > domain.MaxInviteeEmailLen {
		return fmt.Errorf("%w: inviteeEmail is too long", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.InviteeEmail); err != nil {
		return fmt.Errorf("%w: inviteeEmail is not a valid email address", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано и корректно
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// matchesSlotBoundary проверяет, что startTime совпадает с началом одного
// из часовых слотов окна доступности: публичный поиск слотов предложил бы
// ровно этот момент. Запись "между слотами" недопустима, даже если
// интервал формально свободен.
func matchesSlotBoundary(rule *domain.AvailabilityRule, startTime types.TimeString) bool {
	current := rule.StartTime

	for current.IsBefore(rule.EndTime) {
		slotEnd, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return false
		}
		if slotEnd.IsAfter(rule.EndTime) {
			break
		}

		if current.Equal(startTime) {
			return true
		}
		current = slotEnd
	}

	return false
}

// countOverlappingAppointments подсчитывает количество подтверждённых записей,
// пересекающихся с интервалом [startTime, startTime+slotDuration).
// Интервалы полуоткрытые: граничащие записи не считаются пересечением.
func countOverlappingAppointments(
	startTime types.TimeString,
	slotDuration int,
	appointments []*domain.Appointment,
) (int, error) {
	slotEnd, err := startTime.AddMinutes(slotDuration)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, appt := range appointments {
		// Отменённые записи слот не занимают
		if !appt.IsConfirmed() {
			continue
		}

		apptEnd, err := appt.EndTime()
		if err != nil {
			// Если не можем вычислить конец записи, пропускаем её
			continue
		}

		if domain.Overlaps(startTime, slotEnd, appt.StartTime, apptEnd) {
			count++
		}
	}

	return count, nil
}
