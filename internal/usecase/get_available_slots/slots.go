package get_available_slots

import (
	"errors"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// generateTimeSlots генерирует список часовых слотов внутри окна доступности.
// Слоты идут подряд от начала окна с фиксированным шагом domain.SlotDurationMinutes.
// Неполный хвост окна (остаток меньше длительности слота) отбрасывается,
// а не усекается: последний слот всегда заканчивается не позже windowEnd.
// Если окно короче одного слота, список пуст.
func generateTimeSlots(windowStart, windowEnd types.TimeString) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0)
	current := windowStart

	for current.IsBefore(windowEnd) {
		slotEnd, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			// Слот не помещается в сутки - значит не помещается и в окно
			if errors.Is(err, types.ErrOutOfRange) {
				break
			}
			return nil, err
		}

		// Слот не должен выходить за конец окна
		if slotEnd.IsAfter(windowEnd) {
			break
		}

		slots = append(slots, domain.TimeSlot{
			StartTime: current,
			EndTime:   slotEnd,
		})
		current = slotEnd
	}

	return slots, nil
}

// markAvailability проставляет доступность каждому слоту.
// Слот недоступен, если с ним пересекается хотя бы одна подтверждённая запись.
// Пересечение проверяется по полуоткрытым интервалам [start, end):
// записи, граничащие со слотом (конец одной = начало другого), не пересекаются.
//
// Примеры:
// - Слот 11:00-12:00, запись 10:30-11:30 → пересечение, слот занят
// - Слот 11:00-12:00, запись 10:00-11:00 → граничат, слот свободен
// - Слот 11:00-12:00, запись 12:00-13:00 → граничат, слот свободен
func markAvailability(slots []domain.TimeSlot, appointments []*domain.Appointment) []domain.TimeSlot {
	result := make([]domain.TimeSlot, len(slots))

	for i, slot := range slots {
		result[i] = domain.TimeSlot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Available: !hasOverlappingAppointment(slot, appointments),
		}
	}

	return result
}

// hasOverlappingAppointment проверяет, пересекается ли слот
// хотя бы с одной подтверждённой записью
func hasOverlappingAppointment(slot domain.TimeSlot, appointments []*domain.Appointment) bool {
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

		if domain.Overlaps(slot.StartTime, slot.EndTime, appt.StartTime, apptEnd) {
			return true
		}
	}

	return false
}
