package domain

import "github.com/m04kA/SMC-CalendarService/pkg/types"

// TimeSlot represents a bookable sub-interval of an availability window.
// Slots are derived on every query and never persisted.
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}
