package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// AvailabilityRule represents a recurring weekly availability window
// of a calendar owner. At most one rule exists per (owner, day of week);
// the slot engine only reads rules with IsActive = true.
type AvailabilityRule struct {
	ID              string
	CalendarOwnerID string
	DayOfWeek       int // ISO numbering, Monday = 1 .. Sunday = 7
	StartTime       types.TimeString
	EndTime         types.TimeString
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Window returns the rule's [StartTime, EndTime) bounds
func (r *AvailabilityRule) Window() (types.TimeString, types.TimeString) {
	return r.StartTime, r.EndTime
}
