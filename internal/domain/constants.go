package domain

// SlotDurationMinutes fixed appointment length; every slot and every
// appointment is exactly one hour
const SlotDurationMinutes = 60

// Business validation constants
const (
	MinDayOfWeek       = 1 // Monday
	MaxDayOfWeek       = 7 // Sunday
	MaxInviteeNameLen  = 255
	MaxInviteeEmailLen = 255
	MaxNotesLength     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
