package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Intervals that merely touch
// at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// ISOWeekday returns the ISO day of week for date: Monday = 1 .. Sunday = 7.
// Go's time.Sunday is 0 and has to be remapped.
func ISOWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
