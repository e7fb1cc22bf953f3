package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd types.TimeString
		want                       bool
	}{
		{"identical intervals", "10:00", "11:00", "10:00", "11:00", true},
		{"partial overlap", "10:00", "11:00", "10:30", "11:30", true},
		{"contained interval", "10:00", "12:00", "10:30", "11:00", true},
		{"touching at boundary is not overlap", "10:00", "11:00", "11:00", "12:00", false},
		{"touching at boundary reversed", "11:00", "12:00", "10:00", "11:00", false},
		{"disjoint intervals", "09:00", "10:00", "12:00", "13:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestISOWeekday(t *testing.T) {
	cases := []struct {
		name string
		date time.Time
		want int
	}{
		{"monday", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 1},
		{"wednesday", time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), 3},
		{"saturday", time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), 6},
		{"sunday maps to 7", time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ISOWeekday(tc.date))
		})
	}
}

func TestAppointment_EndTime(t *testing.T) {
	appt := &Appointment{
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: SlotDurationMinutes,
	}

	end, err := appt.EndTime()
	assert.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), end)
}
