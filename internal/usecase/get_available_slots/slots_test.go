package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("full working day 09:00-17:00 gives 8 slots", func(t *testing.T) {
		slots, err := generateTimeSlots("09:00", "17:00")
		require.NoError(t, err)
		require.Len(t, slots, 8)

		assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
		assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
		assert.Equal(t, types.TimeString("16:00"), slots[7].StartTime)
		assert.Equal(t, types.TimeString("17:00"), slots[7].EndTime)
	})

	t.Run("slots are contiguous and ordered", func(t *testing.T) {
		slots, err := generateTimeSlots("10:00", "14:00")
		require.NoError(t, err)
		require.Len(t, slots, 4)

		for i := 1; i < len(slots); i++ {
			assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime)
			assert.True(t, slots[i-1].StartTime.IsBefore(slots[i].StartTime))
		}
	})

	t.Run("partial trailing slot is dropped", func(t *testing.T) {
		// Окно 09:00-17:30: последние 30 минут не образуют слот
		slots, err := generateTimeSlots("09:00", "17:30")
		require.NoError(t, err)
		require.Len(t, slots, 8)
		assert.Equal(t, types.TimeString("17:00"), slots[7].EndTime)
	})

	t.Run("window shorter than one slot gives no slots", func(t *testing.T) {
		slots, err := generateTimeSlots("09:00", "09:45")
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("window up to midnight", func(t *testing.T) {
		slots, err := generateTimeSlots("22:00", "24:00")
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, types.TimeString("24:00"), slots[1].EndTime)
	})
}

func TestMarkAvailability(t *testing.T) {
	slots := []domain.TimeSlot{
		{StartTime: "10:00", EndTime: "11:00"},
		{StartTime: "11:00", EndTime: "12:00"},
		{StartTime: "12:00", EndTime: "13:00"},
	}

	t.Run("no appointments - all available", func(t *testing.T) {
		marked := markAvailability(slots, nil)
		require.Len(t, marked, 3)
		for _, slot := range marked {
			assert.True(t, slot.Available)
		}
	})

	t.Run("confirmed appointment occupies exactly its slot", func(t *testing.T) {
		appointments := []*domain.Appointment{
			{StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		}

		marked := markAvailability(slots, appointments)
		assert.True(t, marked[0].Available)
		assert.False(t, marked[1].Available)
		assert.True(t, marked[2].Available)
	})

	t.Run("adjacent appointment does not occupy neighbouring slot", func(t *testing.T) {
		// Запись 10:00-11:00 граничит со слотом 11:00-12:00, но не пересекается
		appointments := []*domain.Appointment{
			{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		}

		marked := markAvailability(slots, appointments)
		assert.False(t, marked[0].Available)
		assert.True(t, marked[1].Available)
	})

	t.Run("cancelled appointment frees the slot", func(t *testing.T) {
		appointments := []*domain.Appointment{
			{StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusCancelled},
		}

		marked := markAvailability(slots, appointments)
		assert.True(t, marked[1].Available)
	})

	t.Run("misaligned appointment occupies both overlapped slots", func(t *testing.T) {
		appointments := []*domain.Appointment{
			{StartTime: "10:30", DurationMinutes: 60, Status: domain.StatusConfirmed},
		}

		marked := markAvailability(slots, appointments)
		assert.False(t, marked[0].Available)
		assert.False(t, marked[1].Available)
		assert.True(t, marked[2].Available)
	})
}
