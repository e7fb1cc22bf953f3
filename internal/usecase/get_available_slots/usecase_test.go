package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/rule"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
)

const testOwnerID = "3f6f6f64-9b2c-4c52-8a1e-0d6a3b1f9e11"

// Вторник
var testDate = time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeOwnerClient struct {
	err error
}

func (f *fakeOwnerClient) GetOwner(ctx context.Context, ownerID string) (*ownerservice.CalendarOwner, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ownerservice.CalendarOwner{ID: ownerID, IsActive: true}, nil
}

type fakeRuleRepo struct {
	rule *domain.AvailabilityRule
	err  error

	gotDay int
}

func (f *fakeRuleRepo) GetActiveByOwnerAndDay(ctx context.Context, ownerID string, dayOfWeek int) (*domain.AvailabilityRule, error) {
	f.gotDay = dayOfWeek
	if f.err != nil {
		return nil, f.err
	}
	return f.rule, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error

	gotFilter domain.OwnerAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerAppointmentsFilter) ([]*domain.Appointment, error) {
	f.gotFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

func newTestUseCase(apptRepo *fakeAppointmentRepo, rules *fakeRuleRepo, owner *fakeOwnerClient) *UseCase {
	return NewUseCase(apptRepo, rules, owner, nopLogger{})
}

func TestExecute_FullDayAvailable(t *testing.T) {
	rules := &fakeRuleRepo{rule: &domain.AvailabilityRule{
		CalendarOwnerID: testOwnerID,
		DayOfWeek:       2,
		StartTime:       "09:00",
		EndTime:         "17:00",
		IsActive:        true,
	}}
	apptRepo := &fakeAppointmentRepo{}

	uc := newTestUseCase(apptRepo, rules, &fakeOwnerClient{})

	resp, err := uc.Execute(context.Background(), &Request{CalendarOwnerID: testOwnerID, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 8)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}

	// Правило запрошено по ISO дню недели даты
	assert.Equal(t, 2, rules.gotDay)

	// Занятость читается только по подтверждённым записям на эту дату
	require.NotNil(t, apptRepo.gotFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *apptRepo.gotFilter.Status)
	require.NotNil(t, apptRepo.gotFilter.StartDate)
	assert.Equal(t, testDate, *apptRepo.gotFilter.StartDate)
}

func TestExecute_BookedSlotUnavailable(t *testing.T) {
	rules := &fakeRuleRepo{rule: &domain.AvailabilityRule{
		CalendarOwnerID: testOwnerID,
		DayOfWeek:       2,
		StartTime:       "09:00",
		EndTime:         "12:00",
		IsActive:        true,
	}}
	apptRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			CalendarOwnerID: testOwnerID,
			AppointmentDate: testDate,
			StartTime:       "10:00",
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
	}}

	uc := newTestUseCase(apptRepo, rules, &fakeOwnerClient{})

	resp, err := uc.Execute(context.Background(), &Request{CalendarOwnerID: testOwnerID, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.True(t, resp.Slots[0].Available)  // 09:00-10:00
	assert.False(t, resp.Slots[1].Available) // 10:00-11:00 занят
	assert.True(t, resp.Slots[2].Available)  // 11:00-12:00
}

func TestExecute_NoRuleForDay(t *testing.T) {
	rules := &fakeRuleRepo{err: ruleRepo.ErrRuleNotFound}
	apptRepo := &fakeAppointmentRepo{}

	uc := newTestUseCase(apptRepo, rules, &fakeOwnerClient{})

	resp, err := uc.Execute(context.Background(), &Request{CalendarOwnerID: testOwnerID, Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, testOwnerID, resp.CalendarOwnerID)
}

func TestExecute_OwnerNotFound(t *testing.T) {
	rules := &fakeRuleRepo{}
	apptRepo := &fakeAppointmentRepo{}

	uc := newTestUseCase(apptRepo, rules, &fakeOwnerClient{err: ownerservice.ErrOwnerNotFound})

	_, err := uc.Execute(context.Background(), &Request{CalendarOwnerID: testOwnerID, Date: testDate})
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeRuleRepo{}, &fakeOwnerClient{})

	t.Run("missing owner id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{Date: testDate})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("owner id is not a uuid", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{CalendarOwnerID: "owner-1", Date: testDate})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{CalendarOwnerID: testOwnerID})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_RepeatedCallGivesSameResult(t *testing.T) {
	rules := &fakeRuleRepo{rule: &domain.AvailabilityRule{
		CalendarOwnerID: testOwnerID,
		DayOfWeek:       2,
		StartTime:       "10:00",
		EndTime:         "13:00",
		IsActive:        true,
	}}
	apptRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}}

	uc := newTestUseCase(apptRepo, rules, &fakeOwnerClient{})
	req := &Request{CalendarOwnerID: testOwnerID, Date: testDate}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}
