package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	apptRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
	"github.com/m04kA/SMC-CalendarService/internal/service/appointments/models"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

const testOwnerID = "3f6f6f64-9b2c-4c52-8a1e-0d6a3b1f9e11"

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

type fakeAppointmentRepo struct {
	byID map[string]*domain.Appointment

	cancelCalls int
	gotFilter   domain.OwnerAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerAppointmentsFilter) ([]*domain.Appointment, error) {
	f.gotFilter = filter
	result := make([]*domain.Appointment, 0)
	for _, appt := range f.byID {
		if appt.CalendarOwnerID == filter.CalendarOwnerID {
			copied := *appt
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) Cancel(ctx context.Context, id string, cancelledAt time.Time) error {
	f.cancelCalls++
	appt, ok := f.byID[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = domain.StatusCancelled
	appt.CancelledAt = &cancelledAt
	return nil
}

func confirmedAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.NewString(),
		CalendarOwnerID: testOwnerID,
		InviteeName:     "Анна Петрова",
		InviteeEmail:    "anna@example.com",
		AppointmentDate: testDate,
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}
}

func TestGetByID(t *testing.T) {
	appt := confirmedAppointment()
	repo := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{appt.ID: appt}}
	svc := NewService(repo, &fakeOwnerClient{}, nopLogger{})

	t.Run("found", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), appt.ID)
		require.NoError(t, err)
		assert.Equal(t, appt.ID, got.ID)
		assert.Equal(t, "10:00", got.StartTime)
		assert.Equal(t, "11:00", got.EndTime)
		assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancels confirmed appointment", func(t *testing.T) {
		appt := confirmedAppointment()
		repo := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{appt.ID: appt}}
		svc := NewService(repo, &fakeOwnerClient{}, nopLogger{})

		got, err := svc.Cancel(context.Background(), appt.ID)
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCancelled), got.Status)
		assert.NotNil(t, got.CancelledAt)
		assert.Equal(t, 1, repo.cancelCalls)
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		appt := confirmedAppointment()
		repo := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{appt.ID: appt}}
		svc := NewService(repo, &fakeOwnerClient{}, nopLogger{})

		first, err := svc.Cancel(context.Background(), appt.ID)
		require.NoError(t, err)

		second, err := svc.Cancel(context.Background(), appt.ID)
		require.NoError(t, err)

		assert.Equal(t, first.Status, second.Status)
		// Повторная отмена не трогает хранилище
		assert.Equal(t, 1, repo.cancelCalls)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		repo := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{}}
		svc := NewService(repo, &fakeOwnerClient{}, nopLogger{})

		_, err := svc.Cancel(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestGetOwnerAppointments(t *testing.T) {
	appt := confirmedAppointment()
	repo := &fakeAppointmentRepo{byID: map[string]*domain.Appointment{appt.ID: appt}}
	svc := NewService(repo, &fakeOwnerClient{}, nopLogger{})

	t.Run("filters pass through to repository", func(t *testing.T) {
		status := "confirmed"
		resp, err := svc.GetOwnerAppointments(context.Background(), &models.GetOwnerAppointmentsRequest{
			CalendarOwnerID: testOwnerID,
			StartDate:       ptr.Ptr(testDate),
			EndDate:         ptr.Ptr(testDate),
			Status:          &status,
		})
		require.NoError(t, err)
		require.Len(t, resp.Appointments, 1)

		require.NotNil(t, repo.gotFilter.Status)
		assert.Equal(t, domain.StatusConfirmed, *repo.gotFilter.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		status := "pending"
		_, err := svc.GetOwnerAppointments(context.Background(), &models.GetOwnerAppointmentsRequest{
			CalendarOwnerID: testOwnerID,
			Status:          &status,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("owner not found", func(t *testing.T) {
		missing := NewService(repo, &fakeOwnerClient{err: ownerservice.ErrOwnerNotFound}, nopLogger{})
		_, err := missing.GetOwnerAppointments(context.Background(), &models.GetOwnerAppointmentsRequest{
			CalendarOwnerID: testOwnerID,
		})
		assert.ErrorIs(t, err, ErrOwnerNotFound)
	})
}
