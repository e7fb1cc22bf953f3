package rules

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/rule"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
	"github.com/m04kA/SMC-CalendarService/internal/service/rules/models"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

const testOwnerID = "3f6f6f64-9b2c-4c52-8a1e-0d6a3b1f9e11"

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

// fakeRuleRepo хранит правила в памяти и воспроизводит
// уникальный индекс БД по (владелец, день недели)
type fakeRuleRepo struct {
	rules map[string]*domain.AvailabilityRule
}

func newFakeRuleRepo() *fakeRuleRepo {
	return &fakeRuleRepo{rules: make(map[string]*domain.AvailabilityRule)}
}

func (f *fakeRuleRepo) Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	for _, existing := range f.rules {
		if existing.CalendarOwnerID == rule.CalendarOwnerID && existing.DayOfWeek == rule.DayOfWeek {
			return nil, ruleRepo.ErrDuplicateRule
		}
	}

	stored := *rule
	stored.ID = uuid.NewString()
	f.rules[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeRuleRepo) GetByID(ctx context.Context, ownerID, ruleID string) (*domain.AvailabilityRule, error) {
	rule, ok := f.rules[ruleID]
	if !ok || rule.CalendarOwnerID != ownerID {
		return nil, ruleRepo.ErrRuleNotFound
	}
	copied := *rule
	return &copied, nil
}

func (f *fakeRuleRepo) GetAllByOwner(ctx context.Context, ownerID string) ([]*domain.AvailabilityRule, error) {
	result := make([]*domain.AvailabilityRule, 0)
	for _, rule := range f.rules {
		if rule.CalendarOwnerID == ownerID {
			copied := *rule
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeRuleRepo) Update(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	existing, ok := f.rules[rule.ID]
	if !ok {
		return nil, ruleRepo.ErrRuleNotFound
	}
	for id, other := range f.rules {
		if id != rule.ID && other.CalendarOwnerID == rule.CalendarOwnerID && other.DayOfWeek == rule.DayOfWeek {
			return nil, ruleRepo.ErrDuplicateRule
		}
	}
	*existing = *rule
	copied := *existing
	return &copied, nil
}

func (f *fakeRuleRepo) Delete(ctx context.Context, ownerID, ruleID string) error {
	rule, ok := f.rules[ruleID]
	if !ok || rule.CalendarOwnerID != ownerID {
		return ruleRepo.ErrRuleNotFound
	}
	delete(f.rules, ruleID)
	return nil
}

func createRequest(day int) *models.CreateRuleRequest {
	return &models.CreateRuleRequest{
		CalendarOwnerID: testOwnerID,
		DayOfWeek:       day,
		StartTime:       "09:00",
		EndTime:         "17:00",
	}
}

func TestCreate(t *testing.T) {
	t.Run("creates active rule", func(t *testing.T) {
		svc := NewService(newFakeRuleRepo(), &fakeOwnerClient{}, nopLogger{})

		rule, err := svc.Create(context.Background(), createRequest(1))
		require.NoError(t, err)

		assert.NotEmpty(t, rule.ID)
		assert.True(t, rule.IsActive)
		assert.Equal(t, 1, rule.DayOfWeek)
	})

	t.Run("rejects second rule for same day", func(t *testing.T) {
		svc := NewService(newFakeRuleRepo(), &fakeOwnerClient{}, nopLogger{})

		_, err := svc.Create(context.Background(), createRequest(1))
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), createRequest(1))
		assert.ErrorIs(t, err, ErrDuplicateRule)
	})

	t.Run("rejects day of week out of range", func(t *testing.T) {
		svc := NewService(newFakeRuleRepo(), &fakeOwnerClient{}, nopLogger{})

		_, err := svc.Create(context.Background(), createRequest(0))
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Create(context.Background(), createRequest(8))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		svc := NewService(newFakeRuleRepo(), &fakeOwnerClient{}, nopLogger{})

		req := createRequest(1)
		req.StartTime = "17:00"
		req.EndTime = "09:00"

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		svc := NewService(newFakeRuleRepo(), &fakeOwnerClient{}, nopLogger{})

		req := createRequest(1)
		req.StartTime = "9am"

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("owner not found", func(t *testing.T) {
		svc := NewService(newFakeRuleRepo(), &fakeOwnerClient{err: ownerservice.ErrOwnerNotFound}, nopLogger{})

		_, err := svc.Create(context.Background(), createRequest(1))
		assert.ErrorIs(t, err, ErrOwnerNotFound)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("partial update keeps other fields", func(t *testing.T) {
		repo := newFakeRuleRepo()
		svc := NewService(repo, &fakeOwnerClient{}, nopLogger{})

		created, err := svc.Create(context.Background(), createRequest(1))
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), testOwnerID, created.ID, &models.UpdateRuleRequest{
			IsActive: ptr.Ptr(false),
		})
		require.NoError(t, err)

		assert.False(t, updated.IsActive)
		assert.Equal(t, "09:00", updated.StartTime)
		assert.Equal(t, "17:00", updated.EndTime)
		assert.Equal(t, 1, updated.DayOfWeek)
	})

	t.Run("validates resulting window", func(t *testing.T) {
		repo := newFakeRuleRepo()
		svc := NewService(repo, &fakeOwnerClient{}, nopLogger{})

		created, err := svc.Create(context.Background(), createRequest(1))
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), testOwnerID, created.ID, &models.UpdateRuleRequest{
			EndTime: ptr.Ptr("08:00"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("moving to an occupied day conflicts", func(t *testing.T) {
		repo := newFakeRuleRepo()
		svc := NewService(repo, &fakeOwnerClient{}, nopLogger{})

		_, err := svc.Create(context.Background(), createRequest(1))
		require.NoError(t, err)
		second, err := svc.Create(context.Background(), createRequest(2))
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), testOwnerID, second.ID, &models.UpdateRuleRequest{
			DayOfWeek: ptr.Ptr(1),
		})
		assert.ErrorIs(t, err, ErrDuplicateRule)
	})

	t.Run("unknown rule", func(t *testing.T) {
		svc := NewService(newFakeRuleRepo(), &fakeOwnerClient{}, nopLogger{})

		_, err := svc.Update(context.Background(), testOwnerID, uuid.NewString(), &models.UpdateRuleRequest{})
		assert.ErrorIs(t, err, ErrRuleNotFound)
	})
}

func TestDelete(t *testing.T) {
	repo := newFakeRuleRepo()
	svc := NewService(repo, &fakeOwnerClient{}, nopLogger{})

	created, err := svc.Create(context.Background(), createRequest(1))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), testOwnerID, created.ID))

	err = svc.Delete(context.Background(), testOwnerID, created.ID)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}
