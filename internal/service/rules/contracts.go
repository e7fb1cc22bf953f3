package rules

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
)

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	GetByID(ctx context.Context, ownerID, ruleID string) (*domain.AvailabilityRule, error)
	GetAllByOwner(ctx context.Context, ownerID string) ([]*domain.AvailabilityRule, error)
	Update(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	Delete(ctx context.Context, ownerID, ruleID string) error
}

// OwnerServiceClient интерфейс клиента для OwnerService
type OwnerServiceClient interface {
	GetOwner(ctx context.Context, ownerID string) (*ownerservice.CalendarOwner, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
