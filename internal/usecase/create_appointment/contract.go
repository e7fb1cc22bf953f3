package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerAppointmentsFilter) ([]*domain.Appointment, error)
}

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	GetActiveByOwnerAndDay(ctx context.Context, ownerID string, dayOfWeek int) (*domain.AvailabilityRule, error)
}

// OwnerServiceClient интерфейс клиента для OwnerService
type OwnerServiceClient interface {
	GetOwner(ctx context.Context, ownerID string) (*ownerservice.CalendarOwner, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
