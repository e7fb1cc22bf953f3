package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByOwnerWithFilter получает записи владельца по фильтру (период + статус)
	GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerAppointmentsFilter) ([]*domain.Appointment, error)
}

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	// GetActiveByOwnerAndDay получает активное правило владельца на день недели (ISO)
	GetActiveByOwnerAndDay(ctx context.Context, ownerID string, dayOfWeek int) (*domain.AvailabilityRule, error)
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
