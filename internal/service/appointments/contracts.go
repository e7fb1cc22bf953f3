package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerAppointmentsFilter) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id string, cancelledAt time.Time) error
}

// OwnerServiceClient интерфейс клиента для OwnerService
type OwnerServiceClient interface {
	GetOwner(ctx context.Context, ownerID string) (*ownerservice.CalendarOwner, error)
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
