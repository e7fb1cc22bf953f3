package get_owner_appointments

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetOwnerAppointments(ctx context.Context, req *models.GetOwnerAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
