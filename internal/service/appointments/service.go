package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	ownerClient "github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
	"github.com/m04kA/SMC-CalendarService/internal/service/appointments/models"
)

// Service сервис для работы с записями на приём
type Service struct {
	appointmentRepo AppointmentRepository
	ownerClient     OwnerServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	ownerClient OwnerServiceClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		ownerClient:     ownerClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetOwnerAppointments получает записи владельца календаря с гибкой фильтрацией
// Поддерживает фильтрацию по периоду и статусу
//
// Примеры использования:
// - Все записи: GetOwnerAppointments(ctx, &GetOwnerAppointmentsRequest{CalendarOwnerID: "..."})
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Записи за период: StartDate и EndDate указывают на разные даты
// - Только подтверждённые: указать Status = "confirmed"
func (s *Service) GetOwnerAppointments(ctx context.Context, req *models.GetOwnerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("GetOwnerAppointments: fetching appointments for owner=%s", req.CalendarOwnerID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	// Проверяем существование владельца календаря
	if _, err := s.ownerClient.GetOwner(ctx, req.CalendarOwnerID); err != nil {
		if errors.Is(err, ownerClient.ErrOwnerNotFound) {
			s.logger.Warn("GetOwnerAppointments: owner id=%s not found", req.CalendarOwnerID)
			return nil, ErrOwnerNotFound
		}
		s.logger.Error("GetOwnerAppointments: failed to get owner id=%s: %v", req.CalendarOwnerID, err)
		return nil, fmt.Errorf("%w: failed to get owner: %v", ErrInternal, err)
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetOwnerAppointments: invalid filter for owner=%s: %v", req.CalendarOwnerID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByOwnerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetOwnerAppointments: repository error for owner=%s: %v", req.CalendarOwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerAppointments: successfully fetched %d appointments for owner=%s",
		len(appointments), req.CalendarOwnerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись на приём
// Операция идемпотентна: повторная отмена уже отменённой записи не является ошибкой,
// слот освобождается после первой отмены
func (s *Service) Cancel(ctx context.Context, appointmentID string) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s", appointmentID)

	// Получаем запись
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Уже отменённая запись остаётся отменённой
	if appointment.IsCancelled() {
		s.logger.Info("Cancel: appointment id=%s is already cancelled", appointmentID)
		return models.FromDomainAppointment(appointment), nil
	}

	cancelledAt := s.timeProvider.Now()

	// Отменяем запись
	if err := s.appointmentRepo.Cancel(ctx, appointmentID, cancelledAt); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found during cancellation", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Перечитываем запись, чтобы вернуть актуальное состояние
	cancelled, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		s.logger.Error("Cancel: failed to reload appointment id=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", appointmentID)
	return models.FromDomainAppointment(cancelled), nil
}
