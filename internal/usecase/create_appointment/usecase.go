package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	apptRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	ruleRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/rule"
	ownerClient "github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	ruleRepo        RuleRepository
	ownerClient     OwnerServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	ruleRepo RuleRepository,
	ownerClient OwnerServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		ruleRepo:        ruleRepo,
		ownerClient:     ownerClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: owner=%s, date=%s, time=%s",
		req.CalendarOwnerID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование владельца календаря
	if _, err := uc.ownerClient.GetOwner(ctx, req.CalendarOwnerID); err != nil {
		if errors.Is(err, ownerClient.ErrOwnerNotFound) {
			uc.logger.Warn("CreateAppointment: owner id=%s not found", req.CalendarOwnerID)
			return nil, ErrOwnerNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get owner id=%s: %v", req.CalendarOwnerID, err)
		return nil, fmt.Errorf("%w: failed to get owner: %v", ErrInternal, err)
	}

	// 4. Момент начала должен быть строго в будущем
	startInstant, err := req.StartTime.OnDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateAppointment: invalid start instant: %v", err)
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if !startInstant.After(now) {
		uc.logger.Warn("CreateAppointment: start instant %s is not in the future", startInstant)
		return nil, ErrAppointmentInPast
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем активное правило доступности на день недели даты
		dayOfWeek := domain.ISOWeekday(req.Date)

		rule, err := uc.ruleRepo.GetActiveByOwnerAndDay(txCtx, req.CalendarOwnerID, dayOfWeek)
		if err != nil {
			if errors.Is(err, ruleRepo.ErrRuleNotFound) {
				uc.logger.Warn("CreateAppointment: owner id=%s has no active rule for day=%d",
					req.CalendarOwnerID, dayOfWeek)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to get rule: %v", err)
			return fmt.Errorf("%w: failed to get availability rule: %v", ErrInternal, err)
		}

		// 5.2. Время начала должно совпадать с границей слота
		if !matchesSlotBoundary(rule, req.StartTime) {
			uc.logger.Warn("CreateAppointment: time=%s does not match a slot boundary in window %s-%s",
				req.StartTime, rule.StartTime, rule.EndTime)
			return ErrInvalidTimeSlot
		}

		// 5.3. Получаем подтверждённые записи на эту дату с блокировкой (FOR UPDATE)
		filter := domain.OwnerAppointmentsFilter{
			CalendarOwnerID: req.CalendarOwnerID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			Status:          ptr.Ptr(domain.StatusConfirmed),
			ForUpdate:       true,
		}

		appointments, err := uc.appointmentRepo.GetByOwnerWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.4. Проверяем доступность слота
		overlappingCount, err := countOverlappingAppointments(req.StartTime, domain.SlotDurationMinutes, appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count overlapping appointments: %v", err)
			return fmt.Errorf("%w: failed to count overlapping appointments: %v", ErrInternal, err)
		}

		if overlappingCount > 0 {
			uc.logger.Warn("CreateAppointment: slot %s on %s is already taken",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 5.5. Создаем запись
		appointment := &domain.Appointment{
			CalendarOwnerID: req.CalendarOwnerID,
			InviteeName:     req.InviteeName,
			InviteeEmail:    req.InviteeEmail,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: domain.SlotDurationMinutes,
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Уникальный индекс в БД — последний рубеж против двойного бронирования
			if errors.Is(err, apptRepo.ErrDuplicateSlot) {
				uc.logger.Warn("CreateAppointment: slot %s on %s was taken concurrently",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	endTime, err := result.EndTime()
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to compute end time for id=%s: %v", result.ID, err)
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		CalendarOwnerID: result.CalendarOwnerID,
		InviteeName:     result.InviteeName,
		InviteeEmail:    result.InviteeEmail,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
