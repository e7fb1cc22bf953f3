package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/rule"
	ownerClient "github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

// UseCase use case для получения слотов календаря на дату.
// Результат всегда пересчитывается от текущего состояния БД:
// ничего не кешируется, повторный вызов без записей между ними
// возвращает тот же список.
type UseCase struct {
	appointmentRepo AppointmentRepository
	ruleRepo        RuleRepository
	ownerClient     OwnerServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	ruleRepo RuleRepository,
	ownerClient OwnerServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		ruleRepo:        ruleRepo,
		ownerClient:     ownerClient,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: owner=%s, date=%s",
		req.CalendarOwnerID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование владельца календаря
	if _, err := uc.ownerClient.GetOwner(ctx, req.CalendarOwnerID); err != nil {
		if errors.Is(err, ownerClient.ErrOwnerNotFound) {
			uc.logger.Warn("GetAvailableSlots: owner id=%s not found", req.CalendarOwnerID)
			return nil, ErrOwnerNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get owner id=%s: %v", req.CalendarOwnerID, err)
		return nil, fmt.Errorf("%w: failed to get owner: %v", ErrInternal, err)
	}

	// 3. Ищем активное правило доступности на день недели.
	// Отсутствие правила - не ошибка: в этот день владелец просто не принимает.
	dayOfWeek := domain.ISOWeekday(req.Date)

	rule, err := uc.ruleRepo.GetActiveByOwnerAndDay(ctx, req.CalendarOwnerID, dayOfWeek)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			uc.logger.Info("GetAvailableSlots: no active rule for owner=%s, day=%d",
				req.CalendarOwnerID, dayOfWeek)
			return &Response{
				CalendarOwnerID: req.CalendarOwnerID,
				Date:            req.Date,
				Slots:           []domain.TimeSlot{},
			}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get rule: %v", err)
		return nil, fmt.Errorf("%w: failed to get rule: %v", ErrInternal, err)
	}

	// 4. Генерируем часовые слоты внутри окна доступности
	slots, err := generateTimeSlots(rule.StartTime, rule.EndTime)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 5. Получаем подтверждённые записи на эту дату
	filter := domain.OwnerAppointmentsFilter{
		CalendarOwnerID: req.CalendarOwnerID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		Status:          ptr.Ptr(domain.StatusConfirmed),
	}

	appointments, err := uc.appointmentRepo.GetByOwnerWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Проставляем доступность каждому слоту
	marked := markAvailability(slots, appointments)

	uc.logger.Info("GetAvailableSlots: generated %d slots for owner=%s, date=%s",
		len(marked), req.CalendarOwnerID, req.Date.Format(domain.DateFormat))

	return &Response{
		CalendarOwnerID: req.CalendarOwnerID,
		Date:            req.Date,
		Slots:           marked,
	}, nil
}
