package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/rule"
	ownerClient "github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
	"github.com/m04kA/SMC-CalendarService/internal/service/rules/models"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Service сервис для работы с правилами доступности
type Service struct {
	ruleRepo    RuleRepository
	ownerClient OwnerServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса правил доступности
func NewService(
	ruleRepo RuleRepository,
	ownerClient OwnerServiceClient,
	logger Logger,
) *Service {
	return &Service{
		ruleRepo:    ruleRepo,
		ownerClient: ownerClient,
		logger:      logger,
	}
}

// Create создает правило доступности для владельца календаря
// На каждый день недели допускается не более одного правила
func (s *Service) Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: creating rule for owner=%s, day=%d, window=%s-%s",
		req.CalendarOwnerID, req.DayOfWeek, req.StartTime, req.EndTime)

	if err := s.checkOwnerExists(ctx, req.CalendarOwnerID); err != nil {
		return nil, err
	}

	if err := s.validateRuleData(req.DayOfWeek, req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("Create: validation failed for owner=%s: %v", req.CalendarOwnerID, err)
		return nil, err
	}

	created, err := s.ruleRepo.Create(ctx, req.ToDomainRule())
	if err != nil {
		if errors.Is(err, ruleRepo.ErrDuplicateRule) {
			s.logger.Warn("Create: owner=%s already has a rule for day=%d", req.CalendarOwnerID, req.DayOfWeek)
			return nil, ErrDuplicateRule
		}
		s.logger.Error("Create: repository error for owner=%s: %v", req.CalendarOwnerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created rule id=%s for owner=%s", created.ID, req.CalendarOwnerID)
	return models.FromDomainRule(created), nil
}

// GetByID получает правило доступности по ID
func (s *Service) GetByID(ctx context.Context, ownerID, ruleID string) (*models.RuleResponse, error) {
	s.logger.Info("GetByID: fetching rule id=%s for owner=%s", ruleID, ownerID)

	rule, err := s.ruleRepo.GetByID(ctx, ownerID, ruleID)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("GetByID: rule id=%s not found for owner=%s", ruleID, ownerID)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("GetByID: repository error for rule id=%s: %v", ruleID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRule(rule), nil
}

// GetAllByOwner получает все правила доступности владельца календаря
func (s *Service) GetAllByOwner(ctx context.Context, ownerID string) (*models.RuleListResponse, error) {
	s.logger.Info("GetAllByOwner: fetching rules for owner=%s", ownerID)

	if err := s.checkOwnerExists(ctx, ownerID); err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.GetAllByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("GetAllByOwner: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetAllByOwner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllByOwner: successfully fetched %d rules for owner=%s", len(rules), ownerID)
	return models.FromDomainRuleList(rules), nil
}

// Update обновляет правило доступности
// Обновляются только переданные поля, остальные сохраняют прежние значения
func (s *Service) Update(ctx context.Context, ownerID, ruleID string, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Update: updating rule id=%s for owner=%s", ruleID, ownerID)

	rule, err := s.ruleRepo.GetByID(ctx, ownerID, ruleID)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Update: rule id=%s not found for owner=%s", ruleID, ownerID)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%s: %v", ruleID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Применяем только переданные поля
	if req.DayOfWeek != nil {
		rule.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		rule.StartTime = types.TimeString(*req.StartTime)
	}
	if req.EndTime != nil {
		rule.EndTime = types.TimeString(*req.EndTime)
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.validateRuleData(rule.DayOfWeek, string(rule.StartTime), string(rule.EndTime)); err != nil {
		s.logger.Warn("Update: validation failed for rule id=%s: %v", ruleID, err)
		return nil, err
	}

	updated, err := s.ruleRepo.Update(ctx, rule)
	if err != nil {
		switch {
		case errors.Is(err, ruleRepo.ErrRuleNotFound):
			s.logger.Warn("Update: rule id=%s not found during update", ruleID)
			return nil, ErrRuleNotFound
		case errors.Is(err, ruleRepo.ErrDuplicateRule):
			s.logger.Warn("Update: owner=%s already has a rule for day=%d", ownerID, rule.DayOfWeek)
			return nil, ErrDuplicateRule
		}
		s.logger.Error("Update: repository error for rule id=%s: %v", ruleID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated rule id=%s", ruleID)
	return models.FromDomainRule(updated), nil
}

// Delete удаляет правило доступности
// Уже созданные записи при удалении правила не затрагиваются
func (s *Service) Delete(ctx context.Context, ownerID, ruleID string) error {
	s.logger.Info("Delete: deleting rule id=%s for owner=%s", ruleID, ownerID)

	if err := s.ruleRepo.Delete(ctx, ownerID, ruleID); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: rule id=%s not found for owner=%s", ruleID, ownerID)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%s: %v", ruleID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted rule id=%s", ruleID)
	return nil
}

// checkOwnerExists проверяет существование владельца календаря через OwnerService
func (s *Service) checkOwnerExists(ctx context.Context, ownerID string) error {
	if _, err := s.ownerClient.GetOwner(ctx, ownerID); err != nil {
		if errors.Is(err, ownerClient.ErrOwnerNotFound) {
			s.logger.Warn("checkOwnerExists: owner id=%s not found", ownerID)
			return ErrOwnerNotFound
		}
		s.logger.Error("checkOwnerExists: failed to get owner id=%s: %v", ownerID, err)
		return fmt.Errorf("%w: failed to get owner: %v", ErrInternal, err)
	}
	return nil
}

// validateRuleData валидирует параметры правила доступности
func (s *Service) validateRuleData(dayOfWeek int, startTime, endTime string) error {
	if dayOfWeek < domain.MinDayOfWeek || dayOfWeek > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek must be between %d and %d",
			ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	start := types.TimeString(startTime)
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	end := types.TimeString(endTime)
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	// Окно должно быть непустым; окно короче слота допустимо и просто не даёт слотов
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return nil
}
