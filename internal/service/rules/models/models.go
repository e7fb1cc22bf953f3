package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модели

// CreateRuleRequest запрос на создание правила доступности
type CreateRuleRequest struct {
	CalendarOwnerID string `json:"calendarOwnerId"`
	DayOfWeek       int    `json:"dayOfWeek"` // 1 = понедельник ... 7 = воскресенье
	StartTime       string `json:"startTime"` // "09:00"
	EndTime         string `json:"endTime"`   // "17:00"
}

// UpdateRuleRequest запрос на обновление правила доступности
// Все поля опциональны - обновляются только переданные значения
type UpdateRuleRequest struct {
	DayOfWeek *int    `json:"dayOfWeek,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// Response модели

// RuleResponse ответ с данными правила доступности
type RuleResponse struct {
	ID              string    `json:"id"`
	CalendarOwnerID string    `json:"calendarOwnerId"`
	DayOfWeek       int       `json:"dayOfWeek"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.AvailabilityRule) *RuleResponse {
	if r == nil {
		return nil
	}

	return &RuleResponse{
		ID:              r.ID,
		CalendarOwnerID: r.CalendarOwnerID,
		DayOfWeek:       r.DayOfWeek,
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.AvailabilityRule) *RuleListResponse {
	if rules == nil {
		return &RuleListResponse{
			Rules: []RuleResponse{},
		}
	}

	resp := &RuleListResponse{
		Rules: make([]RuleResponse, len(rules)),
	}

	for i, rule := range rules {
		if ruleResp := FromDomainRule(rule); ruleResp != nil {
			resp.Rules[i] = *ruleResp
		}
	}

	return resp
}

// ToDomainRule конвертирует CreateRuleRequest в domain модель
// Новые правила создаются активными
func (r *CreateRuleRequest) ToDomainRule() *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		CalendarOwnerID: r.CalendarOwnerID,
		DayOfWeek:       r.DayOfWeek,
		StartTime:       types.TimeString(r.StartTime),
		EndTime:         types.TimeString(r.EndTime),
		IsActive:        true,
	}
}
