package update_rule

import (
	"github.com/m04kA/SMC-CalendarService/internal/service/rules/models"
)

// UpdateRuleRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateRuleRequest struct {
	DayOfWeek *int    `json:"dayOfWeek,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRuleRequest) ToServiceRequest() *models.UpdateRuleRequest {
	return &models.UpdateRuleRequest{
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		IsActive:  r.IsActive,
	}
}
