package create_rule

import (
	"github.com/m04kA/SMC-CalendarService/internal/service/rules/models"
)

// CreateRuleRequest HTTP request model
type CreateRuleRequest struct {
	DayOfWeek int    `json:"dayOfWeek"` // 1 = понедельник ... 7 = воскресенье
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRuleRequest) ToServiceRequest(ownerID string) *models.CreateRuleRequest {
	return &models.CreateRuleRequest{
		CalendarOwnerID: ownerID,
		DayOfWeek:       r.DayOfWeek,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
	}
}
