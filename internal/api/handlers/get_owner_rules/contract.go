package get_owner_rules

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/rules/models"
)

type RuleService interface {
	GetAllByOwner(ctx context.Context, ownerID string) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
