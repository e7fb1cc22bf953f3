package delete_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/rules"
)

const (
	msgRuleNotFound = "правило не найдено"
)

type Handler struct {
	service RuleService
	logger  Logger
}

func NewHandler(service RuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/owners/{ownerId}/availability-rules/{ruleId}
// Уже созданные записи при удалении правила не затрагиваются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	ruleID := vars["ruleId"]

	// Удаляем правило
	if err := h.service.Delete(r.Context(), ownerID, ruleID); err != nil {
		switch {
		case errors.Is(err, rules.ErrRuleNotFound):
			h.logger.Warn("DELETE /owners/{id}/availability-rules/{id} - Rule not found: rule_id=%s, owner_id=%s",
				ruleID, ownerID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		default:
			h.logger.Error("DELETE /owners/{id}/availability-rules/{id} - Failed to delete rule: rule_id=%s, error=%v",
				ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /owners/{id}/availability-rules/{id} - Rule deleted successfully: rule_id=%s, owner_id=%s",
		ruleID, ownerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
