package update_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/rules"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRule        = "некорректные параметры правила"
	msgRuleNotFound       = "правило не найдено"
	msgDuplicateRule      = "правило на этот день недели уже существует"
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

// Handle PATCH /api/v1/owners/{ownerId}/availability-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	ruleID := vars["ruleId"]

	var req UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /owners/{id}/availability-rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем правило
	rule, err := h.service.Update(r.Context(), ownerID, ruleID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrRuleNotFound):
			h.logger.Warn("PATCH /owners/{id}/availability-rules/{id} - Rule not found: rule_id=%s, owner_id=%s",
				ruleID, ownerID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, rules.ErrDuplicateRule):
			h.logger.Warn("PATCH /owners/{id}/availability-rules/{id} - Duplicate rule: rule_id=%s, owner_id=%s",
				ruleID, ownerID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateRule)

		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("PATCH /owners/{id}/availability-rules/{id} - Invalid rule: rule_id=%s, error=%v",
				ruleID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("PATCH /owners/{id}/availability-rules/{id} - Failed to update rule: rule_id=%s, error=%v",
				ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /owners/{id}/availability-rules/{id} - Rule updated successfully: rule_id=%s, owner_id=%s",
		ruleID, ownerID)
	handlers.RespondJSON(w, http.StatusOK, rule)
}
