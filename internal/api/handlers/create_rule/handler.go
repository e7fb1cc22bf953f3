package create_rule

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
	msgOwnerNotFound      = "владелец календаря не найден"
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

// Handle POST /api/v1/owners/{ownerId}/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]

	var req CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /owners/{id}/availability-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем правило
	rule, err := h.service.Create(r.Context(), req.ToServiceRequest(ownerID))
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrOwnerNotFound):
			h.logger.Warn("POST /owners/{id}/availability-rules - Owner not found: owner_id=%s", ownerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, rules.ErrDuplicateRule):
			h.logger.Warn("POST /owners/{id}/availability-rules - Duplicate rule: owner_id=%s, day=%d",
				ownerID, req.DayOfWeek)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateRule)

		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("POST /owners/{id}/availability-rules - Invalid rule: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("POST /owners/{id}/availability-rules - Failed to create rule: owner_id=%s, error=%v",
				ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /owners/{id}/availability-rules - Rule created successfully: rule_id=%s, owner_id=%s",
		rule.ID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}
