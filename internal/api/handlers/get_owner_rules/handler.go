package get_owner_rules

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/rules"
)

const (
	msgOwnerNotFound = "владелец календаря не найден"
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

// Handle GET /api/v1/owners/{ownerId}/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]

	// Получаем правила
	result, err := h.service.GetAllByOwner(r.Context(), ownerID)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrOwnerNotFound):
			h.logger.Warn("GET /owners/{id}/availability-rules - Owner not found: owner_id=%s", ownerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		default:
			h.logger.Error("GET /owners/{id}/availability-rules - Failed to get rules: owner_id=%s, error=%v",
				ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/{id}/availability-rules - Rules retrieved successfully: owner_id=%s, count=%d",
		ownerID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
