package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest = "некорректные параметры запроса"
	msgOwnerNotFound  = "владелец календаря не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{ownerId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /owners/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(ownerID, dateStr)
	if err != nil {
		h.logger.Warn("GET /owners/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrOwnerNotFound):
			h.logger.Warn("GET /owners/{id}/available-slots - Owner not found: owner_id=%s", ownerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /owners/{id}/available-slots - Invalid request: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /owners/{id}/available-slots - Failed to get slots: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /owners/{id}/available-slots - Slots retrieved successfully: owner_id=%s, date=%s, slots_count=%d",
		ownerID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
