package get_owner_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/appointments"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest = "некорректные параметры запроса"
	msgOwnerNotFound  = "владелец календаря не найден"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{ownerId}/appointments
// Query params: from, to (YYYY-MM-DD, опционально), status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]

	query := r.URL.Query()

	// Формируем запрос к сервису (с парсингом периода)
	serviceReq, err := ToServiceRequest(ownerID, query.Get("from"), query.Get("to"), query.Get("status"))
	if err != nil {
		h.logger.Warn("GET /owners/{id}/appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем записи
	result, err := h.service.GetOwnerAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrOwnerNotFound):
			h.logger.Warn("GET /owners/{id}/appointments - Owner not found: owner_id=%s", ownerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /owners/{id}/appointments - Invalid request: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /owners/{id}/appointments - Failed to get appointments: owner_id=%s, error=%v",
				ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/{id}/appointments - Appointments retrieved successfully: owner_id=%s, count=%d",
		ownerID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
