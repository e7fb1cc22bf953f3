package create_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-CalendarService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgOwnerNotFound      = "владелец календаря не найден"
	msgAppointmentInPast  = "запись в прошлое невозможна"
	msgInvalidTimeSlot    = "время начала не совпадает с началом слота"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/owners/{ownerId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /owners/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(ownerID)
	if err != nil {
		h.logger.Warn("POST /owners/{id}/appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrOwnerNotFound):
			h.logger.Warn("POST /owners/{id}/appointments - Owner not found: owner_id=%s", ownerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, createAppointment.ErrAppointmentInPast):
			h.logger.Warn("POST /owners/{id}/appointments - Appointment in past: owner_id=%s, date=%s, time=%s",
				ownerID, req.AppointmentDate, req.StartTime)
			handlers.RespondBadRequest(w, msgAppointmentInPast)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /owners/{id}/appointments - Invalid time slot: owner_id=%s, time=%s",
				ownerID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /owners/{id}/appointments - Slot not available: owner_id=%s, date=%s, time=%s",
				ownerID, req.AppointmentDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /owners/{id}/appointments - Invalid request: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /owners/{id}/appointments - Failed to create appointment: owner_id=%s, error=%v",
				ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /owners/{id}/appointments - Appointment created successfully: appointment_id=%s, owner_id=%s",
		result.ID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
