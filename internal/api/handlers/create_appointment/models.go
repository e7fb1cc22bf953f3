package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	createAppointment "github.com/m04kA/SMC-CalendarService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	InviteeName     string  `json:"inviteeName"`
	InviteeEmail    string  `json:"inviteeEmail"`
	AppointmentDate string  `json:"appointmentDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`       // "10:00"
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	CalendarOwnerID string  `json:"calendarOwnerId"`
	InviteeName     string  `json:"inviteeName"`
	InviteeEmail    string  `json:"inviteeEmail"`
	AppointmentDate string  `json:"appointmentDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(ownerID string) (*createAppointment.Request, error) {
	// Парсим дату
	appointmentDate, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CalendarOwnerID: ownerID,
		InviteeName:     r.InviteeName,
		InviteeEmail:    r.InviteeEmail,
		Date:            appointmentDate,
		StartTime:       startTime,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		CalendarOwnerID: resp.CalendarOwnerID,
		InviteeName:     resp.InviteeName,
		InviteeEmail:    resp.InviteeEmail,
		AppointmentDate: resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
