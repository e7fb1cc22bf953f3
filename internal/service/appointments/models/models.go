package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetOwnerAppointmentsRequest запрос на получение записей владельца календаря
type GetOwnerAppointmentsRequest struct {
	CalendarOwnerID string     `json:"calendarOwnerId"`
	StartDate       *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetOwnerAppointmentsRequest) ToDomainFilter() (domain.OwnerAppointmentsFilter, error) {
	filter := domain.OwnerAppointmentsFilter{
		CalendarOwnerID: r.CalendarOwnerID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              string `json:"id"`
	CalendarOwnerID string `json:"calendarOwnerId"`
	InviteeName     string `json:"inviteeName"`
	InviteeEmail    string `json:"inviteeEmail"`
	AppointmentDate string `json:"appointmentDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`         // "11:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	Notes       *string `json:"notes,omitempty"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		CalendarOwnerID: a.CalendarOwnerID,
		InviteeName:     a.InviteeName,
		InviteeEmail:    a.InviteeEmail,
		AppointmentDate: a.AppointmentDate.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	// Конец записи вычисляется из начала и длительности
	if endTime, err := a.EndTime(); err == nil {
		resp.EndTime = endTime.String()
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	// Валидируем статус
	validStatuses := []domain.AppointmentStatus{
		domain.StatusConfirmed,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
