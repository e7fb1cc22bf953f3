package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked time slot in an owner's calendar.
// Duration is fixed at SlotDurationMinutes; the end instant is always
// StartTime + duration on AppointmentDate.
type Appointment struct {
	ID              string
	CalendarOwnerID string
	InviteeName     string
	InviteeEmail    string
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Notes           *string
	Status          AppointmentStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the appointment holds its slot
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// EndTime returns the clock-of-day end of the appointment
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// OwnerAppointmentsFilter filter for listing an owner's appointments
type OwnerAppointmentsFilter struct {
	CalendarOwnerID string
	StartDate       *time.Time         // period start (inclusive), nil = unbounded
	EndDate         *time.Time         // period end (inclusive), nil = unbounded
	Status          *AppointmentStatus // nil = any status
	ForUpdate       bool               // lock matched rows, only honored inside a transaction
}
