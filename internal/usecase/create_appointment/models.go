package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CalendarOwnerID string           // ID владельца календаря
	InviteeName     string           // Имя приглашённого
	InviteeEmail    string           // Email приглашённого
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	Notes           *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              string           // ID созданной записи
	CalendarOwnerID string           // ID владельца календаря
	InviteeName     string           // Имя приглашённого
	InviteeEmail    string           // Email приглашённого
	AppointmentDate time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания (начало + 1 час)
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
