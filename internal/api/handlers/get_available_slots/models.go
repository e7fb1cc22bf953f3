package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CalendarOwnerID string          `json:"calendarOwnerId"`
	Date            string          `json:"date"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(ownerID, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CalendarOwnerID: ownerID,
		Date:            date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		CalendarOwnerID: resp.CalendarOwnerID,
		Date:            resp.Date.Format(domain.DateFormat),
		Slots:           slots,
	}
}
