package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	CalendarOwnerID string    // ID владельца календаря
	Date            time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов на день.
// Слоты идут по возрастанию времени начала; занятые слоты
// присутствуют в списке с Available = false.
type Response struct {
	CalendarOwnerID string
	Date            time.Time
	Slots           []domain.TimeSlot
}
