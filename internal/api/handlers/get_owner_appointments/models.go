package get_owner_appointments

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/appointments/models"
)

// ToServiceRequest создает запрос сервиса из параметров запроса
// from/to задают период в формате YYYY-MM-DD, status фильтрует по статусу
func ToServiceRequest(ownerID, fromStr, toStr, statusStr string) (*models.GetOwnerAppointmentsRequest, error) {
	req := &models.GetOwnerAppointmentsRequest{
		CalendarOwnerID: ownerID,
	}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
