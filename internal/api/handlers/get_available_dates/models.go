package get_available_dates

import (
	"strconv"

	"github.com/horizon-develop/tempo-salon/internal/domain"
	getAvailableDates "github.com/horizon-develop/tempo-salon/internal/usecase/get_available_dates"
)

// DateAvailability HTTP модель доступности даты
type DateAvailability struct {
	Date     string `json:"date"`
	HasSlots bool   `json:"hasSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) []DateAvailability {
	dates := make([]DateAvailability, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = DateAvailability{
			Date:     d.Date.Format(domain.DateFormat),
			HasSlots: d.HasSlots,
		}
	}
	return dates
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустой daysStr означает значение по умолчанию
func ToUseCaseRequest(serviceID, stylistID, daysStr string) (*getAvailableDates.Request, error) {
	days := 0
	if daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, err
		}
		days = parsed
	}

	return &getAvailableDates.Request{
		ServiceID: serviceID,
		StylistID: stylistID,
		Days:      days,
	}, nil
}
