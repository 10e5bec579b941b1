package get_available_slots

import (
	"time"

	"github.com/horizon-develop/tempo-salon/internal/domain"
	getAvailableSlots "github.com/horizon-develop/tempo-salon/internal/usecase/get_available_slots"
)

// AvailableSlot HTTP модель временного слота
type AvailableSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в список слотов
func FromUseCaseResponse(resp *getAvailableSlots.Response) []AvailableSlot {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start: slot.Start.String(),
			End:   slot.End.String(),
		}
	}
	return slots
}

// ToUseCaseRequest создает запрос use case из query параметров
// Дата интерпретируется как календарный день в референсной часовой зоне салона
func ToUseCaseRequest(dateStr, serviceID, stylistID string, loc *time.Location) (*getAvailableSlots.Request, error) {
	date, err := domain.ParseDate(dateStr, loc)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:      date,
		ServiceID: serviceID,
		StylistID: stylistID,
	}, nil
}
