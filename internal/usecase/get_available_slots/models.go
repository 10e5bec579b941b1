package get_available_slots

import (
	"time"

	"github.com/horizon-develop/tempo-salon/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date      time.Time // Дата в референсной часовой зоне (без времени)
	ServiceID string    // ID услуги
	StylistID string    // ID стилиста
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date   time.Time                // Дата, на которую запрашивались слоты
	Slots  []domain.AvailableSlot   // Слоты по возрастанию времени начала
	Reason domain.UnavailableReason // Причина пустого результата, ReasonNone если слоты есть
}
