package get_available_dates

import (
	"time"

	"github.com/horizon-develop/tempo-salon/internal/domain"
)

// Request модель запроса на получение дат с доступными слотами
type Request struct {
	ServiceID string // ID услуги
	StylistID string // ID стилиста
	Days      int    // Количество дней начиная с сегодня, 0 - значение по умолчанию
}

// Response модель ответа
type Response struct {
	From  time.Time                 // Сегодня в референсной зоне
	Dates []domain.DateAvailability // Ровно Days записей по возрастанию даты
}
