package get_available_dates

import (
	"context"
	"time"

	getAvailableSlots "github.com/horizon-develop/tempo-salon/internal/usecase/get_available_slots"
)

// SlotsResolver расчёт слотов на одну дату
type SlotsResolver interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository = getAvailableSlots.CalendarRepository

// ResolverFactory создает SlotsResolver поверх переданного репозитория календаря
// Вызывается один раз на запрос диапазона дат
type ResolverFactory func(calendar CalendarRepository) SlotsResolver

// TimeProvider интерфейс для получения текущего времени в референсной зоне
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
