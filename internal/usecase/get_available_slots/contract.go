package get_available_slots

import (
	"context"
	"time"

	"github.com/horizon-develop/tempo-salon/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	// GetByID получает услугу по ID
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// CalendarRepository интерфейс репозитория календаря салона и стилистов
type CalendarRepository interface {
	// GetSalonSchedule получает активные блоки работы салона на день недели
	GetSalonSchedule(ctx context.Context, day domain.DayOfWeek) ([]*domain.SalonScheduleBlock, error)
	// GetSalonClosures получает закрытия салона на дату
	GetSalonClosures(ctx context.Context, date time.Time) ([]*domain.SalonClosure, error)
	// GetStylistSchedule получает рабочие блоки стилиста на день недели
	GetStylistSchedule(ctx context.Context, stylistID string, day domain.DayOfWeek) ([]*domain.StylistScheduleBlock, error)
	// GetStylistAbsences получает отсутствия стилиста на дату
	GetStylistAbsences(ctx context.Context, stylistID string, date time.Time) ([]*domain.StylistAbsence, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByStylistAndDate получает активные бронирования стилиста на дату
	GetActiveByStylistAndDate(ctx context.Context, stylistID string, date time.Time) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени в референсной зоне
type TimeProvider interface {
	Now() time.Time
}

// MetricsRecorder интерфейс для записи метрик доступности
type MetricsRecorder interface {
	RecordAvailability(slots int, reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
