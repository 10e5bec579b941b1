package domain

// Slot grid
const (
	// SlotStepMinutes шаг сетки слотов: все услуги начинаются на получасе
	SlotStepMinutes = 30
)

// Date range query limits
const (
	DefaultAvailableDays = 30
	MinAvailableDays     = 1
	MaxAvailableDays     = 90
)

// DefaultTimezone референсная часовая зона салона
const DefaultTimezone = "America/Argentina/Buenos_Aires"

// DateFormat формат календарной даты YYYY-MM-DD
const DateFormat = "2006-01-02"
