package domain

import (
	"time"

	"github.com/horizon-develop/tempo-salon/pkg/types"
)

// SalonScheduleBlock recurring weekly opening interval of the salon
// Several blocks per day are allowed (split shifts)
type SalonScheduleBlock struct {
	ID        string
	DayOfWeek DayOfWeek
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool
}

// SalonClosure salon-wide unavailability on a specific date
// Nil StartTime/EndTime means the whole day is closed
type SalonClosure struct {
	ID        string
	Date      time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string
}

// IsAllDay returns true if the closure covers the entire day
func (c *SalonClosure) IsAllDay() bool {
	return c.StartTime == nil || c.EndTime == nil
}

// StylistScheduleBlock recurring weekly working interval of a stylist
// No block for a weekday means the stylist does not work that day
type StylistScheduleBlock struct {
	ID        string
	StylistID string
	DayOfWeek DayOfWeek
	StartTime types.TimeString
	EndTime   types.TimeString
}

// StylistAbsence stylist unavailability on a specific date
// Nil StartTime/EndTime means the whole day is unavailable
type StylistAbsence struct {
	ID        string
	StylistID string
	Date      time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string
}

// IsAllDay returns true if the absence covers the entire day
func (a *StylistAbsence) IsAllDay() bool {
	return a.StartTime == nil || a.EndTime == nil
}
