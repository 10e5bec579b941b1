package domain

import (
	"time"

	"github.com/horizon-develop/tempo-salon/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusNoShow    BookingStatus = "NO_SHOW"
)

// ActiveStatuses статусы бронирований, которые занимают время стилиста
// Используется для фильтрации конфликтов при расчёте доступности
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}

// Booking represents a reservation occupying [StartTime, EndTime) of a stylist on Date
type Booking struct {
	ID        string
	ServiceID string
	StylistID string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    BookingStatus
}

// IsActive returns true if the booking blocks the stylist's time
func (b *Booking) IsActive() bool {
	for _, s := range ActiveStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}
