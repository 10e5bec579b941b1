package domain

import (
	"time"

	"github.com/horizon-develop/tempo-salon/pkg/types"
)

// AvailableSlot represents a bookable window exactly as long as the service duration
type AvailableSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// DateAvailability tells whether a calendar date has at least one open slot
type DateAvailability struct {
	Date     time.Time
	HasSlots bool
}

// UnavailableReason explains why a day has no slots
type UnavailableReason string

const (
	ReasonNone               UnavailableReason = ""
	ReasonServiceUnavailable UnavailableReason = "service_unavailable"
	ReasonSalonClosed        UnavailableReason = "salon_closed"
	ReasonSalonClosure       UnavailableReason = "salon_closure"
	ReasonStylistOff         UnavailableReason = "stylist_off"
	ReasonStylistAbsence     UnavailableReason = "stylist_absence"
	ReasonNoOverlap          UnavailableReason = "no_overlap"
	ReasonFullyBooked        UnavailableReason = "fully_booked"
)
