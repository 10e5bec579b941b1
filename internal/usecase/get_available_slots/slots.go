package get_available_slots

import (
	"fmt"
	"time"

	"github.com/horizon-develop/tempo-salon/internal/domain"
	"github.com/horizon-develop/tempo-salon/pkg/timerange"
	"github.com/horizon-develop/tempo-salon/pkg/types"
)

// dayCalendar календарные данные одного дня для одного стилиста
type dayCalendar struct {
	salonBlocks   []*domain.SalonScheduleBlock
	closures      []*domain.SalonClosure
	stylistBlocks []*domain.StylistScheduleBlock
	absences      []*domain.StylistAbsence
	bookings      []*domain.Booking
}

// resolveDay сводит календарь дня к списку слотов длиной duration на сетке step
// Пустой результат всегда сопровождается причиной
func resolveDay(cal dayCalendar, duration, step int, date, now time.Time) ([]timerange.Range, domain.UnavailableReason, error) {
	// Шаг 2: расписание салона на день недели
	if len(cal.salonBlocks) == 0 {
		return nil, domain.ReasonSalonClosed, nil
	}
	salon := make([]timerange.Range, 0, len(cal.salonBlocks))
	for _, block := range cal.salonBlocks {
		r, err := blockRange(block.StartTime, block.EndTime)
		if err != nil {
			return nil, domain.ReasonNone, fmt.Errorf("salon block id=%s: %w", block.ID, err)
		}
		salon = append(salon, r)
	}

	// Шаг 3: закрытия салона. Закрытие на весь день обрывает расчёт
	for _, closure := range cal.closures {
		if closure.IsAllDay() {
			return nil, domain.ReasonSalonClosure, nil
		}
	}
	for _, closure := range cal.closures {
		start, end, err := cutBounds(*closure.StartTime, *closure.EndTime)
		if err != nil {
			return nil, domain.ReasonNone, fmt.Errorf("salon closure id=%s: %w", closure.ID, err)
		}
		salon = timerange.Subtract(salon, start, end)
	}

	// Шаг 4
	if len(salon) == 0 {
		return nil, domain.ReasonSalonClosure, nil
	}

	// Шаг 5: расписание стилиста на день недели
	if len(cal.stylistBlocks) == 0 {
		return nil, domain.ReasonStylistOff, nil
	}
	stylist := make([]timerange.Range, 0, len(cal.stylistBlocks))
	for _, block := range cal.stylistBlocks {
		r, err := blockRange(block.StartTime, block.EndTime)
		if err != nil {
			return nil, domain.ReasonNone, fmt.Errorf("stylist block id=%s: %w", block.ID, err)
		}
		stylist = append(stylist, r)
	}

	// Шаг 6: отсутствия стилиста, с тем же правилом для всего дня
	for _, absence := range cal.absences {
		if absence.IsAllDay() {
			return nil, domain.ReasonStylistAbsence, nil
		}
	}
	for _, absence := range cal.absences {
		start, end, err := cutBounds(*absence.StartTime, *absence.EndTime)
		if err != nil {
			return nil, domain.ReasonNone, fmt.Errorf("stylist absence id=%s: %w", absence.ID, err)
		}
		stylist = timerange.Subtract(stylist, start, end)
	}
	if len(stylist) == 0 {
		return nil, domain.ReasonStylistAbsence, nil
	}

	// Шаг 7: общее окно салона и стилиста
	joint := timerange.Intersect(salon, stylist)
	if len(joint) == 0 {
		return nil, domain.ReasonNoOverlap, nil
	}

	// Шаг 8: кандидаты на сетке, конфликты с бронированиями, отсечка по текущему времени
	candidates := timerange.GenerateSlots(joint, duration, step)
	if len(candidates) == 0 {
		return nil, domain.ReasonNoOverlap, nil
	}

	blocked := make([]timerange.Range, 0, len(cal.bookings))
	for _, booking := range cal.bookings {
		if !booking.IsActive() {
			continue
		}
		start, end, err := cutBounds(booking.StartTime, booking.EndTime)
		if err != nil {
			return nil, domain.ReasonNone, fmt.Errorf("booking id=%s: %w", booking.ID, err)
		}
		// Пустое или перевёрнутое бронирование ничего не блокирует
		if !booking.StartTime.IsBefore(booking.EndTime) {
			continue
		}
		blocked = append(blocked, timerange.Range{Start: start, End: end})
	}
	slots := timerange.RemoveConflicts(candidates, blocked)

	if isSameDay(date, now) {
		slots = startingAfter(slots, now.Hour()*60+now.Minute())
	}

	if len(slots) == 0 {
		return nil, domain.ReasonFullyBooked, nil
	}
	return slots, domain.ReasonNone, nil
}

// toSlots конвертирует интервалы в минутах обратно в "HH:MM"
func toSlots(ranges []timerange.Range) ([]domain.AvailableSlot, error) {
	slots := make([]domain.AvailableSlot, 0, len(ranges))
	for _, r := range ranges {
		start, err := types.FromMinutes(r.Start)
		if err != nil {
			return nil, err
		}
		end, err := start.AddMinutes(r.Duration())
		if err != nil {
			return nil, err
		}
		slots = append(slots, domain.AvailableSlot{Start: start, End: end})
	}
	return slots, nil
}

// startingAfter оставляет слоты, начинающиеся строго после minute
func startingAfter(slots []timerange.Range, minute int) []timerange.Range {
	result := make([]timerange.Range, 0, len(slots))
	for _, slot := range slots {
		if slot.Start > minute {
			result = append(result, slot)
		}
	}
	return result
}

// blockRange парсит блок расписания в непустой интервал
func blockRange(start, end types.TimeString) (timerange.Range, error) {
	from, to, err := cutBounds(start, end)
	if err != nil {
		return timerange.Range{}, err
	}
	r, err := timerange.New(from, to)
	if err != nil {
		return timerange.Range{}, fmt.Errorf("%w: %v", ErrInvalidCalendarData, err)
	}
	return r, nil
}

// cutBounds парсит границы выреза в минуты без проверки порядка
// Пустой или перевёрнутый вырез timerange.Subtract игнорирует
func cutBounds(start, end types.TimeString) (int, int, error) {
	from, err := start.Minutes()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: start: %v", ErrInvalidCalendarData, err)
	}
	to, err := end.Minutes()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: end: %v", ErrInvalidCalendarData, err)
	}
	return from, to, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
