package domain

import "time"

// calendarHour час, к которому привязывается календарная дата
// В некоторых зонах полночь пропускается при переходе на летнее время, полдень существует всегда
const calendarHour = 12

// CalendarDate возвращает дату year-month-day в зоне loc, привязанную к полудню
// Переполнение day нормализуется, как в time.Date
func CalendarDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, calendarHour, 0, 0, 0, loc)
}

// DateOf возвращает календарную дату момента t в зоне loc
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return CalendarDate(y, m, d, loc)
}

// ParseDate парсит "YYYY-MM-DD" как календарную дату в зоне loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := parsed.Date()
	return CalendarDate(y, m, d, loc), nil
}
