package domain

import (
	"fmt"
	"time"
)

// DayOfWeek day of week as stored in schedule tables
type DayOfWeek string

const (
	Sunday    DayOfWeek = "SUNDAY"
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
)

// weekdays indexed by time.Weekday (0=Sunday)
var weekdays = [...]DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayOfWeekFromWeekday maps time.Weekday (0=Sunday) to DayOfWeek
func DayOfWeekFromWeekday(wd time.Weekday) DayOfWeek {
	return weekdays[int(wd)%len(weekdays)]
}

// DayOfWeekFromDate returns the day of week of a calendar date
func DayOfWeekFromDate(date time.Time) DayOfWeek {
	return DayOfWeekFromWeekday(date.Weekday())
}

// ParseDayOfWeek parses "MONDAY" ... "SUNDAY"
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	d := DayOfWeek(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid day of week: %q", s)
	}
	return d, nil
}

// IsValid returns true for one of the seven named days
func (d DayOfWeek) IsValid() bool {
	for _, wd := range weekdays {
		if wd == d {
			return true
		}
	}
	return false
}

// Scan реализует sql.Scanner: в колонке day_of_week допустимы только семь названий дней
func (d *DayOfWeek) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into DayOfWeek", value)
	}

	parsed, err := ParseDayOfWeek(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
