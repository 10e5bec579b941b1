// Package clock provides the current time in a fixed reference timezone.
package clock

import "time"

// Clock возвращает текущее время в заданной часовой зоне
// Часовая зона задаётся конфигурацией, а не зоной хоста
type Clock struct {
	location *time.Location
}

// New создает Clock для часовой зоны loc
func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{location: loc}
}

// Now возвращает текущее время в референсной зоне
func (c *Clock) Now() time.Time {
	return time.Now().In(c.location)
}

// Location возвращает референсную часовую зону
func (c *Clock) Location() *time.Location {
	return c.location
}

// Fixed clock pinned to a single instant, for tests
type Fixed struct {
	At time.Time
}

// Now returns the pinned instant
func (f Fixed) Now() time.Time {
	return f.At
}

// Location returns the location of the pinned instant
func (f Fixed) Location() *time.Location {
	return f.At.Location()
}
