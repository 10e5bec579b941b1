package domain

// Service salon service offered for booking
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           int // в центах
	IsActive        bool
}

// IsBookable returns true if the service can produce availability
func (s *Service) IsBookable() bool {
	return s.IsActive && s.DurationMinutes > 0
}
