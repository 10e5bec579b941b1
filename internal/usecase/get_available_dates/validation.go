package get_available_dates

import (
	"fmt"
	"strings"

	"github.com/horizon-develop/tempo-salon/internal/domain"
)

// validateRequest валидирует запрос и возвращает количество дней
func validateRequest(req *Request) (int, error) {
	if req == nil {
		return 0, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return 0, fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.StylistID) == "" {
		return 0, fmt.Errorf("%w: stylistID is required", ErrInvalidInput)
	}

	if req.Days == 0 {
		return domain.DefaultAvailableDays, nil
	}

	if req.Days < domain.MinAvailableDays || req.Days > domain.MaxAvailableDays {
		return 0, fmt.Errorf("%w: days must be between %d and %d",
			ErrInvalidInput, domain.MinAvailableDays, domain.MaxAvailableDays)
	}

	return req.Days, nil
}
