package get_available_dates

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/horizon-develop/tempo-salon/internal/api/handlers"
	"github.com/horizon-develop/tempo-salon/internal/domain"
	getAvailableDates "github.com/horizon-develop/tempo-salon/internal/usecase/get_available_dates"
)

const (
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingStylistID = "ID стилиста обязателен"
	msgInvalidParams    = "некорректные параметры запроса"
)

var msgInvalidDays = fmt.Sprintf("days должно быть целым числом от %d до %d",
	domain.MinAvailableDays, domain.MaxAvailableDays)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/dates
// Query params: serviceId (required), stylistId (required), days (optional, 1-90, default 30)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID := query.Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /availability/dates - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	stylistID := query.Get("stylistId")
	if stylistID == "" {
		h.logger.Warn("GET /availability/dates - Missing stylist ID")
		handlers.RespondBadRequest(w, msgMissingStylistID)
		return
	}

	daysStr := query.Get("days")
	useCaseReq, err := ToUseCaseRequest(serviceID, stylistID, daysStr)
	if err != nil {
		h.logger.Warn("GET /availability/dates - Invalid days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}
	if daysStr != "" && useCaseReq.Days == 0 {
		h.logger.Warn("GET /availability/dates - Invalid days: 0")
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /availability/dates - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability/dates - Failed to get dates: service_id=%s, stylist_id=%s, error=%v",
				serviceID, stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/dates - Dates retrieved successfully: service_id=%s, stylist_id=%s, days=%d",
		serviceID, stylistID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
