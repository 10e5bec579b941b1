package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/horizon-develop/tempo-salon/internal/api/handlers"
	getAvailableSlots "github.com/horizon-develop/tempo-salon/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingStylistID = "ID стилиста обязателен"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), serviceId (required), stylistId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	serviceID := query.Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /availability - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	stylistID := query.Get("stylistId")
	if stylistID == "" {
		h.logger.Warn("GET /availability - Missing stylist ID")
		handlers.RespondBadRequest(w, msgMissingStylistID)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(dateStr, serviceID, stylistID, h.location)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability - Failed to get slots: service_id=%s, stylist_id=%s, date=%s, error=%v",
				serviceID, stylistID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Slots retrieved successfully: service_id=%s, stylist_id=%s, date=%s, slots_count=%d, reason=%q",
		serviceID, stylistID, dateStr, len(result.Slots), result.Reason)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
