package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/horizon-develop/tempo-salon/internal/domain"
	serviceRepo "github.com/horizon-develop/tempo-salon/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов стилиста на одну дату
type UseCase struct {
	serviceRepo  ServiceRepository
	calendarRepo CalendarRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
	slotStep     int
}

// NewUseCase создает новый экземпляр use case
// slotStep <= 0 заменяется на domain.SlotStepMinutes, metrics может быть nil
func NewUseCase(
	serviceRepo ServiceRepository,
	calendarRepo CalendarRepository,
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
	slotStep int,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if slotStep <= 0 {
		slotStep = domain.SlotStepMinutes
	}
	return &UseCase{
		serviceRepo:  serviceRepo,
		calendarRepo: calendarRepo,
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		slotStep:     slotStep,
	}
}

// WithCalendar возвращает копию use case с другим репозиторием календаря
func (uc *UseCase) WithCalendar(calendarRepo CalendarRepository) *UseCase {
	cp := *uc
	cp.calendarRepo = calendarRepo
	return &cp
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableSlots: service=%s, stylist=%s, date=%s", req.ServiceID, req.StylistID, dateStr)

	// 2. Получаем услугу. Отсутствующая или неактивная услуга - пустой результат
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return uc.empty(req, domain.ReasonServiceUnavailable), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsBookable() {
		uc.logger.Info("GetAvailableSlots: service id=%s is not bookable", req.ServiceID)
		return uc.empty(req, domain.ReasonServiceUnavailable), nil
	}

	// 3. Загружаем календарь дня: пять независимых запросов параллельно
	cal, err := uc.loadDay(ctx, req)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load calendar for stylist=%s, date=%s: %v",
			req.StylistID, dateStr, err)
		return nil, fmt.Errorf("%w: failed to load calendar: %v", ErrInternal, err)
	}

	// 4. Сводим календарь к слотам
	ranges, reason, err := resolveDay(cal, service.DurationMinutes, uc.slotStep, req.Date, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve slots for stylist=%s, date=%s: %v",
			req.StylistID, dateStr, err)
		return nil, fmt.Errorf("%w: failed to resolve slots: %v", ErrInternal, err)
	}
	if reason != domain.ReasonNone {
		uc.logger.Info("GetAvailableSlots: no slots for stylist=%s, date=%s: %s", req.StylistID, dateStr, reason)
		return uc.empty(req, reason), nil
	}

	// 5. Конвертируем минуты в "HH:MM"
	slots, err := toSlots(ranges)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to convert slots: %v", err)
		return nil, fmt.Errorf("%w: failed to convert slots: %v", ErrInternal, err)
	}

	uc.recordMetrics(len(slots), domain.ReasonNone)
	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%s, stylist=%s, date=%s",
		len(slots), req.ServiceID, req.StylistID, dateStr)

	return &Response{
		Date:   req.Date,
		Slots:  slots,
		Reason: domain.ReasonNone,
	}, nil
}

// loadDay загружает расписания, закрытия, отсутствия и бронирования дня
// Ошибка любого запроса отменяет остальные, частичный результат не возвращается
func (uc *UseCase) loadDay(ctx context.Context, req *Request) (dayCalendar, error) {
	var cal dayCalendar
	day := domain.DayOfWeekFromDate(req.Date)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		blocks, err := uc.calendarRepo.GetSalonSchedule(gctx, day)
		if err != nil {
			return fmt.Errorf("salon schedule: %w", err)
		}
		cal.salonBlocks = blocks
		return nil
	})

	g.Go(func() error {
		closures, err := uc.calendarRepo.GetSalonClosures(gctx, req.Date)
		if err != nil {
			return fmt.Errorf("salon closures: %w", err)
		}
		cal.closures = closures
		return nil
	})

	g.Go(func() error {
		blocks, err := uc.calendarRepo.GetStylistSchedule(gctx, req.StylistID, day)
		if err != nil {
			return fmt.Errorf("stylist schedule: %w", err)
		}
		cal.stylistBlocks = blocks
		return nil
	})

	g.Go(func() error {
		absences, err := uc.calendarRepo.GetStylistAbsences(gctx, req.StylistID, req.Date)
		if err != nil {
			return fmt.Errorf("stylist absences: %w", err)
		}
		cal.absences = absences
		return nil
	})

	g.Go(func() error {
		bookings, err := uc.bookingRepo.GetActiveByStylistAndDate(gctx, req.StylistID, req.Date)
		if err != nil {
			return fmt.Errorf("bookings: %w", err)
		}
		cal.bookings = bookings
		return nil
	})

	if err := g.Wait(); err != nil {
		return dayCalendar{}, err
	}
	return cal, nil
}

func (uc *UseCase) empty(req *Request, reason domain.UnavailableReason) *Response {
	uc.recordMetrics(0, reason)
	return &Response{
		Date:   req.Date,
		Slots:  []domain.AvailableSlot{},
		Reason: reason,
	}
}

func (uc *UseCase) recordMetrics(slots int, reason domain.UnavailableReason) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.RecordAvailability(slots, string(reason))
}
