package get_available_dates

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/horizon-develop/tempo-salon/internal/domain"
	getAvailableSlots "github.com/horizon-develop/tempo-salon/internal/usecase/get_available_slots"
)

const defaultConcurrency = 4

// UseCase use case для получения дат, на которые есть свободные слоты
type UseCase struct {
	newResolver  ResolverFactory
	calendarRepo CalendarRepository
	timeProvider TimeProvider
	concurrency  int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// concurrency ограничивает число дней, рассчитываемых одновременно
func NewUseCase(
	newResolver ResolverFactory,
	calendarRepo CalendarRepository,
	timeProvider TimeProvider,
	concurrency int,
	logger Logger,
) *UseCase {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &UseCase{
		newResolver:  newResolver,
		calendarRepo: calendarRepo,
		timeProvider: timeProvider,
		concurrency:  concurrency,
		logger:       logger,
	}
}

// Execute выполняет use case получения дат с доступными слотами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	days, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Сегодня в референсной зоне
	now := uc.timeProvider.Now()
	today := domain.DateOf(now, now.Location())

	uc.logger.Info("GetAvailableDates: service=%s, stylist=%s, from=%s, days=%d",
		req.ServiceID, req.StylistID, today.Format(domain.DateFormat), days)

	// 3. Рассчитываем дни пулом ограниченного размера
	// Результат пишется по индексу, порядок дат сохраняется
	resolver := uc.newResolver(newMemoCalendar(uc.calendarRepo))
	dates := make([]domain.DateAvailability, days)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i := range days {
		date := domain.CalendarDate(today.Year(), today.Month(), today.Day()+i, today.Location())
		g.Go(func() error {
			resp, err := resolver.Execute(gctx, &getAvailableSlots.Request{
				Date:      date,
				ServiceID: req.ServiceID,
				StylistID: req.StylistID,
			})
			if err != nil {
				return fmt.Errorf("date %s: %w", date.Format(domain.DateFormat), err)
			}
			dates[i] = domain.DateAvailability{
				Date:     date,
				HasSlots: len(resp.Slots) > 0,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailableDates: failed to resolve dates for service=%s, stylist=%s: %v",
			req.ServiceID, req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to resolve dates: %v", ErrInternal, err)
	}

	open := 0
	for _, d := range dates {
		if d.HasSlots {
			open++
		}
	}
	uc.logger.Info("GetAvailableDates: %d of %d days have slots for service=%s, stylist=%s",
		open, days, req.ServiceID, req.StylistID)

	return &Response{
		From:  today,
		Dates: dates,
	}, nil
}
