package get_available_dates

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/horizon-develop/tempo-salon/internal/domain"
)

// memoCalendar кэширует расписание салона по дню недели в пределах одного запроса
// Остальные запросы идут в обёрнутый репозиторий без изменений
type memoCalendar struct {
	CalendarRepository

	group singleflight.Group
	mu    sync.RWMutex
	salon map[domain.DayOfWeek][]*domain.SalonScheduleBlock
}

func newMemoCalendar(calendar CalendarRepository) *memoCalendar {
	return &memoCalendar{
		CalendarRepository: calendar,
		salon:              make(map[domain.DayOfWeek][]*domain.SalonScheduleBlock),
	}
}

// GetSalonSchedule возвращает закэшированные блоки или загружает их один раз
// Ошибки не кэшируются
func (m *memoCalendar) GetSalonSchedule(ctx context.Context, day domain.DayOfWeek) ([]*domain.SalonScheduleBlock, error) {
	m.mu.RLock()
	blocks, ok := m.salon[day]
	m.mu.RUnlock()
	if ok {
		return blocks, nil
	}

	v, err, _ := m.group.Do(string(day), func() (interface{}, error) {
		// Повторная проверка: предыдущий вызов мог завершиться между чтением и Do
		m.mu.RLock()
		cached, ok := m.salon[day]
		m.mu.RUnlock()
		if ok {
			return cached, nil
		}

		blocks, err := m.CalendarRepository.GetSalonSchedule(ctx, day)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.salon[day] = blocks
		m.mu.Unlock()
		return blocks, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*domain.SalonScheduleBlock), nil
}
