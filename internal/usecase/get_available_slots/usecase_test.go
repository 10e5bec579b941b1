package get_available_slots

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizon-develop/tempo-salon/internal/domain"
	serviceRepo "github.com/horizon-develop/tempo-salon/internal/infra/storage/service"
	"github.com/horizon-develop/tempo-salon/pkg/clock"
	"github.com/horizon-develop/tempo-salon/pkg/logger"
	"github.com/horizon-develop/tempo-salon/pkg/timerange"
	"github.com/horizon-develop/tempo-salon/pkg/types"
)

var art = time.FixedZone("ART", -3*60*60)

// 2026-03-02 - понедельник
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, art)

type fakeServiceRepo struct {
	services map[string]*domain.Service
	err      error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id string) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s, nil
}

type fakeCalendarRepo struct {
	mu    sync.Mutex
	calls int
	days  []domain.DayOfWeek

	salon    map[domain.DayOfWeek][]*domain.SalonScheduleBlock
	closures map[string][]*domain.SalonClosure
	stylist  map[domain.DayOfWeek][]*domain.StylistScheduleBlock
	absences map[string][]*domain.StylistAbsence
	err      error
}

func (f *fakeCalendarRepo) track(day domain.DayOfWeek) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if day != "" {
		f.days = append(f.days, day)
	}
}

func (f *fakeCalendarRepo) GetSalonSchedule(_ context.Context, day domain.DayOfWeek) ([]*domain.SalonScheduleBlock, error) {
	f.track(day)
	if f.err != nil {
		return nil, f.err
	}
	return f.salon[day], nil
}

func (f *fakeCalendarRepo) GetSalonClosures(_ context.Context, date time.Time) ([]*domain.SalonClosure, error) {
	f.track("")
	return f.closures[date.Format(domain.DateFormat)], nil
}

func (f *fakeCalendarRepo) GetStylistSchedule(_ context.Context, _ string, day domain.DayOfWeek) ([]*domain.StylistScheduleBlock, error) {
	f.track(day)
	return f.stylist[day], nil
}

func (f *fakeCalendarRepo) GetStylistAbsences(_ context.Context, _ string, date time.Time) ([]*domain.StylistAbsence, error) {
	f.track("")
	return f.absences[date.Format(domain.DateFormat)], nil
}

type fakeBookingRepo struct {
	bookings map[string][]*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetActiveByStylistAndDate(_ context.Context, _ string, date time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings[date.Format(domain.DateFormat)], nil
}

type fakeMetrics struct {
	mu      sync.Mutex
	reasons []string
	slots   []int
}

func (f *fakeMetrics) RecordAvailability(slots int, reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots = append(f.slots, slots)
	f.reasons = append(f.reasons, reason)
}

func tp(s string) *types.TimeString {
	t := types.TimeString(s)
	return &t
}

// salonFixture салон открыт по понедельникам 09:00-18:00,
// стилист работает 09:00-13:00 и 14:00-18:00, бронь 10:00-10:30
type salonFixture struct {
	services *fakeServiceRepo
	calendar *fakeCalendarRepo
	bookings *fakeBookingRepo
	metrics  *fakeMetrics
}

func newSalonFixture() *salonFixture {
	date := monday.Format(domain.DateFormat)
	return &salonFixture{
		services: &fakeServiceRepo{services: map[string]*domain.Service{
			"cut": {ID: "cut", Name: "Corte", DurationMinutes: 30, Price: 1500000, IsActive: true},
		}},
		calendar: &fakeCalendarRepo{
			salon: map[domain.DayOfWeek][]*domain.SalonScheduleBlock{
				domain.Monday: {{ID: "s1", DayOfWeek: domain.Monday, StartTime: "09:00", EndTime: "18:00", IsActive: true}},
			},
			closures: map[string][]*domain.SalonClosure{},
			stylist: map[domain.DayOfWeek][]*domain.StylistScheduleBlock{
				domain.Monday: {
					{ID: "b1", StylistID: "ana", DayOfWeek: domain.Monday, StartTime: "09:00", EndTime: "13:00"},
					{ID: "b2", StylistID: "ana", DayOfWeek: domain.Monday, StartTime: "14:00", EndTime: "18:00"},
				},
			},
			absences: map[string][]*domain.StylistAbsence{},
		},
		bookings: &fakeBookingRepo{bookings: map[string][]*domain.Booking{
			date: {{ID: "bk1", StylistID: "ana", StartTime: "10:00", EndTime: "10:30", Status: domain.StatusConfirmed}},
		}},
		metrics: &fakeMetrics{},
	}
}

func (f *salonFixture) useCase(now time.Time) *UseCase {
	return NewUseCase(f.services, f.calendar, f.bookings, clock.Fixed{At: now}, 0, f.metrics, logger.NewNop())
}

func starts(slots []domain.AvailableSlot) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.Start.String())
	}
	return result
}

func request(serviceID string) *Request {
	return &Request{Date: monday, ServiceID: serviceID, StylistID: "ana"}
}

func TestExecute_EndToEnd(t *testing.T) {
	f := newSalonFixture()
	uc := f.useCase(monday.AddDate(0, 0, -1).Add(8 * time.Hour))

	resp, err := uc.Execute(context.Background(), request("cut"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "09:30", "10:30", "11:00", "11:30", "12:00", "12:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
	}, starts(resp.Slots))
	assert.Equal(t, domain.ReasonNone, resp.Reason)
	assert.Equal(t, domain.AvailableSlot{Start: "09:00", End: "09:30"}, resp.Slots[0])
	assert.Equal(t, domain.AvailableSlot{Start: "17:30", End: "18:00"}, resp.Slots[len(resp.Slots)-1])

	assert.ElementsMatch(t,
		[]domain.DayOfWeek{domain.Monday, domain.Monday},
		f.calendar.days, "weekday lookups use the date's weekday")
	assert.Equal(t, []int{15}, f.metrics.slots)
}

func TestExecute_SlotsMatchServiceDuration(t *testing.T) {
	f := newSalonFixture()
	f.services.services["color"] = &domain.Service{ID: "color", DurationMinutes: 90, IsActive: true}
	uc := f.useCase(monday.AddDate(0, 0, 1))

	resp, err := uc.Execute(context.Background(), request("color"))
	require.NoError(t, err)

	// 09:00-10:30 пересекается с бронью 10:00, 09:30-11:00 тоже
	assert.Equal(t, []string{"10:30", "11:00", "11:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30"}, starts(resp.Slots))
	for _, s := range resp.Slots {
		start, err := s.Start.Minutes()
		require.NoError(t, err)
		end, err := s.End.Minutes()
		require.NoError(t, err)
		assert.Equal(t, 90, end-start)
	}
}

func TestExecute_SameDayCutoff(t *testing.T) {
	t.Run("grid after 14:31", func(t *testing.T) {
		f := newSalonFixture()
		uc := f.useCase(monday.Add(14*time.Hour + 31*time.Minute))

		resp, err := uc.Execute(context.Background(), request("cut"))
		require.NoError(t, err)
		assert.Equal(t, []string{"15:00", "15:30", "16:00", "16:30", "17:00", "17:30"}, starts(resp.Slots))
	})

	t.Run("slot at 14:32 included", func(t *testing.T) {
		f := newSalonFixture()
		f.calendar.stylist[domain.Monday] = []*domain.StylistScheduleBlock{
			{ID: "b3", StylistID: "ana", DayOfWeek: domain.Monday, StartTime: "14:02", EndTime: "16:00"},
		}
		uc := f.useCase(monday.Add(14*time.Hour + 31*time.Minute))

		resp, err := uc.Execute(context.Background(), request("cut"))
		require.NoError(t, err)
		assert.Equal(t, []string{"14:32", "15:02"}, starts(resp.Slots))
	})

	t.Run("slot at exactly now excluded", func(t *testing.T) {
		f := newSalonFixture()
		f.calendar.stylist[domain.Monday] = []*domain.StylistScheduleBlock{
			{ID: "b3", StylistID: "ana", DayOfWeek: domain.Monday, StartTime: "14:01", EndTime: "16:00"},
		}
		uc := f.useCase(monday.Add(14*time.Hour + 31*time.Minute))

		resp, err := uc.Execute(context.Background(), request("cut"))
		require.NoError(t, err)
		assert.Equal(t, []string{"15:01"}, starts(resp.Slots))
	})

	t.Run("late evening leaves nothing", func(t *testing.T) {
		f := newSalonFixture()
		uc := f.useCase(monday.Add(17*time.Hour + 30*time.Minute))

		resp, err := uc.Execute(context.Background(), request("cut"))
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.Equal(t, domain.ReasonFullyBooked, resp.Reason)
	})
}

func TestExecute_PastDateComputedWithoutCutoff(t *testing.T) {
	f := newSalonFixture()
	uc := f.useCase(monday.AddDate(0, 0, 7).Add(20 * time.Hour))

	resp, err := uc.Execute(context.Background(), request("cut"))
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 15)
}

func TestExecute_EmptyOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		service string
		mutate  func(f *salonFixture)
		reason  domain.UnavailableReason
	}{
		{
			name:    "inactive service",
			service: "cut",
			mutate:  func(f *salonFixture) { f.services.services["cut"].IsActive = false },
			reason:  domain.ReasonServiceUnavailable,
		},
		{
			name:    "missing service",
			service: "unknown",
			mutate:  func(*salonFixture) {},
			reason:  domain.ReasonServiceUnavailable,
		},
		{
			name:    "salon does not open that weekday",
			service: "cut",
			mutate:  func(f *salonFixture) { delete(f.calendar.salon, domain.Monday) },
			reason:  domain.ReasonSalonClosed,
		},
		{
			name:    "all-day salon closure wins over partial closures",
			service: "cut",
			mutate: func(f *salonFixture) {
				f.calendar.closures[monday.Format(domain.DateFormat)] = []*domain.SalonClosure{
					{ID: "c1", StartTime: tp("09:00"), EndTime: tp("10:00")},
					{ID: "c2", Reason: func() *string { s := "Feriado"; return &s }()},
				}
			},
			reason: domain.ReasonSalonClosure,
		},
		{
			name:    "partial closures cover the whole day",
			service: "cut",
			mutate: func(f *salonFixture) {
				f.calendar.closures[monday.Format(domain.DateFormat)] = []*domain.SalonClosure{
					{ID: "c1", StartTime: tp("09:00"), EndTime: tp("12:00")},
					{ID: "c2", StartTime: tp("11:00"), EndTime: tp("18:00")},
				}
			},
			reason: domain.ReasonSalonClosure,
		},
		{
			name:    "stylist does not work that weekday",
			service: "cut",
			mutate:  func(f *salonFixture) { delete(f.calendar.stylist, domain.Monday) },
			reason:  domain.ReasonStylistOff,
		},
		{
			name:    "all-day stylist absence",
			service: "cut",
			mutate: func(f *salonFixture) {
				f.calendar.absences[monday.Format(domain.DateFormat)] = []*domain.StylistAbsence{
					{ID: "a1", StylistID: "ana"},
				}
			},
			reason: domain.ReasonStylistAbsence,
		},
		{
			name:    "no overlap between salon and stylist",
			service: "cut",
			mutate: func(f *salonFixture) {
				f.calendar.salon[domain.Monday] = []*domain.SalonScheduleBlock{
					{ID: "s1", DayOfWeek: domain.Monday, StartTime: "13:00", EndTime: "14:00", IsActive: true},
				}
			},
			reason: domain.ReasonNoOverlap,
		},
		{
			name:    "fully booked",
			service: "cut",
			mutate: func(f *salonFixture) {
				f.bookings.bookings[monday.Format(domain.DateFormat)] = []*domain.Booking{
					{ID: "bk1", StartTime: "09:00", EndTime: "13:00", Status: domain.StatusConfirmed},
					{ID: "bk2", StartTime: "14:00", EndTime: "18:00", Status: domain.StatusCompleted},
				}
			},
			reason: domain.ReasonFullyBooked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSalonFixture()
			tt.mutate(f)
			uc := f.useCase(monday.AddDate(0, 0, -1))

			resp, err := uc.Execute(context.Background(), request(tt.service))
			require.NoError(t, err)
			assert.NotNil(t, resp.Slots)
			assert.Empty(t, resp.Slots)
			assert.Equal(t, tt.reason, resp.Reason)
			assert.Equal(t, []string{string(tt.reason)}, f.metrics.reasons)
		})
	}
}

func TestExecute_InactiveServiceSkipsCalendar(t *testing.T) {
	f := newSalonFixture()
	f.services.services["cut"].IsActive = false
	uc := f.useCase(monday)

	_, err := uc.Execute(context.Background(), request("cut"))
	require.NoError(t, err)
	assert.Zero(t, f.calendar.calls)
}

func TestExecute_PartialClosureAndAbsence(t *testing.T) {
	f := newSalonFixture()
	date := monday.Format(domain.DateFormat)
	f.calendar.closures[date] = []*domain.SalonClosure{
		{ID: "c1", StartTime: tp("11:00"), EndTime: tp("12:00")},
	}
	f.calendar.absences[date] = []*domain.StylistAbsence{
		{ID: "a1", StylistID: "ana", StartTime: tp("15:00"), EndTime: tp("16:30")},
	}
	uc := f.useCase(monday.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), request("cut"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"09:00", "09:30", "10:30", "12:00", "12:30",
		"14:00", "14:30", "16:30", "17:00", "17:30",
	}, starts(resp.Slots))
}

func TestExecute_OverlappingSalonBlocks(t *testing.T) {
	f := newSalonFixture()
	f.calendar.salon[domain.Monday] = []*domain.SalonScheduleBlock{
		{ID: "s1", DayOfWeek: domain.Monday, StartTime: "09:00", EndTime: "12:00", IsActive: true},
		{ID: "s2", DayOfWeek: domain.Monday, StartTime: "11:00", EndTime: "13:00", IsActive: true},
	}
	uc := f.useCase(monday.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), request("cut"))
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30", "12:00", "12:30"}, starts(resp.Slots))
}

func TestExecute_EmptyOrInvertedBookingBlocksNothing(t *testing.T) {
	f := newSalonFixture()
	f.bookings.bookings[monday.Format(domain.DateFormat)] = []*domain.Booking{
		{ID: "bk1", StartTime: "10:30", EndTime: "10:00", Status: domain.StatusConfirmed},
		{ID: "bk2", StartTime: "11:00", EndTime: "11:00", Status: domain.StatusCompleted},
	}
	uc := f.useCase(monday.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), request("cut"))
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 16)
}

func TestToSlots_EndOfDay(t *testing.T) {
	slots, err := toSlots([]timerange.Range{{Start: 1380, End: 1440}})
	require.NoError(t, err)
	assert.Equal(t, []domain.AvailableSlot{{Start: "23:00", End: "24:00"}}, slots)
}

func TestExecute_InactiveBookingStatusesIgnored(t *testing.T) {
	f := newSalonFixture()
	f.bookings.bookings[monday.Format(domain.DateFormat)] = []*domain.Booking{
		{ID: "bk1", StartTime: "10:00", EndTime: "10:30", Status: domain.StatusCancelled},
		{ID: "bk2", StartTime: "11:00", EndTime: "11:30", Status: domain.StatusNoShow},
	}
	uc := f.useCase(monday.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), request("cut"))
	require.NoError(t, err)
	assert.Contains(t, starts(resp.Slots), "10:00")
	assert.Contains(t, starts(resp.Slots), "11:00")
	assert.Len(t, resp.Slots, 16)
}

func TestExecute_Errors(t *testing.T) {
	dbErr := errors.New("connection refused")

	t.Run("service lookup failure", func(t *testing.T) {
		f := newSalonFixture()
		f.services.err = dbErr
		_, err := f.useCase(monday).Execute(context.Background(), request("cut"))
		assert.ErrorIs(t, err, ErrInternal)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("calendar lookup failure", func(t *testing.T) {
		f := newSalonFixture()
		f.calendar.err = dbErr
		resp, err := f.useCase(monday).Execute(context.Background(), request("cut"))
		assert.ErrorIs(t, err, ErrInternal)
		assert.Nil(t, resp)
	})

	t.Run("booking lookup failure", func(t *testing.T) {
		f := newSalonFixture()
		f.bookings.err = dbErr
		resp, err := f.useCase(monday).Execute(context.Background(), request("cut"))
		assert.ErrorIs(t, err, ErrInternal)
		assert.Nil(t, resp)
	})

	t.Run("malformed stored time", func(t *testing.T) {
		f := newSalonFixture()
		f.calendar.salon[domain.Monday][0].EndTime = "6pm"
		_, err := f.useCase(monday).Execute(context.Background(), request("cut"))
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newSalonFixture()
	uc := f.useCase(monday)

	for _, req := range []*Request{
		nil,
		{Date: monday, StylistID: "ana"},
		{Date: monday, ServiceID: "cut"},
		{ServiceID: "cut", StylistID: "ana"},
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestWithCalendar(t *testing.T) {
	f := newSalonFixture()
	uc := f.useCase(monday.AddDate(0, 0, -1))

	other := &fakeCalendarRepo{}
	resp, err := uc.WithCalendar(other).Execute(context.Background(), request("cut"))
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonSalonClosed, resp.Reason)
	assert.NotZero(t, other.calls)
	assert.Zero(t, f.calendar.calls)
}
