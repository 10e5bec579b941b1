package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizon-develop/tempo-salon/internal/domain"
	"github.com/horizon-develop/tempo-salon/pkg/types"
)

var date = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestGetSalonSchedule(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM salon_schedules WHERE day_of_week = \$1 AND is_active = \$2 ORDER BY start_time ASC`).
		WithArgs("MONDAY", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "day_of_week", "start_time", "end_time", "is_active"}).
			AddRow("salon-schedule-monday", "MONDAY", "09:00", "13:00", true).
			AddRow("salon-schedule-monday-pm", "MONDAY", "14:00", "21:00", true))

	got, err := repo.GetSalonSchedule(context.Background(), domain.Monday)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.Monday, got[0].DayOfWeek)
	assert.Equal(t, types.TimeString("13:00"), got[0].EndTime)
	assert.Equal(t, types.TimeString("14:00"), got[1].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSalonSchedule_UnknownDayOfWeek(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM salon_schedules`).
		WithArgs("MONDAY", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "day_of_week", "start_time", "end_time", "is_active"}).
			AddRow("salon-schedule-monday", "monday", "09:00", "13:00", true))

	_, err := repo.GetSalonSchedule(context.Background(), domain.Monday)
	assert.ErrorIs(t, err, ErrScanRow)
	assert.Contains(t, err.Error(), "invalid day of week")
}

func TestGetSalonClosures_NullableTimes(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM salon_closures WHERE date = \$1`).
		WithArgs("2026-03-02").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "start_time", "end_time", "reason"}).
			AddRow("c1", date, nil, nil, "Feriado").
			AddRow("c2", date, "12:00", "15:00", nil))

	got, err := repo.GetSalonClosures(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, got[0].IsAllDay())
	require.NotNil(t, got[0].Reason)
	assert.Equal(t, "Feriado", *got[0].Reason)

	assert.False(t, got[1].IsAllDay())
	assert.Equal(t, types.TimeString("12:00"), *got[1].StartTime)
	assert.Equal(t, types.TimeString("15:00"), *got[1].EndTime)
	assert.Nil(t, got[1].Reason)
}

func TestGetStylistSchedule(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM stylist_schedules WHERE stylist_id = \$1 AND day_of_week = \$2`).
		WithArgs("stylist-jenifer", "SATURDAY").
		WillReturnRows(sqlmock.NewRows([]string{"id", "stylist_id", "day_of_week", "start_time", "end_time"}).
			AddRow("stylist-jenifer-schedule-saturday", "stylist-jenifer", "SATURDAY", "10:00", "20:00"))

	got, err := repo.GetStylistSchedule(context.Background(), "stylist-jenifer", domain.Saturday)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "stylist-jenifer", got[0].StylistID)
	assert.Equal(t, types.TimeString("10:00"), got[0].StartTime)
}

func TestGetStylistAbsences(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM stylist_absences WHERE stylist_id = \$1 AND date = \$2`).
		WithArgs("stylist-pedro", "2026-03-02").
		WillReturnRows(sqlmock.NewRows([]string{"id", "stylist_id", "date", "start_time", "end_time", "reason"}).
			AddRow("a1", "stylist-pedro", date, "16:00", "18:00", "Médico"))

	got, err := repo.GetStylistAbsences(context.Background(), "stylist-pedro", date)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].IsAllDay())
	assert.Equal(t, types.TimeString("16:00"), *got[0].StartTime)
}

func TestCalendar_QueryErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	calls := map[string]func(r *Repository) error{
		"salon schedule": func(r *Repository) error { _, err := r.GetSalonSchedule(ctx, domain.Monday); return err },
		"salon closures": func(r *Repository) error { _, err := r.GetSalonClosures(ctx, date); return err },
		"stylist schedule": func(r *Repository) error {
			_, err := r.GetStylistSchedule(ctx, "stylist-pedro", domain.Monday)
			return err
		},
		"stylist absences": func(r *Repository) error {
			_, err := r.GetStylistAbsences(ctx, "stylist-pedro", date)
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			repo, mock := newMock(t)
			mock.ExpectQuery(`SELECT`).WillReturnError(boom)

			err := call(repo)
			assert.ErrorIs(t, err, ErrExecQuery)
			assert.Contains(t, err.Error(), "connection refused")
		})
	}
}
