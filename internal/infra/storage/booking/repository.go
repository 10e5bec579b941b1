package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/horizon-develop/tempo-salon/internal/domain"
	"github.com/horizon-develop/tempo-salon/pkg/psqlbuilder"
)

// Repository репозиторий для чтения бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByStylistAndDate получает активные бронирования стилиста на конкретную дату
// Активными считаются только статусы из domain.ActiveStatuses (CONFIRMED, COMPLETED):
// отменённые и неявки время стилиста не занимают.
// Результат отсортирован по времени начала (ASC).
func (r *Repository) GetActiveByStylistAndDate(ctx context.Context, stylistID string, date time.Time) ([]*domain.Booking, error) {
	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"service_id",
		"stylist_id",
		"date",
		"start_time",
		"end_time",
		"status",
	).
		From("bookings").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByStylistAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByStylistAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.ServiceID,
			&booking.StylistID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
