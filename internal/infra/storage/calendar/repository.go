package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/horizon-develop/tempo-salon/internal/domain"
	"github.com/horizon-develop/tempo-salon/pkg/psqlbuilder"
)

// Repository репозиторий календарных данных салона и стилистов:
// недельные расписания, закрытия салона и отсутствия стилистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSalonSchedule получает активные блоки работы салона на день недели
func (r *Repository) GetSalonSchedule(ctx context.Context, day domain.DayOfWeek) ([]*domain.SalonScheduleBlock, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_active",
	).
		From("salon_schedules").
		Where(squirrel.Eq{"day_of_week": string(day)}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.SalonScheduleBlock, 0)
	for rows.Next() {
		var block domain.SalonScheduleBlock
		if err := rows.Scan(
			&block.ID,
			&block.DayOfWeek,
			&block.StartTime,
			&block.EndTime,
			&block.IsActive,
		); err != nil {
			return nil, fmt.Errorf("%w: GetSalonSchedule - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSalonSchedule - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// GetSalonClosures получает закрытия салона на конкретную дату
// start_time/end_time равны NULL для закрытия на весь день
func (r *Repository) GetSalonClosures(ctx context.Context, date time.Time) ([]*domain.SalonClosure, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"start_time",
		"end_time",
		"reason",
	).
		From("salon_closures").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonClosures - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonClosures - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	closures := make([]*domain.SalonClosure, 0)
	for rows.Next() {
		var closure domain.SalonClosure
		if err := rows.Scan(
			&closure.ID,
			&closure.Date,
			&closure.StartTime,
			&closure.EndTime,
			&closure.Reason,
		); err != nil {
			return nil, fmt.Errorf("%w: GetSalonClosures - scan row: %v", ErrScanRow, err)
		}
		closures = append(closures, &closure)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSalonClosures - rows error: %v", ErrScanRow, err)
	}

	return closures, nil
}

// GetStylistSchedule получает рабочие блоки стилиста на день недели
func (r *Repository) GetStylistSchedule(ctx context.Context, stylistID string, day domain.DayOfWeek) ([]*domain.StylistScheduleBlock, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"stylist_id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("stylist_schedules").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		Where(squirrel.Eq{"day_of_week": string(day)}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStylistSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStylistSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.StylistScheduleBlock, 0)
	for rows.Next() {
		var block domain.StylistScheduleBlock
		if err := rows.Scan(
			&block.ID,
			&block.StylistID,
			&block.DayOfWeek,
			&block.StartTime,
			&block.EndTime,
		); err != nil {
			return nil, fmt.Errorf("%w: GetStylistSchedule - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetStylistSchedule - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// GetStylistAbsences получает отсутствия стилиста на конкретную дату
// start_time/end_time равны NULL для отсутствия на весь день
func (r *Repository) GetStylistAbsences(ctx context.Context, stylistID string, date time.Time) ([]*domain.StylistAbsence, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"stylist_id",
		"date",
		"start_time",
		"end_time",
		"reason",
	).
		From("stylist_absences").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStylistAbsences - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStylistAbsences - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAbsences(rows)
}

func scanAbsences(rows *sql.Rows) ([]*domain.StylistAbsence, error) {
	absences := make([]*domain.StylistAbsence, 0)
	for rows.Next() {
		var absence domain.StylistAbsence
		if err := rows.Scan(
			&absence.ID,
			&absence.StylistID,
			&absence.Date,
			&absence.StartTime,
			&absence.EndTime,
			&absence.Reason,
		); err != nil {
			return nil, fmt.Errorf("%w: scanAbsences - scan row: %v", ErrScanRow, err)
		}
		absences = append(absences, &absence)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAbsences - rows error: %v", ErrScanRow, err)
	}

	return absences, nil
}
