package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/dbmetrics"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var availabilityColumns = []string{
	"id",
	"staff_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий недельной доступности мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStaff получает все записи недельного шаблона мастера
func (r *Repository) GetByStaff(ctx context.Context, staffID int64) ([]*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("staff_availability").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.WeeklyAvailability, 0)
	for rows.Next() {
		record, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByStaff - scan row: %v", ErrScanRow, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// GetByStaffAndWeekday получает запись доступности мастера на день недели
// Отсутствие записи - штатная ситуация (день считается недоступным)
func (r *Repository) GetByStaffAndWeekday(ctx context.Context, staffID int64, dayOfWeek int) (*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("staff_availability").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	record, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndWeekday - scan availability: %v", ErrScanRow, err)
	}

	return record, nil
}

// Upsert создает или обновляет запись доступности
// На (staff_id, day_of_week) в БД уникальный индекс - не более одной записи
// на мастера и день недели
func (r *Repository) Upsert(ctx context.Context, record *domain.WeeklyAvailability) (*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	startTime, endTime := windowValues(record)

	query, args, err := psqlbuilder.Insert("staff_availability").
		Columns(
			"staff_id",
			"day_of_week",
			"start_time",
			"end_time",
			"is_available",
		).
		Values(
			record.StaffID,
			record.DayOfWeek,
			startTime,
			endTime,
			record.IsAvailable,
		).
		Suffix(`ON CONFLICT (staff_id, day_of_week) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_available = EXCLUDED.is_available,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return record, nil
}

// windowValues возвращает значения окна для биндинга в запрос
// Окно недоступного дня хранится как NULL
func windowValues(record *domain.WeeklyAvailability) (interface{}, interface{}) {
	if !record.IsAvailable {
		return nil, nil
	}
	return record.StartTime, record.EndTime
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAvailability(row rowScanner) (*domain.WeeklyAvailability, error) {
	var record domain.WeeklyAvailability
	var startTime, endTime sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.StaffID,
		&record.DayOfWeek,
		&startTime,
		&endTime,
		&record.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Для недоступного дня окно может быть NULL
	if startTime.Valid {
		if err := record.StartTime.Scan(startTime.String); err != nil {
			return nil, err
		}
	}
	if endTime.Valid {
		if err := record.EndTime.Scan(endTime.String); err != nil {
			return nil, err
		}
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return &record, nil
}
