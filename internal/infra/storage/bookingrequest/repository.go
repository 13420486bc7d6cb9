package bookingrequest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/dbmetrics"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/psqlbuilder"
)

var requestColumns = []string{
	"id",
	"salon_id",
	"staff_id",
	"service_id",
	"client_id",
	"guest_name",
	"guest_email",
	"guest_phone",
	"requested_date",
	"requested_time",
	"duration_minutes",
	"status",
	"service_name",
	"rejection_reason",
	"late_cancellation",
	"appointment_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, request *domain.BookingRequest) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_requests").
		Columns(
			"salon_id",
			"staff_id",
			"service_id",
			"client_id",
			"guest_name",
			"guest_email",
			"guest_phone",
			"requested_date",
			"requested_time",
			"duration_minutes",
			"status",
			"service_name",
		).
		Values(
			request.SalonID,
			request.StaffID,
			request.ServiceID,
			request.ClientID,
			request.GuestName,
			request.GuestEmail,
			request.GuestPhone,
			request.RequestedDate,
			request.RequestedTime,
			request.DurationMinutes,
			request.Status,
			request.ServiceName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	request.CreatedAt = createdAt.Time
	request.UpdatedAt = updatedAt.Time

	return request, nil
}

// GetByID получает заявку по ID
// Внутри транзакции строка блокируется (FOR UPDATE) - так подтверждение
// и отмена заявки не гоняются друг с другом
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("booking_requests").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	request, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return request, nil
}

// GetBySalonWithFilter получает заявки салона с гибкой фильтрацией
// Ожидающие заявки идут первыми, внутри статуса - старые раньше новых,
// чтобы очередь разбиралась в порядке поступления
func (r *Repository) GetBySalonWithFilter(ctx context.Context, filter domain.SalonRequestsFilter) ([]*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("booking_requests").
		Where(squirrel.Eq{"salon_id": filter.SalonID})

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"requested_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"requested_date": *filter.EndDate})
	}

	selectBuilder = selectBuilder.
		OrderBy("status = 'pending' DESC", "created_at ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalonWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalonWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// MarkConfirmed переводит заявку в confirmed и связывает её с созданной записью
func (r *Repository) MarkConfirmed(ctx context.Context, id int64, appointmentID int64) error {
	return r.update(ctx, "MarkConfirmed", psqlbuilder.Update("booking_requests").
		Set("status", domain.RequestConfirmed).
		Set("appointment_id", appointmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// MarkRejected переводит заявку в rejected с указанием причины
func (r *Repository) MarkRejected(ctx context.Context, id int64, reason string) error {
	return r.update(ctx, "MarkRejected", psqlbuilder.Update("booking_requests").
		Set("status", domain.RequestRejected).
		Set("rejection_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// MarkCancelled переводит заявку в cancelled
// Флаг late фиксирует позднюю отмену для отчётности
func (r *Repository) MarkCancelled(ctx context.Context, id int64, late bool) error {
	return r.update(ctx, "MarkCancelled", psqlbuilder.Update("booking_requests").
		Set("status", domain.RequestCancelled).
		Set("late_cancellation", late).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

func (r *Repository) update(ctx context.Context, op string, builder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.BookingRequest, error) {
	var request domain.BookingRequest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&request.ID,
		&request.SalonID,
		&request.StaffID,
		&request.ServiceID,
		&request.ClientID,
		&request.GuestName,
		&request.GuestEmail,
		&request.GuestPhone,
		&request.RequestedDate,
		&request.RequestedTime,
		&request.DurationMinutes,
		&request.Status,
		&request.ServiceName,
		&request.RejectionReason,
		&request.LateCancellation,
		&request.AppointmentID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	request.CreatedAt = createdAt.Time
	request.UpdatedAt = updatedAt.Time

	return &request, nil
}

func scanRequests(rows *sql.Rows) ([]*domain.BookingRequest, error) {
	requests := make([]*domain.BookingRequest, 0)

	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRequests - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRequests - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}
