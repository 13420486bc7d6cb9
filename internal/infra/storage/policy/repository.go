package policy

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

var policyColumns = []string{
	"id",
	"salon_id",
	"min_advance_hours",
	"max_advance_days",
	"buffer_minutes",
	"cancellation_hours",
	"allow_guest_booking",
	"require_deposit",
	"deposit_amount",
	"confirmation_required",
	"created_at",
	"updated_at",
}

// Repository репозиторий политик бронирования салонов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySalon получает политику салона
// Отсутствие строки - штатная ситуация, вызывающий код подставляет дефолты
func (r *Repository) GetBySalon(ctx context.Context, salonID int64) (*domain.BookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(policyColumns...).
		From("booking_policies").
		Where(squirrel.Eq{"salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - build select query: %v", ErrBuildQuery, err)
	}

	policy, err := scanPolicy(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - scan policy: %v", ErrScanRow, err)
	}

	return policy, nil
}

// Upsert создает или обновляет политику салона
// На salon_id в БД уникальный индекс - у салона не более одной политики
func (r *Repository) Upsert(ctx context.Context, policy *domain.BookingPolicy) (*domain.BookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_policies").
		Columns(
			"salon_id",
			"min_advance_hours",
			"max_advance_days",
			"buffer_minutes",
			"cancellation_hours",
			"allow_guest_booking",
			"require_deposit",
			"deposit_amount",
			"confirmation_required",
		).
		Values(
			policy.SalonID,
			policy.MinAdvanceHours,
			policy.MaxAdvanceDays,
			policy.BufferMinutes,
			policy.CancellationHours,
			policy.AllowGuestBooking,
			policy.RequireDeposit,
			policy.DepositAmount,
			policy.ConfirmationRequired,
		).
		Suffix(`ON CONFLICT (salon_id) DO UPDATE SET
			min_advance_hours = EXCLUDED.min_advance_hours,
			max_advance_days = EXCLUDED.max_advance_days,
			buffer_minutes = EXCLUDED.buffer_minutes,
			cancellation_hours = EXCLUDED.cancellation_hours,
			allow_guest_booking = EXCLUDED.allow_guest_booking,
			require_deposit = EXCLUDED.require_deposit,
			deposit_amount = EXCLUDED.deposit_amount,
			confirmation_required = EXCLUDED.confirmation_required,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPolicy(row rowScanner) (*domain.BookingPolicy, error) {
	var policy domain.BookingPolicy
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&policy.ID,
		&policy.SalonID,
		&policy.MinAdvanceHours,
		&policy.MaxAdvanceDays,
		&policy.BufferMinutes,
		&policy.CancellationHours,
		&policy.AllowGuestBooking,
		&policy.RequireDeposit,
		&policy.DepositAmount,
		&policy.ConfirmationRequired,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}
