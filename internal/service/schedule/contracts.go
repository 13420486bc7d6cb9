package schedule

import (
	"context"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByStaffAndDate(ctx context.Context, filter domain.StaffDayFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string, late bool) error
}

// AvailabilityRepository интерфейс репозитория доступности мастеров
type AvailabilityRepository interface {
	GetByStaff(ctx context.Context, staffID int64) ([]*domain.WeeklyAvailability, error)
	Upsert(ctx context.Context, record *domain.WeeklyAvailability) (*domain.WeeklyAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
