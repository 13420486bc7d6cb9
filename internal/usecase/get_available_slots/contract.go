package get_available_slots

import (
	"context"
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByStaffAndDate(ctx context.Context, filter domain.StaffDayFilter) ([]*domain.Appointment, error)
}

// AvailabilityRepository интерфейс репозитория доступности мастеров
type AvailabilityRepository interface {
	GetByStaffAndWeekday(ctx context.Context, staffID int64, dayOfWeek int) (*domain.WeeklyAvailability, error)
}

// PolicyRepository интерфейс репозитория политик бронирования
type PolicyRepository interface {
	GetBySalon(ctx context.Context, salonID int64) (*domain.BookingPolicy, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
