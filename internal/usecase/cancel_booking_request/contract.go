package cancel_booking_request

import (
	"context"
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/integrations/notifyservice"
)

// RequestRepository интерфейс репозитория заявок
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	MarkCancelled(ctx context.Context, id int64, late bool) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Cancel(ctx context.Context, id int64, reason string, late bool) error
}

// PolicyRepository интерфейс репозитория политик бронирования
type PolicyRepository interface {
	GetBySalon(ctx context.Context, salonID int64) (*domain.BookingPolicy, error)
}

// NotifyServiceClient интерфейс клиента для NotifyService
type NotifyServiceClient interface {
	SendEventWithGracefulDegradation(ctx context.Context, event *notifyservice.BookingEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
