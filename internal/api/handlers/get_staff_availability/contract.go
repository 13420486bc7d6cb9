package get_staff_availability

import (
	"context"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetAvailability(ctx context.Context, staffID int64) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
