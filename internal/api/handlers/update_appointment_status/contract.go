package update_appointment_status

import (
	"context"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateAppointmentStatus(ctx context.Context, appointmentID int64, req *models.UpdateAppointmentStatusRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
