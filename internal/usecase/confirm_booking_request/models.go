package confirm_booking_request

import (
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// Request модель запроса на подтверждение заявки
type Request struct {
	RequestID int64
}

// Response модель ответа с подтверждённой заявкой и созданной записью
type Response struct {
	RequestID     int64
	AppointmentID int64
	Status        string

	SalonID         int64
	StaffID         int64
	ServiceID       int64
	RequestedDate   time.Time
	RequestedTime   types.TimeString
	DurationMinutes int
	ServiceName     string

	UpdatedAt time.Time
}
