package confirm_booking_request

import (
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	confirmBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/confirm_booking_request"
)

// ConfirmResponse HTTP response model
type ConfirmResponse struct {
	RequestID     int64  `json:"requestId"`
	AppointmentID int64  `json:"appointmentId"`
	Status        string `json:"status"`

	SalonID         int64  `json:"salonId"`
	StaffID         int64  `json:"staffId"`
	ServiceID       int64  `json:"serviceId"`
	RequestedDate   string `json:"requestedDate"`
	RequestedTime   string `json:"requestedTime"`
	DurationMinutes int    `json:"durationMinutes"`
	ServiceName     string `json:"serviceName"`

	UpdatedAt string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBookingRequest.Response) *ConfirmResponse {
	return &ConfirmResponse{
		RequestID:       resp.RequestID,
		AppointmentID:   resp.AppointmentID,
		Status:          resp.Status,
		SalonID:         resp.SalonID,
		StaffID:         resp.StaffID,
		ServiceID:       resp.ServiceID,
		RequestedDate:   resp.RequestedDate.Format(domain.DateFormat),
		RequestedTime:   resp.RequestedTime.String(),
		DurationMinutes: resp.DurationMinutes,
		ServiceName:     resp.ServiceName,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
