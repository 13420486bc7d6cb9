package submit_booking_request

import (
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	submitBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/submit_booking_request"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// SubmitBookingRequestRequest HTTP request model
// ClientID проставляется из заголовка X-User-ID для авторизованных клиентов,
// гости передают контакты в теле запроса
type SubmitBookingRequestRequest struct {
	SalonID   int64 `json:"salonId"`
	StaffID   int64 `json:"staffId"`
	ServiceID int64 `json:"serviceId"`

	GuestName  *string `json:"guestName,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`

	RequestedDate   string `json:"requestedDate"` // "2025-11-03"
	RequestedTime   string `json:"requestedTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	ServiceName     string `json:"serviceName"`
}

// BookingRequestResponse HTTP response model
type BookingRequestResponse struct {
	ID        int64 `json:"id"`
	SalonID   int64 `json:"salonId"`
	StaffID   int64 `json:"staffId"`
	ServiceID int64 `json:"serviceId"`

	ClientID   *int64  `json:"clientId,omitempty"`
	GuestName  *string `json:"guestName,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`

	RequestedDate   string `json:"requestedDate"`
	RequestedTime   string `json:"requestedTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	ServiceName     string `json:"serviceName"`

	AppointmentID *int64 `json:"appointmentId,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// clientID nil для гостевых заявок
func (r *SubmitBookingRequestRequest) ToUseCaseRequest(clientID *int64) (*submitBookingRequest.Request, error) {
	requestedDate, err := time.Parse(domain.DateFormat, r.RequestedDate)
	if err != nil {
		return nil, err
	}

	requestedTime, err := types.NewTimeStringFromString(r.RequestedTime)
	if err != nil {
		return nil, err
	}

	return &submitBookingRequest.Request{
		SalonID:         r.SalonID,
		StaffID:         r.StaffID,
		ServiceID:       r.ServiceID,
		ClientID:        clientID,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		RequestedDate:   requestedDate,
		RequestedTime:   requestedTime,
		DurationMinutes: r.DurationMinutes,
		ServiceName:     r.ServiceName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBookingRequest.Response) *BookingRequestResponse {
	return &BookingRequestResponse{
		ID:              resp.ID,
		SalonID:         resp.SalonID,
		StaffID:         resp.StaffID,
		ServiceID:       resp.ServiceID,
		ClientID:        resp.ClientID,
		GuestName:       resp.GuestName,
		GuestEmail:      resp.GuestEmail,
		GuestPhone:      resp.GuestPhone,
		RequestedDate:   resp.RequestedDate.Format(domain.DateFormat),
		RequestedTime:   resp.RequestedTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		AppointmentID:   resp.AppointmentID,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
