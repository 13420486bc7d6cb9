package notifyservice

// EventType тип события жизненного цикла заявки
type EventType string

const (
	EventRequestSubmitted EventType = "booking_request.submitted"
	EventRequestConfirmed EventType = "booking_request.confirmed"
	EventRequestRejected  EventType = "booking_request.rejected"
	EventRequestCancelled EventType = "booking_request.cancelled"
)

// BookingEvent событие по заявке для NotifyService
type BookingEvent struct {
	Type          EventType `json:"type"`
	RequestID     int64     `json:"request_id"`
	SalonID       int64     `json:"salon_id"`
	StaffID       int64     `json:"staff_id"`
	ClientID      *int64    `json:"client_id,omitempty"`
	GuestEmail    *string   `json:"guest_email,omitempty"`
	ServiceName   string    `json:"service_name"`
	RequestedDate string    `json:"requested_date"`
	RequestedTime string    `json:"requested_time"`
	Reason        *string   `json:"reason,omitempty"`
}

// ErrorResponse модель ошибки от NotifyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
