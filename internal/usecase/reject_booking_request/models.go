package reject_booking_request

import "time"

// Request модель запроса на отклонение заявки
type Request struct {
	RequestID int64
	Reason    string // Причина отклонения (опционально)
}

// Response модель ответа с отклонённой заявкой
type Response struct {
	RequestID       int64
	Status          string
	RejectionReason *string
	UpdatedAt       time.Time
}
