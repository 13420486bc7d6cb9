package cancel_booking_request

import "time"

// Request модель запроса на отмену заявки
type Request struct {
	RequestID int64
	Reason    string // Причина отмены (опционально)
}

// Response модель ответа с отменённой заявкой
type Response struct {
	RequestID        int64
	Status           string
	LateCancellation bool // Отмена позже порога cancellationHours
	UpdatedAt        time.Time
}
