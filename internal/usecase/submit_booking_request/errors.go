package submit_booking_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking_request: invalid input data")

	// ErrGuestBookingNotAllowed возвращается, когда салон запрещает гостевые заявки
	ErrGuestBookingNotAllowed = errors.New("submit_booking_request: guest booking is not allowed")

	// ErrInvalidDate возвращается, когда дата заявки в прошлом
	ErrInvalidDate = errors.New("submit_booking_request: invalid requested date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт maxAdvanceDays
	ErrDateTooFarInFuture = errors.New("submit_booking_request: date is too far in the future")

	// ErrTooLateToBook возвращается, когда заявка нарушает minAdvanceHours
	ErrTooLateToBook = errors.New("submit_booking_request: too late to book this slot")

	// ErrSlotUnavailable возвращается, когда запрошенное время не входит
	// в актуальный список доступных слотов мастера
	ErrSlotUnavailable = errors.New("submit_booking_request: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking_request: internal error")
)
