package cancel_booking_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking_request: invalid input data")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("cancel_booking_request: booking request not found")

	// ErrInvalidStateTransition возвращается, когда заявка уже в терминальном
	// статусе и не может быть отменена
	ErrInvalidStateTransition = errors.New("cancel_booking_request: request cannot be cancelled from its current status")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking_request: internal error")
)
