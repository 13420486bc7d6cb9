package reject_booking_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reject_booking_request: invalid input data")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("reject_booking_request: booking request not found")

	// ErrInvalidStateTransition возвращается, когда заявка уже разрешена
	// и не может быть отклонена
	ErrInvalidStateTransition = errors.New("reject_booking_request: request cannot be rejected from its current status")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reject_booking_request: internal error")
)
