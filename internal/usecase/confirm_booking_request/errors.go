package confirm_booking_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking_request: invalid input data")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("confirm_booking_request: booking request not found")

	// ErrInvalidStateTransition возвращается, когда заявка уже разрешена
	// и не может быть подтверждена
	ErrInvalidStateTransition = errors.New("confirm_booking_request: request cannot be confirmed from its current status")

	// ErrSlotConflict возвращается, когда слот заняли между подачей заявки
	// и подтверждением. Заявка при этом остаётся в pending
	ErrSlotConflict = errors.New("confirm_booking_request: slot is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking_request: internal error")
)
