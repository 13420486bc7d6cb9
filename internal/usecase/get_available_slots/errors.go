package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidConfiguration возвращается, когда политика или доступность
	// мастера настроены некорректно
	ErrInvalidConfiguration = errors.New("get_available_slots: invalid configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
