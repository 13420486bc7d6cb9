package submit_booking_request

import (
	"fmt"
	"strings"
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.RequestedDate.IsZero() {
		return fmt.Errorf("%w: requestedDate is required", ErrInvalidInput)
	}

	if req.RequestedTime.IsZero() {
		return fmt.Errorf("%w: requestedTime is required", ErrInvalidInput)
	}

	if err := req.RequestedTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid requestedTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < domain.MinServiceDurationMinutes ||
		req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be in range %d-%d, got %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes,
			req.DurationMinutes)
	}

	return validateIdentity(req)
}

// validateIdentity проверяет инвариант "клиент либо гость"
// Заявка несёт либо clientID, либо гостевые контакты, но не оба сразу
func validateIdentity(req *Request) error {
	if req.ClientID != nil {
		if *req.ClientID <= 0 {
			return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
		}
		if req.GuestName != nil || req.GuestEmail != nil || req.GuestPhone != nil {
			return fmt.Errorf("%w: guest fields must be empty for an authenticated client", ErrInvalidInput)
		}
		return nil
	}

	if req.GuestName == nil || strings.TrimSpace(*req.GuestName) == "" {
		return fmt.Errorf("%w: guestName is required for guest booking", ErrInvalidInput)
	}
	if len(*req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName exceeds %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.GuestEmail == nil || strings.TrimSpace(*req.GuestEmail) == "" {
		return fmt.Errorf("%w: guestEmail is required for guest booking", ErrInvalidInput)
	}
	if len(*req.GuestEmail) > domain.MaxGuestEmailLength {
		return fmt.Errorf("%w: guestEmail exceeds %d characters", ErrInvalidInput, domain.MaxGuestEmailLength)
	}
	if !strings.Contains(*req.GuestEmail, "@") {
		return fmt.Errorf("%w: guestEmail must be a valid email address", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в горизонт бронирования
func validateDate(requestedDate time.Time, now time.Time, maxAdvanceDays int) error {
	dateOnly := time.Date(requestedDate.Year(), requestedDate.Month(), requestedDate.Day(),
		0, 0, 0, 0, requestedDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	// maxAdvanceDays = 0 означает запись только на сегодня
	maxDate := nowOnly.AddDate(0, 0, maxAdvanceDays)
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}

// validateAdvanceNotice проверяет, что до начала записи осталось
// не меньше minAdvanceHours
func validateAdvanceNotice(start time.Time, now time.Time, minAdvanceHours int) error {
	earliest := now.Add(time.Duration(minAdvanceHours) * time.Hour)
	if start.Before(earliest) {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, minAdvanceHours)
	}
	return nil
}
