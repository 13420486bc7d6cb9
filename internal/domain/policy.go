package domain

import (
	"fmt"
	"time"
)

// BookingPolicy represents the per-salon booking rules
// Политика принадлежит ровно одному салону и меняется редко
type BookingPolicy struct {
	ID      int64
	SalonID int64

	MinAdvanceHours   int // минимальное время до начала записи
	MaxAdvanceDays    int // горизонт бронирования (0 = только сегодня)
	BufferMinutes     int // обязательный простой до и после записи
	CancellationHours int // порог поздней отмены

	AllowGuestBooking    bool
	RequireDeposit       bool
	DepositAmount        float64
	ConfirmationRequired bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет инварианты политики бронирования
func (p *BookingPolicy) Validate() error {
	if p.MinAdvanceHours < 0 || p.MinAdvanceHours > MaxMinAdvanceHoursLimit {
		return fmt.Errorf("%w: minAdvanceHours must be in range 0-%d, got %d",
			ErrInvalidConfiguration, MaxMinAdvanceHoursLimit, p.MinAdvanceHours)
	}
	if p.MaxAdvanceDays < 0 || p.MaxAdvanceDays > MaxAdvanceDaysLimit {
		return fmt.Errorf("%w: maxAdvanceDays must be in range 0-%d, got %d",
			ErrInvalidConfiguration, MaxAdvanceDaysLimit, p.MaxAdvanceDays)
	}
	if p.BufferMinutes < 0 || p.BufferMinutes > MaxBufferMinutesLimit {
		return fmt.Errorf("%w: bufferMinutes must be in range 0-%d, got %d",
			ErrInvalidConfiguration, MaxBufferMinutesLimit, p.BufferMinutes)
	}
	if p.CancellationHours < 0 || p.CancellationHours > MaxCancellationHours {
		return fmt.Errorf("%w: cancellationHours must be in range 0-%d, got %d",
			ErrInvalidConfiguration, MaxCancellationHours, p.CancellationHours)
	}
	if p.DepositAmount < 0 {
		return fmt.Errorf("%w: depositAmount must be non-negative, got %.2f",
			ErrInvalidConfiguration, p.DepositAmount)
	}
	if p.RequireDeposit && p.DepositAmount == 0 {
		return fmt.Errorf("%w: depositAmount is required when requireDeposit is set",
			ErrInvalidConfiguration)
	}

	return nil
}

// DefaultPolicy возвращает политику по умолчанию для салона без настроек
func DefaultPolicy(salonID int64) *BookingPolicy {
	return &BookingPolicy{
		SalonID:              salonID,
		MinAdvanceHours:      DefaultMinAdvanceHours,
		MaxAdvanceDays:       DefaultMaxAdvanceDays,
		BufferMinutes:        DefaultBufferMinutes,
		CancellationHours:    DefaultCancellationHours,
		AllowGuestBooking:    DefaultAllowGuestBooking,
		ConfirmationRequired: DefaultConfirmationRequired,
	}
}
