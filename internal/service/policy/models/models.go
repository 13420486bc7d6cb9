package models

import (
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
)

// Request модели

// UpdatePolicyRequest запрос на обновление политики салона
type UpdatePolicyRequest struct {
	UserID  int64 `json:"userId"`
	SalonID int64 `json:"salonId"`

	MinAdvanceHours   int `json:"minAdvanceHours"`
	MaxAdvanceDays    int `json:"maxAdvanceDays"`
	BufferMinutes     int `json:"bufferMinutes"`
	CancellationHours int `json:"cancellationHours"`

	AllowGuestBooking    bool    `json:"allowGuestBooking"`
	RequireDeposit       bool    `json:"requireDeposit"`
	DepositAmount        float64 `json:"depositAmount"`
	ConfirmationRequired bool    `json:"confirmationRequired"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdatePolicyRequest) ToDomain() *domain.BookingPolicy {
	return &domain.BookingPolicy{
		SalonID:              r.SalonID,
		MinAdvanceHours:      r.MinAdvanceHours,
		MaxAdvanceDays:       r.MaxAdvanceDays,
		BufferMinutes:        r.BufferMinutes,
		CancellationHours:    r.CancellationHours,
		AllowGuestBooking:    r.AllowGuestBooking,
		RequireDeposit:       r.RequireDeposit,
		DepositAmount:        r.DepositAmount,
		ConfirmationRequired: r.ConfirmationRequired,
	}
}

// Response модели

// PolicyResponse ответ с политикой салона
type PolicyResponse struct {
	SalonID int64 `json:"salonId"`

	MinAdvanceHours   int `json:"minAdvanceHours"`
	MaxAdvanceDays    int `json:"maxAdvanceDays"`
	BufferMinutes     int `json:"bufferMinutes"`
	CancellationHours int `json:"cancellationHours"`

	AllowGuestBooking    bool    `json:"allowGuestBooking"`
	RequireDeposit       bool    `json:"requireDeposit"`
	DepositAmount        float64 `json:"depositAmount"`
	ConfirmationRequired bool    `json:"confirmationRequired"`

	// IsDefault true, когда салон ещё не настроил собственную политику
	IsDefault bool `json:"isDefault"`

	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.BookingPolicy, isDefault bool) *PolicyResponse {
	if p == nil {
		return nil
	}

	resp := &PolicyResponse{
		SalonID:              p.SalonID,
		MinAdvanceHours:      p.MinAdvanceHours,
		MaxAdvanceDays:       p.MaxAdvanceDays,
		BufferMinutes:        p.BufferMinutes,
		CancellationHours:    p.CancellationHours,
		AllowGuestBooking:    p.AllowGuestBooking,
		RequireDeposit:       p.RequireDeposit,
		DepositAmount:        p.DepositAmount,
		ConfirmationRequired: p.ConfirmationRequired,
		IsDefault:            isDefault,
	}

	if !isDefault {
		updatedAt := p.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
