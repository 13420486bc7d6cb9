package update_salon_policy

import (
	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/policy/models"
)

// UpdatePolicyRequest HTTP request model
type UpdatePolicyRequest struct {
	MinAdvanceHours   int `json:"minAdvanceHours"`
	MaxAdvanceDays    int `json:"maxAdvanceDays"`
	BufferMinutes     int `json:"bufferMinutes"`
	CancellationHours int `json:"cancellationHours"`

	AllowGuestBooking    bool    `json:"allowGuestBooking"`
	RequireDeposit       bool    `json:"requireDeposit"`
	DepositAmount        float64 `json:"depositAmount"`
	ConfirmationRequired bool    `json:"confirmationRequired"`
}

// ToServiceRequest конвертирует HTTP request в запрос к сервису
func (r *UpdatePolicyRequest) ToServiceRequest(salonID int64, userID int64) *models.UpdatePolicyRequest {
	return &models.UpdatePolicyRequest{
		UserID:               userID,
		SalonID:              salonID,
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
