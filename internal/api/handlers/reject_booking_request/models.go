package reject_booking_request

import (
	"time"

	rejectBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/reject_booking_request"
)

// RejectRequest HTTP request model
type RejectRequest struct {
	Reason string `json:"reason,omitempty"`
}

// RejectResponse HTTP response model
type RejectResponse struct {
	RequestID       int64   `json:"requestId"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rejectBookingRequest.Response) *RejectResponse {
	return &RejectResponse{
		RequestID:       resp.RequestID,
		Status:          resp.Status,
		RejectionReason: resp.RejectionReason,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
