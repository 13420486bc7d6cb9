package cancel_booking_request

import (
	"time"

	cancelBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/cancel_booking_request"
)

// CancelRequest HTTP request model
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelResponse HTTP response model
type CancelResponse struct {
	RequestID        int64  `json:"requestId"`
	Status           string `json:"status"`
	LateCancellation bool   `json:"lateCancellation"`
	UpdatedAt        string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBookingRequest.Response) *CancelResponse {
	return &CancelResponse{
		RequestID:        resp.RequestID,
		Status:           resp.Status,
		LateCancellation: resp.LateCancellation,
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
