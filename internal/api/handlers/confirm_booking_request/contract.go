package confirm_booking_request

import (
	"context"

	confirmBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/confirm_booking_request"
)

type ConfirmBookingRequestUseCase interface {
	Execute(ctx context.Context, req *confirmBookingRequest.Request) (*confirmBookingRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
