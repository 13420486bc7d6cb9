package cancel_booking_request

import (
	"context"

	cancelBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/cancel_booking_request"
)

type CancelBookingRequestUseCase interface {
	Execute(ctx context.Context, req *cancelBookingRequest.Request) (*cancelBookingRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
