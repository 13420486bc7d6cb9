package reject_booking_request

import (
	"context"

	rejectBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/reject_booking_request"
)

type RejectBookingRequestUseCase interface {
	Execute(ctx context.Context, req *rejectBookingRequest.Request) (*rejectBookingRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
