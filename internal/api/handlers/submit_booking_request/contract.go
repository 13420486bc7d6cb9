package submit_booking_request

import (
	"context"

	submitBookingRequest "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/submit_booking_request"
)

type SubmitBookingRequestUseCase interface {
	Execute(ctx context.Context, req *submitBookingRequest.Request) (*submitBookingRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
