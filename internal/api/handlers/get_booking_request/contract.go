package get_booking_request

import (
	"context"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/requests/models"
)

type RequestService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.BookingRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
