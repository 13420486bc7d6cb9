package get_salon_requests

import (
	"context"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/requests/models"
)

type RequestService interface {
	GetSalonRequests(ctx context.Context, req *models.GetSalonRequestsRequest) (*models.BookingRequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
