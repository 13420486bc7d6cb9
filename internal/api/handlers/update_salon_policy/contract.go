package update_salon_policy

import (
	"context"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/policy/models"
)

type PolicyService interface {
	UpdatePolicy(ctx context.Context, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
