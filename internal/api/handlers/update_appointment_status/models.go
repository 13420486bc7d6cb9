package update_appointment_status

import (
	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/schedule/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в запрос к сервису
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.UpdateAppointmentStatusRequest {
	return &models.UpdateAppointmentStatusRequest{
		UserID: userID,
		Status: r.Status,
		Reason: r.Reason,
	}
}
