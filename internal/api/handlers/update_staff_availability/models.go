package update_staff_availability

import (
	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/schedule/models"
)

// AvailabilityDay HTTP модель дня недельного шаблона
type AvailabilityDay struct {
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	IsAvailable bool   `json:"isAvailable"`
}

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	Days []AvailabilityDay `json:"days"`
}

// ToServiceRequest конвертирует HTTP request в запрос к сервису
func (r *UpdateAvailabilityRequest) ToServiceRequest(staffID int64, userID int64) *models.UpdateAvailabilityRequest {
	days := make([]models.AvailabilityDay, len(r.Days))
	for i, day := range r.Days {
		days[i] = models.AvailabilityDay{
			DayOfWeek:   day.DayOfWeek,
			StartTime:   day.StartTime,
			EndTime:     day.EndTime,
			IsAvailable: day.IsAvailable,
		}
	}

	return &models.UpdateAvailabilityRequest{
		UserID:  userID,
		StaffID: staffID,
		Days:    days,
	}
}
