package get_salon_requests

import (
	"strconv"
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/requests/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	salonID int64,
	userID int64,
	staffIDStr string,
	statusStr string,
	startDateStr string,
	endDateStr string,
) (*models.GetSalonRequestsRequest, error) {
	req := &models.GetSalonRequestsRequest{
		UserID:  userID,
		SalonID: salonID,
	}

	// Парсим staffId если указан
	if staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &staffID
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим startDate если указана
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	// Парсим endDate если указана
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}
