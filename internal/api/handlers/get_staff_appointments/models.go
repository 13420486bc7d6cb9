package get_staff_appointments

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/schedule/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	staffID int64,
	userID int64,
	dateStr string,
	includeInactiveStr string,
) (*models.GetStaffAppointmentsRequest, error) {
	req := &models.GetStaffAppointmentsRequest{
		UserID:          userID,
		StaffID:         staffID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Дата обязательна
	if dateStr == "" {
		return nil, fmt.Errorf("date is required")
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	req.Date = date

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
