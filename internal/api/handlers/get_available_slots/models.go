package get_available_slots

import (
	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	getAvailableSlots "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	SalonID                int64    `json:"salonId"`
	StaffID                int64    `json:"staffId"`
	Date                   string   `json:"date"`
	ServiceDurationMinutes int      `json:"serviceDurationMinutes"`
	Slots                  []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &SlotsResponse{
		SalonID:                resp.SalonID,
		StaffID:                resp.StaffID,
		Date:                   resp.Date.Format(domain.DateFormat),
		ServiceDurationMinutes: resp.ServiceDurationMinutes,
		Slots:                  slots,
	}
}
