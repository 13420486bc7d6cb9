package domain

import (
	"fmt"
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// WeeklyAvailability represents a staff member's availability window
// for one day of week. At most one record exists per (staff, weekday)
type WeeklyAvailability struct {
	ID          int64
	StaffID     int64
	DayOfWeek   int // 0-6, 0 = воскресенье (time.Weekday)
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет инварианты записи доступности
// Для недоступного дня окно не проверяется
func (a *WeeklyAvailability) Validate() error {
	if a.DayOfWeek < 0 || a.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be in range 0-6, got %d", ErrInvalidConfiguration, a.DayOfWeek)
	}

	if !a.IsAvailable {
		return nil
	}

	if err := a.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidConfiguration, err)
	}
	if err := a.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidConfiguration, err)
	}
	if !a.StartTime.IsBefore(a.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s",
			ErrInvalidConfiguration, a.StartTime, a.EndTime)
	}

	return nil
}

// CoversWeekday возвращает true, если запись относится к дню недели даты
func (a *WeeklyAvailability) CoversWeekday(date time.Time) bool {
	return a.DayOfWeek == int(date.Weekday())
}
