package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// ErrInvalidConfiguration возвращается при некорректных входных данных
// расчёта слотов (ошибка вызывающего кода, а не "всё занято")
var ErrInvalidConfiguration = errors.New("domain: invalid configuration")

// SlotInput входные данные расчёта доступных слотов
// Текущее время передаётся явно: функция чистая и детерминированная
type SlotInput struct {
	Date                   time.Time
	Now                    time.Time
	ServiceDurationMinutes int
	StepMinutes            int // 0 = SlotStepMinutes

	Availability *WeeklyAvailability // nil = записи на день недели нет = недоступен
	Policy       *BookingPolicy
	Appointments []*Appointment // записи мастера, пересекающие дату
}

// ComputeAvailableStarts вычисляет упорядоченный список допустимых времён
// начала записи на день.
//
// Каждый возвращённый слот гарантирует:
//  1. Интервал [start, start+duration) целиком внутри окна доступности мастера
//  2. Начало не раньше now + minAdvanceHours и дата не позже today + maxAdvanceDays
//  3. Слот не попадает в заблокированные окна активных записей с учётом буфера
//
// Недоступный день и дата вне горизонта бронирования дают пустой список,
// некорректная конфигурация - ErrInvalidConfiguration
func ComputeAvailableStarts(in SlotInput) ([]types.TimeString, error) {
	if in.ServiceDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: service duration must be positive, got %d",
			ErrInvalidConfiguration, in.ServiceDurationMinutes)
	}
	if in.Date.IsZero() || in.Now.IsZero() {
		return nil, fmt.Errorf("%w: date and now are required", ErrInvalidConfiguration)
	}
	if in.Policy == nil {
		return nil, fmt.Errorf("%w: booking policy is required", ErrInvalidConfiguration)
	}
	if err := in.Policy.Validate(); err != nil {
		return nil, err
	}

	step := in.StepMinutes
	if step <= 0 {
		step = SlotStepMinutes
	}

	// Нет записи на день недели или день помечен недоступным - слотов нет
	if in.Availability == nil || !in.Availability.IsAvailable {
		return []types.TimeString{}, nil
	}
	if err := in.Availability.Validate(); err != nil {
		return nil, err
	}

	// Дата в прошлом или за горизонтом бронирования
	if !dateWithinBookingWindow(in.Date, in.Now, in.Policy.MaxAdvanceDays) {
		return []types.TimeString{}, nil
	}

	openMinutes := in.Availability.StartTime.Minutes()
	closeMinutes := in.Availability.EndTime.Minutes()

	// Минимально допустимый момент начала с учётом minAdvanceHours
	// Сравнение идёт по абсолютному моменту, поэтому фильтр корректно
	// отсекает и утренние слоты следующего дня
	earliestStart := in.Now.Add(time.Duration(in.Policy.MinAdvanceHours) * time.Hour)

	starts := make([]types.TimeString, 0)

	for start := openMinutes; start+in.ServiceDurationMinutes <= closeMinutes; start += step {
		startInstant := instantOnDate(in.Date, start)
		if startInstant.Before(earliestStart) {
			continue
		}

		if startBlocked(start, in.ServiceDurationMinutes, in.Policy.BufferMinutes, in.Appointments) {
			continue
		}

		ts, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		starts = append(starts, ts)
	}

	return starts, nil
}

// StartBlocked проверяет, конфликтует ли время начала с активными записями
// с учётом буфера. Используется при повторной валидации на подтверждении
func StartBlocked(start types.TimeString, durationMinutes, bufferMinutes int, appointments []*Appointment) bool {
	return startBlocked(start.Minutes(), durationMinutes, bufferMinutes, appointments)
}

// startBlocked вычисляет попадание старта в заблокированное окно записи.
// Для записи [apptStart, apptEnd) с буфером b и длительностью услуги d
// заблокированы старты в [apptStart-d-b, apptEnd+b): кандидат с буфером
// обязан полностью разойтись с записью
//
// Пример: запись 10:00-10:30, услуга 30 мин, буфер 15 мин ->
// недоступны старты с 09:15 по 10:30 включительно, 10:45 снова доступен
func startBlocked(startMinutes, durationMinutes, bufferMinutes int, appointments []*Appointment) bool {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptStart := appt.StartTime.Minutes()
		apptEnd := apptStart + appt.DurationMinutes

		blockedFrom := apptStart - durationMinutes - bufferMinutes
		blockedTo := apptEnd + bufferMinutes

		if startMinutes >= blockedFrom && startMinutes < blockedTo {
			return true
		}
	}
	return false
}

// dateWithinBookingWindow проверяет, что дата не в прошлом и не дальше
// maxAdvanceDays от сегодняшнего дня (сравнение только по датам)
func dateWithinBookingWindow(date, now time.Time, maxAdvanceDays int) bool {
	dateOnly := truncateToDay(date)
	today := truncateToDay(now)

	if dateOnly.Before(today) {
		return false
	}
	return !dateOnly.After(today.AddDate(0, 0, maxAdvanceDays))
}

// instantOnDate возвращает момент времени: дата + минуты с начала суток
func instantOnDate(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
