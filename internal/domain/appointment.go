package domain

import (
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// AppointmentStatus represents the status of a ledger appointment
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// Appointment represents a scheduled appointment in the salon ledger
type Appointment struct {
	ID              int64
	SalonID         int64
	StaffID         int64
	ServiceID       int64
	ClientID        *int64 // nil для гостевых записей
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName string

	CancellationReason *string
	CancelledAt        *time.Time
	LateCancellation   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies the staff timeline
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}

// IsTerminal returns true if the appointment reached a final state
func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentCancelled || a.Status == AppointmentCompleted
}

// CanTransitionTo проверяет допустимость смены статуса записи
// Терминальные записи (cancelled/completed) не воскрешаются
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.IsTerminal() {
		return false
	}
	switch next {
	case AppointmentConfirmed:
		return a.Status == AppointmentPending
	case AppointmentCancelled, AppointmentCompleted:
		return true
	default:
		return false
	}
}

// EndTime возвращает время окончания записи
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// StaffDayFilter фильтр выборки записей мастера на день
type StaffDayFilter struct {
	StaffID         int64
	Date            time.Time
	IncludeInactive bool // включать ли отменённые и завершённые записи
}
