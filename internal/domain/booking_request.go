package domain

import (
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// RequestStatus represents the status of a booking request
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestConfirmed RequestStatus = "confirmed"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
)

// BookingRequest represents a client/guest intent to occupy a slot
// Заявка создаётся в статусе pending и разрешается подтверждением,
// отклонением или отменой; rejected и cancelled - терминальные статусы
type BookingRequest struct {
	ID        int64
	SalonID   int64
	StaffID   int64
	ServiceID int64

	// Ровно одно из двух: идентифицированный клиент или гостевые контакты
	ClientID   *int64
	GuestName  *string
	GuestEmail *string
	GuestPhone *string

	RequestedDate   time.Time
	RequestedTime   types.TimeString
	DurationMinutes int
	Status          RequestStatus

	// Denormalized data for history
	ServiceName string

	RejectionReason  *string
	LateCancellation bool

	// AppointmentID заполняется после подтверждения заявки
	AppointmentID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGuest returns true if the request was submitted by an unauthenticated guest
func (r *BookingRequest) IsGuest() bool {
	return r.ClientID == nil
}

// IsPending returns true if the request awaits resolution
func (r *BookingRequest) IsPending() bool {
	return r.Status == RequestPending
}

// IsResolved returns true if the request reached any resolved state
func (r *BookingRequest) IsResolved() bool {
	return r.Status != RequestPending
}

// CanBeConfirmed returns true if the request may transition to confirmed
func (r *BookingRequest) CanBeConfirmed() bool {
	return r.Status == RequestPending
}

// CanBeRejected returns true if the request may transition to rejected
func (r *BookingRequest) CanBeRejected() bool {
	return r.Status == RequestPending
}

// CanBeCancelled returns true if the request may transition to cancelled
// Подтверждённую заявку можно отменить (с отменой записи в расписании),
// rejected и cancelled - терминальные
func (r *BookingRequest) CanBeCancelled() bool {
	return r.Status == RequestPending || r.Status == RequestConfirmed
}

// SalonRequestsFilter фильтр выборки заявок салона
type SalonRequestsFilter struct {
	SalonID   int64          // Обязательный параметр
	StaffID   *int64         // Фильтр по мастеру (опционально)
	Status    *RequestStatus // Фильтр по статусу (опционально)
	StartDate *time.Time     // Начало периода по requested_date (опционально)
	EndDate   *time.Time     // Конец периода по requested_date (опционально)
}
