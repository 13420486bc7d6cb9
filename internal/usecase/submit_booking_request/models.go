package submit_booking_request

import (
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// Request модель запроса на подачу заявки
// Ровно одно из двух: ClientID для авторизованного клиента
// либо гостевые контакты (имя и email обязательны)
type Request struct {
	SalonID   int64
	StaffID   int64
	ServiceID int64

	ClientID   *int64
	GuestName  *string
	GuestEmail *string
	GuestPhone *string

	RequestedDate   time.Time        // Дата записи (без времени)
	RequestedTime   types.TimeString // Время начала (например, "10:00")
	DurationMinutes int              // Длительность услуги
	ServiceName     string           // Название услуги для истории
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID        int64
	SalonID   int64
	StaffID   int64
	ServiceID int64

	ClientID   *int64
	GuestName  *string
	GuestEmail *string
	GuestPhone *string

	RequestedDate   time.Time
	RequestedTime   types.TimeString
	DurationMinutes int
	Status          string
	ServiceName     string

	// AppointmentID заполнен, если заявка подтверждена автоматически
	AppointmentID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
