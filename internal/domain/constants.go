package domain

// Slot generation constants
const (
	// SlotStepMinutes фиксированный шаг генерации слотов
	// Совпадает с четвертьчасовой сеткой виджета бронирования
	SlotStepMinutes = 15
)

// Default policy values
// Используются, когда салон ещё не настроил собственную политику
const (
	DefaultMinAdvanceHours      = 1
	DefaultMaxAdvanceDays       = 30
	DefaultBufferMinutes        = 0
	DefaultCancellationHours    = 24
	DefaultAllowGuestBooking    = true
	DefaultConfirmationRequired = true
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов

	MaxAdvanceDaysLimit     = 365 // год
	MaxMinAdvanceHoursLimit = 720 // месяц
	MaxBufferMinutesLimit   = 240
	MaxCancellationHours    = 720

	MaxRejectionReasonLength = 500
	MaxGuestNameLength       = 200
	MaxGuestEmailLength      = 320
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveAppointmentStatuses статусы записей, занимающих время мастера
// Используются при поиске конфликтов в расписании
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentPending,
	AppointmentConfirmed,
}

// TerminalRequestStatuses статусы, из которых заявка не может быть переведена дальше
var TerminalRequestStatuses = []RequestStatus{
	RequestRejected,
	RequestCancelled,
}
