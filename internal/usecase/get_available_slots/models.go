package get_available_slots

import (
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SalonID                int64     // ID салона
	StaffID                int64     // ID мастера
	ServiceID              int64     // ID услуги (для логирования и денормализации)
	Date                   time.Time // Дата для получения слотов (без времени)
	ServiceDurationMinutes int       // Длительность услуги в минутах
}

// Response модель ответа со списком доступных времён начала
type Response struct {
	SalonID                int64              // ID салона
	StaffID                int64              // ID мастера
	Date                   time.Time          // Дата, на которую запрашивались слоты
	ServiceDurationMinutes int                // Длительность услуги
	Slots                  []types.TimeString // Упорядоченный список времён начала
}
