package models

import (
	"errors"
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetStaffAppointmentsRequest запрос на получение записей мастера
type GetStaffAppointmentsRequest struct {
	UserID          int64     `json:"userId"`
	StaffID         int64     `json:"staffId"`
	Date            time.Time `json:"date"`
	IncludeInactive bool      `json:"includeInactive,omitempty"` // Включить отменённые и завершённые записи
}

// UpdateAppointmentStatusRequest запрос на обновление статуса записи
type UpdateAppointmentStatusRequest struct {
	UserID int64   `json:"userId"`
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"` // Причина для отмены (опционально)
}

// AvailabilityDay одна запись недельного шаблона доступности
type AvailabilityDay struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0-6, 0 = воскресенье
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	IsAvailable bool   `json:"isAvailable"`
}

// UpdateAvailabilityRequest запрос на обновление недельного шаблона мастера
type UpdateAvailabilityRequest struct {
	UserID  int64             `json:"userId"`
	StaffID int64             `json:"staffId"`
	Days    []AvailabilityDay `json:"days"`
}

// ToDomain конвертирует день шаблона в domain модель
func (d *AvailabilityDay) ToDomain(staffID int64) *domain.WeeklyAvailability {
	return &domain.WeeklyAvailability{
		StaffID:     staffID,
		DayOfWeek:   d.DayOfWeek,
		StartTime:   types.TimeString(d.StartTime),
		EndTime:     types.TimeString(d.EndTime),
		IsAvailable: d.IsAvailable,
	}
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	SalonID         int64  `json:"salonId"`
	StaffID         int64  `json:"staffId"`
	ServiceID       int64  `json:"serviceId"`
	ClientID        *int64 `json:"clientId,omitempty"`
	Date            string `json:"date"`      // "2025-11-03"
	StartTime       string `json:"startTime"` // "10:00"
	EndTime         string `json:"endTime"`   // "10:30"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	ServiceName     string `json:"serviceName"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format
	LateCancellation   bool    `json:"lateCancellation,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// AvailabilityResponse ответ с недельным шаблоном мастера
type AvailabilityResponse struct {
	StaffID int64             `json:"staffId"`
	Days    []AvailabilityDay `json:"days"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		SalonID:            a.SalonID,
		StaffID:            a.StaffID,
		ServiceID:          a.ServiceID,
		ClientID:           a.ClientID,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		ServiceName:        a.ServiceName,
		CancellationReason: a.CancellationReason,
		LateCancellation:   a.LateCancellation,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if end, err := a.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// FromDomainAvailability конвертирует недельный шаблон в DTO
func FromDomainAvailability(staffID int64, records []*domain.WeeklyAvailability) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		StaffID: staffID,
		Days:    make([]AvailabilityDay, 0, len(records)),
	}

	for _, record := range records {
		day := AvailabilityDay{
			DayOfWeek:   record.DayOfWeek,
			IsAvailable: record.IsAvailable,
		}
		if record.IsAvailable {
			day.StartTime = record.StartTime.String()
			day.EndTime = record.EndTime.String()
		}
		resp.Days = append(resp.Days, day)
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	validStatuses := []domain.AppointmentStatus{
		domain.AppointmentPending,
		domain.AppointmentConfirmed,
		domain.AppointmentCancelled,
		domain.AppointmentCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
