package models

import (
	"errors"
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid request status")
)

// Request модели

// GetSalonRequestsRequest запрос на получение заявок салона
type GetSalonRequestsRequest struct {
	UserID    int64      `json:"userId"`
	SalonID   int64      `json:"salonId"`
	StaffID   *int64     `json:"staffId,omitempty"`   // Фильтр по мастеру (опционально)
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetSalonRequestsRequest) ToDomainFilter() (domain.SalonRequestsFilter, error) {
	filter := domain.SalonRequestsFilter{
		SalonID:   r.SalonID,
		StaffID:   r.StaffID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainRequestStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingRequestResponse ответ с данными заявки
type BookingRequestResponse struct {
	ID        int64 `json:"id"`
	SalonID   int64 `json:"salonId"`
	StaffID   int64 `json:"staffId"`
	ServiceID int64 `json:"serviceId"`

	ClientID   *int64  `json:"clientId,omitempty"`
	GuestName  *string `json:"guestName,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`

	RequestedDate   string `json:"requestedDate"` // "2025-11-03"
	RequestedTime   string `json:"requestedTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	ServiceName     string `json:"serviceName"`

	RejectionReason  *string `json:"rejectionReason,omitempty"`
	LateCancellation bool    `json:"lateCancellation,omitempty"`
	AppointmentID    *int64  `json:"appointmentId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingRequestListResponse ответ со списком заявок
type BookingRequestListResponse struct {
	Requests []BookingRequestResponse `json:"requests"`
}

// Методы конвертации

// FromDomainRequest конвертирует domain модель в DTO
func FromDomainRequest(r *domain.BookingRequest) *BookingRequestResponse {
	if r == nil {
		return nil
	}

	return &BookingRequestResponse{
		ID:               r.ID,
		SalonID:          r.SalonID,
		StaffID:          r.StaffID,
		ServiceID:        r.ServiceID,
		ClientID:         r.ClientID,
		GuestName:        r.GuestName,
		GuestEmail:       r.GuestEmail,
		GuestPhone:       r.GuestPhone,
		RequestedDate:    r.RequestedDate.Format(domain.DateFormat),
		RequestedTime:    r.RequestedTime.String(),
		DurationMinutes:  r.DurationMinutes,
		Status:           string(r.Status),
		ServiceName:      r.ServiceName,
		RejectionReason:  r.RejectionReason,
		LateCancellation: r.LateCancellation,
		AppointmentID:    r.AppointmentID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// FromDomainRequestList конвертирует список domain моделей в DTO
func FromDomainRequestList(requests []*domain.BookingRequest) *BookingRequestListResponse {
	if requests == nil {
		return &BookingRequestListResponse{
			Requests: []BookingRequestResponse{},
		}
	}

	resp := &BookingRequestListResponse{
		Requests: make([]BookingRequestResponse, len(requests)),
	}

	for i, request := range requests {
		if requestResp := FromDomainRequest(request); requestResp != nil {
			resp.Requests[i] = *requestResp
		}
	}

	return resp
}

// ToDomainRequestStatus конвертирует строку в domain.RequestStatus с валидацией
func ToDomainRequestStatus(status string) (domain.RequestStatus, error) {
	s := domain.RequestStatus(status)

	validStatuses := []domain.RequestStatus{
		domain.RequestPending,
		domain.RequestConfirmed,
		domain.RequestRejected,
		domain.RequestCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
