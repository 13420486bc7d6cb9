package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	appointmentRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/appointment"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/schedule/models"
)

// Service сервис для работы с расписанием мастеров
type Service struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// GetStaffAppointments получает записи мастера на дату
// По умолчанию возвращает только активные записи (pending, confirmed)
func (s *Service) GetStaffAppointments(ctx context.Context, req *models.GetStaffAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetStaffAppointments: fetching appointments for staff=%d, date=%s, user=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), req.UserID)

	if req.StaffID <= 0 {
		s.logger.Warn("GetStaffAppointments: staffID must be positive, got %d", req.StaffID)
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		s.logger.Warn("GetStaffAppointments: date is required for staff=%d", req.StaffID)
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByStaffAndDate(ctx, domain.StaffDayFilter{
		StaffID:         req.StaffID,
		Date:            req.Date,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		s.logger.Error("GetStaffAppointments: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: GetStaffAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStaffAppointments: successfully fetched %d appointments for staff=%d",
		len(appointments), req.StaffID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateAppointmentStatus обновляет статус записи
// Допустимость перехода проверяется по доменным правилам: терминальные
// записи не воскрешаются
func (s *Service) UpdateAppointmentStatus(ctx context.Context, appointmentID int64, req *models.UpdateAppointmentStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateAppointmentStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateAppointmentStatus: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateAppointmentStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: UpdateAppointmentStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateAppointmentStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if !appt.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateAppointmentStatus: transition %s -> %s is not allowed for appointment id=%d",
			appt.Status, newStatus, appointmentID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, appt.Status, newStatus)
	}

	// Отмена идёт отдельным путём, чтобы зафиксировать причину
	if newStatus == domain.AppointmentCancelled {
		reason := ""
		if req.Reason != nil {
			reason = *req.Reason
		}
		err = s.appointmentRepo.Cancel(ctx, appointmentID, reason, false)
	} else {
		err = s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus)
	}
	if err != nil {
		s.logger.Error("UpdateAppointmentStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: UpdateAppointmentStatus - repository error: %v", ErrInternal, err)
	}

	appt.Status = newStatus
	s.logger.Info("UpdateAppointmentStatus: successfully updated appointment id=%d to status=%s",
		appointmentID, newStatus)
	return models.FromDomainAppointment(appt), nil
}

// GetAvailability получает недельный шаблон доступности мастера
func (s *Service) GetAvailability(ctx context.Context, staffID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetAvailability: fetching availability for staff=%d", staffID)

	if staffID <= 0 {
		s.logger.Warn("GetAvailability: staffID must be positive, got %d", staffID)
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	records, err := s.availabilityRepo.GetByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("GetAvailability: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAvailability: successfully fetched %d records for staff=%d", len(records), staffID)
	return models.FromDomainAvailability(staffID, records), nil
}

// UpdateAvailability обновляет недельный шаблон доступности мастера
// Каждый день валидируется и сохраняется upsert-ом, не более одной записи
// на день недели
func (s *Service) UpdateAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("UpdateAvailability: updating availability for staff=%d, user=%d, days=%d",
		req.StaffID, req.UserID, len(req.Days))

	if req.StaffID <= 0 {
		s.logger.Warn("UpdateAvailability: staffID must be positive, got %d", req.StaffID)
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if len(req.Days) == 0 {
		s.logger.Warn("UpdateAvailability: days list is empty for staff=%d", req.StaffID)
		return nil, fmt.Errorf("%w: days list is empty", ErrInvalidInput)
	}

	// Валидируем весь шаблон до первой записи, чтобы не сохранить половину
	records := make([]*domain.WeeklyAvailability, 0, len(req.Days))
	seen := make(map[int]bool, len(req.Days))
	for _, day := range req.Days {
		if seen[day.DayOfWeek] {
			s.logger.Warn("UpdateAvailability: duplicate dayOfWeek=%d for staff=%d", day.DayOfWeek, req.StaffID)
			return nil, fmt.Errorf("%w: duplicate dayOfWeek %d", ErrInvalidInput, day.DayOfWeek)
		}
		seen[day.DayOfWeek] = true

		record := day.ToDomain(req.StaffID)
		if err := record.Validate(); err != nil {
			s.logger.Warn("UpdateAvailability: invalid day %d for staff=%d: %v", day.DayOfWeek, req.StaffID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		records = append(records, record)
	}

	for _, record := range records {
		if _, err := s.availabilityRepo.Upsert(ctx, record); err != nil {
			s.logger.Error("UpdateAvailability: repository error for staff=%d, day=%d: %v",
				req.StaffID, record.DayOfWeek, err)
			return nil, fmt.Errorf("%w: UpdateAvailability - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateAvailability: successfully updated %d days for staff=%d", len(records), req.StaffID)
	return s.GetAvailability(ctx, req.StaffID)
}
