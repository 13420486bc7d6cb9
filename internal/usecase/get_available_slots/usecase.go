package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	availabilityRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/availability"
	policyRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/policy"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов мастера
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	policyRepo       PolicyRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	policyRepo PolicyRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		policyRepo:       policyRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чтение идёт без транзакции: список носит рекомендательный характер,
// финальная проверка занятости выполняется при подтверждении заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: salon=%d, staff=%d, service=%d, date=%s, duration=%d",
		req.SalonID, req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat), req.ServiceDurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем политику салона
	policy, err := uc.policyRepo.GetBySalon(ctx, req.SalonID)
	if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get policy for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	// Если политика не настроена, используем дефолтные значения
	if policy == nil {
		policy = domain.DefaultPolicy(req.SalonID)
		uc.logger.Info("GetAvailableSlots: using default policy for salon=%d", req.SalonID)
	}

	// 4. Получаем окно доступности мастера на день недели
	availability, err := uc.availabilityRepo.GetByStaffAndWeekday(ctx, req.StaffID, int(req.Date.Weekday()))
	if err != nil && !errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get availability for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// Отсутствие записи - мастер недоступен, дальше можно не ходить в БД
	if availability == nil || !availability.IsAvailable {
		uc.logger.Info("GetAvailableSlots: staff=%d is unavailable on %s",
			req.StaffID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	// 5. Получаем активные записи мастера на дату
	appointments, err := uc.appointmentRepo.GetByStaffAndDate(ctx, domain.StaffDayFilter{
		StaffID: req.StaffID,
		Date:    req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Вычисляем доступные слоты
	slots, err := domain.ComputeAvailableStarts(domain.SlotInput{
		Date:                   req.Date,
		Now:                    now,
		ServiceDurationMinutes: req.ServiceDurationMinutes,
		Availability:           availability,
		Policy:                 policy,
		Appointments:           appointments,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidConfiguration) {
			uc.logger.Warn("GetAvailableSlots: invalid configuration: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: computed %d slots for staff=%d, date=%s",
		len(slots), req.StaffID, req.Date.Format(domain.DateFormat))

	return &Response{
		SalonID:                req.SalonID,
		StaffID:                req.StaffID,
		Date:                   req.Date,
		ServiceDurationMinutes: req.ServiceDurationMinutes,
		Slots:                  slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		SalonID:                req.SalonID,
		StaffID:                req.StaffID,
		Date:                   req.Date,
		ServiceDurationMinutes: req.ServiceDurationMinutes,
		Slots:                  []types.TimeString{},
	}
}
