package submit_booking_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	availabilityRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/availability"
	policyRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/policy"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/integrations/notifyservice"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/types"
)

// UseCase use case для подачи заявки на бронирование
type UseCase struct {
	requestRepo      RequestRepository
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	policyRepo       PolicyRepository
	notifyClient     NotifyServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	policyRepo PolicyRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:      requestRepo,
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		policyRepo:       policyRepo,
		notifyClient:     notifyClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case подачи заявки
// Проверка слота и создание заявки идут в сериализуемой транзакции,
// чтобы конкурентные заявки на одно время не проходили одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBookingRequest: salon=%d, staff=%d, service=%d, date=%s, time=%s",
		req.SalonID, req.StaffID, req.ServiceID, req.RequestedDate.Format(domain.DateFormat), req.RequestedTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBookingRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.BookingRequest
	var autoConfirmed bool

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем политику салона
		policy, err := uc.policyRepo.GetBySalon(txCtx, req.SalonID)
		if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
			uc.logger.Error("SubmitBookingRequest: failed to get policy for salon=%d: %v", req.SalonID, err)
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}

		if policy == nil {
			policy = domain.DefaultPolicy(req.SalonID)
			uc.logger.Info("SubmitBookingRequest: using default policy for salon=%d", req.SalonID)
		}

		// 3.2. Гостевые заявки разрешены не всем салонам
		if req.ClientID == nil && !policy.AllowGuestBooking {
			uc.logger.Warn("SubmitBookingRequest: guest booking is not allowed for salon=%d", req.SalonID)
			return ErrGuestBookingNotAllowed
		}

		// 3.3. Валидация даты и заблаговременности
		if err := validateDate(req.RequestedDate, now, policy.MaxAdvanceDays); err != nil {
			uc.logger.Warn("SubmitBookingRequest: date validation failed: %v", err)
			return err
		}
		if err := validateAdvanceNotice(req.RequestedTime.OnDate(req.RequestedDate), now, policy.MinAdvanceHours); err != nil {
			uc.logger.Warn("SubmitBookingRequest: advance notice validation failed: %v", err)
			return err
		}

		// 3.4. Получаем окно доступности мастера
		availability, err := uc.availabilityRepo.GetByStaffAndWeekday(txCtx, req.StaffID, int(req.RequestedDate.Weekday()))
		if err != nil && !errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Error("SubmitBookingRequest: failed to get availability for staff=%d: %v", req.StaffID, err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		// 3.5. Получаем активные записи мастера на дату с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByStaffAndDate(txCtx, domain.StaffDayFilter{
			StaffID: req.StaffID,
			Date:    req.RequestedDate,
		})
		if err != nil {
			uc.logger.Error("SubmitBookingRequest: failed to get appointments for staff=%d: %v", req.StaffID, err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.6. Пересчитываем доступные слоты по свежим данным
		// Список из виджета мог устареть, доверять ему нельзя
		slots, err := domain.ComputeAvailableStarts(domain.SlotInput{
			Date:                   req.RequestedDate,
			Now:                    now,
			ServiceDurationMinutes: req.DurationMinutes,
			Availability:           availability,
			Policy:                 policy,
			Appointments:           appointments,
		})
		if err != nil {
			if errors.Is(err, domain.ErrInvalidConfiguration) {
				uc.logger.Warn("SubmitBookingRequest: invalid configuration: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("SubmitBookingRequest: failed to compute slots: %v", err)
			return fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
		}

		if !containsSlot(slots, req.RequestedTime) {
			uc.logger.Warn("SubmitBookingRequest: slot %s is not available for staff=%d on %s",
				req.RequestedTime, req.StaffID, req.RequestedDate.Format(domain.DateFormat))
			return ErrSlotUnavailable
		}

		// 3.7. Создаем заявку в статусе pending
		request := &domain.BookingRequest{
			SalonID:         req.SalonID,
			StaffID:         req.StaffID,
			ServiceID:       req.ServiceID,
			ClientID:        req.ClientID,
			GuestName:       req.GuestName,
			GuestEmail:      req.GuestEmail,
			GuestPhone:      req.GuestPhone,
			RequestedDate:   req.RequestedDate,
			RequestedTime:   req.RequestedTime,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.RequestPending,
			ServiceName:     req.ServiceName,
		}

		created, err := uc.requestRepo.Create(txCtx, request)
		if err != nil {
			uc.logger.Error("SubmitBookingRequest: failed to create request: %v", err)
			return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}

		// 3.8. Салоны без ручной модерации подтверждают заявку сразу,
		// в той же транзакции, что и проверка слота
		if !policy.ConfirmationRequired {
			appt, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
				SalonID:         created.SalonID,
				StaffID:         created.StaffID,
				ServiceID:       created.ServiceID,
				ClientID:        created.ClientID,
				Date:            created.RequestedDate,
				StartTime:       created.RequestedTime,
				DurationMinutes: created.DurationMinutes,
				Status:          domain.AppointmentConfirmed,
				ServiceName:     created.ServiceName,
			})
			if err != nil {
				uc.logger.Error("SubmitBookingRequest: failed to create appointment: %v", err)
				return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
			}

			if err := uc.requestRepo.MarkConfirmed(txCtx, created.ID, appt.ID); err != nil {
				uc.logger.Error("SubmitBookingRequest: failed to confirm request id=%d: %v", created.ID, err)
				return fmt.Errorf("%w: failed to confirm request: %v", ErrInternal, err)
			}

			created.Status = domain.RequestConfirmed
			created.AppointmentID = &appt.ID
			autoConfirmed = true
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitBookingRequest: created request id=%d, status=%s", result.ID, result.Status)

	// 4. Отправляем уведомление (graceful degradation: заявка уже в БД)
	eventType := notifyservice.EventRequestSubmitted
	if autoConfirmed {
		eventType = notifyservice.EventRequestConfirmed
	}
	uc.sendEvent(ctx, eventType, result)

	return toResponse(result), nil
}

func (uc *UseCase) sendEvent(ctx context.Context, eventType notifyservice.EventType, request *domain.BookingRequest) {
	err := uc.notifyClient.SendEventWithGracefulDegradation(ctx, &notifyservice.BookingEvent{
		Type:          eventType,
		RequestID:     request.ID,
		SalonID:       request.SalonID,
		StaffID:       request.StaffID,
		ClientID:      request.ClientID,
		GuestEmail:    request.GuestEmail,
		ServiceName:   request.ServiceName,
		RequestedDate: request.RequestedDate.Format(domain.DateFormat),
		RequestedTime: request.RequestedTime.String(),
	})
	if err != nil {
		uc.logger.Warn("SubmitBookingRequest: notification skipped for request id=%d: %v", request.ID, err)
	}
}

func containsSlot(slots []types.TimeString, start types.TimeString) bool {
	for _, slot := range slots {
		if slot == start {
			return true
		}
	}
	return false
}

func toResponse(request *domain.BookingRequest) *Response {
	return &Response{
		ID:              request.ID,
		SalonID:         request.SalonID,
		StaffID:         request.StaffID,
		ServiceID:       request.ServiceID,
		ClientID:        request.ClientID,
		GuestName:       request.GuestName,
		GuestEmail:      request.GuestEmail,
		GuestPhone:      request.GuestPhone,
		RequestedDate:   request.RequestedDate,
		RequestedTime:   request.RequestedTime,
		DurationMinutes: request.DurationMinutes,
		Status:          string(request.Status),
		ServiceName:     request.ServiceName,
		AppointmentID:   request.AppointmentID,
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}
}
