package confirm_booking_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	requestRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/bookingrequest"
	policyRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/policy"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/integrations/notifyservice"
)

// UseCase use case для подтверждения заявки персоналом салона
type UseCase struct {
	requestRepo     RequestRepository
	appointmentRepo AppointmentRepository
	policyRepo      PolicyRepository
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	appointmentRepo AppointmentRepository,
	policyRepo PolicyRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:     requestRepo,
		appointmentRepo: appointmentRepo,
		policyRepo:      policyRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case подтверждения заявки
// Проверка занятости и вставка записи идут в одной сериализуемой транзакции
// с блокировкой строк: из двух конкурентных подтверждений на одно время
// выигрывает ровно одно, второе получает ErrSlotConflict, а его заявка
// остаётся в pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBookingRequest: request=%d", req.RequestID)

	// 1. Валидация входных данных
	if req.RequestID <= 0 {
		uc.logger.Warn("ConfirmBookingRequest: requestID must be positive, got %d", req.RequestID)
		return nil, fmt.Errorf("%w: requestID must be positive", ErrInvalidInput)
	}

	var result *domain.BookingRequest
	var appointmentID int64

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем заявку с блокировкой (FOR UPDATE)
		request, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				uc.logger.Warn("ConfirmBookingRequest: request id=%d not found", req.RequestID)
				return ErrRequestNotFound
			}
			uc.logger.Error("ConfirmBookingRequest: failed to get request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		// 2.2. Подтверждать можно только ожидающую заявку
		if !request.CanBeConfirmed() {
			uc.logger.Warn("ConfirmBookingRequest: request id=%d has status %s", request.ID, request.Status)
			return fmt.Errorf("%w: status is %s", ErrInvalidStateTransition, request.Status)
		}

		// 2.3. Получаем политику салона ради буфера
		policy, err := uc.policyRepo.GetBySalon(txCtx, request.SalonID)
		if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
			uc.logger.Error("ConfirmBookingRequest: failed to get policy for salon=%d: %v", request.SalonID, err)
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}
		if policy == nil {
			policy = domain.DefaultPolicy(request.SalonID)
		}

		// 2.4. Получаем активные записи мастера с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByStaffAndDate(txCtx, domain.StaffDayFilter{
			StaffID: request.StaffID,
			Date:    request.RequestedDate,
		})
		if err != nil {
			uc.logger.Error("ConfirmBookingRequest: failed to get appointments for staff=%d: %v", request.StaffID, err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 2.5. Слот могли занять, пока заявка ждала модерации
		if domain.StartBlocked(request.RequestedTime, request.DurationMinutes, policy.BufferMinutes, appointments) {
			uc.logger.Warn("ConfirmBookingRequest: slot %s is taken, request id=%d stays pending",
				request.RequestedTime, request.ID)
			return ErrSlotConflict
		}

		// 2.6. Создаем запись в журнале
		appt, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			SalonID:         request.SalonID,
			StaffID:         request.StaffID,
			ServiceID:       request.ServiceID,
			ClientID:        request.ClientID,
			Date:            request.RequestedDate,
			StartTime:       request.RequestedTime,
			DurationMinutes: request.DurationMinutes,
			Status:          domain.AppointmentConfirmed,
			ServiceName:     request.ServiceName,
		})
		if err != nil {
			uc.logger.Error("ConfirmBookingRequest: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 2.7. Переводим заявку в confirmed
		if err := uc.requestRepo.MarkConfirmed(txCtx, request.ID, appt.ID); err != nil {
			uc.logger.Error("ConfirmBookingRequest: failed to mark request id=%d confirmed: %v", request.ID, err)
			return fmt.Errorf("%w: failed to mark request confirmed: %v", ErrInternal, err)
		}

		request.Status = domain.RequestConfirmed
		request.AppointmentID = &appt.ID
		result = request
		appointmentID = appt.ID
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmBookingRequest: request id=%d confirmed, appointment id=%d", result.ID, appointmentID)

	// 3. Отправляем уведомление (graceful degradation: подтверждение уже в БД)
	notifyErr := uc.notifyClient.SendEventWithGracefulDegradation(ctx, &notifyservice.BookingEvent{
		Type:          notifyservice.EventRequestConfirmed,
		RequestID:     result.ID,
		SalonID:       result.SalonID,
		StaffID:       result.StaffID,
		ClientID:      result.ClientID,
		GuestEmail:    result.GuestEmail,
		ServiceName:   result.ServiceName,
		RequestedDate: result.RequestedDate.Format(domain.DateFormat),
		RequestedTime: result.RequestedTime.String(),
	})
	if notifyErr != nil {
		uc.logger.Warn("ConfirmBookingRequest: notification skipped for request id=%d: %v", result.ID, notifyErr)
	}

	return &Response{
		RequestID:       result.ID,
		AppointmentID:   appointmentID,
		Status:          string(result.Status),
		SalonID:         result.SalonID,
		StaffID:         result.StaffID,
		ServiceID:       result.ServiceID,
		RequestedDate:   result.RequestedDate,
		RequestedTime:   result.RequestedTime,
		DurationMinutes: result.DurationMinutes,
		ServiceName:     result.ServiceName,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
