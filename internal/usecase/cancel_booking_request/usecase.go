package cancel_booking_request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	requestRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/bookingrequest"
	policyRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/policy"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/integrations/notifyservice"
)

// UseCase use case для отмены заявки клиентом или салоном
type UseCase struct {
	requestRepo     RequestRepository
	appointmentRepo AppointmentRepository
	policyRepo      PolicyRepository
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
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
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case отмены заявки
// Отменить можно и ожидающую, и подтверждённую заявку. Для подтверждённой
// дополнительно отменяется связанная запись, освобождая время мастера.
// Порог cancellationHours отмену не блокирует, а только помечает её поздней
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBookingRequest: request=%d", req.RequestID)

	// 1. Валидация входных данных
	if req.RequestID <= 0 {
		uc.logger.Warn("CancelBookingRequest: requestID must be positive, got %d", req.RequestID)
		return nil, fmt.Errorf("%w: requestID must be positive", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.BookingRequest
	var late bool

	// 3. Выполняем операции с БД в сериализуемой транзакции
	// Блокировка строки заявки не даёт отмене гоняться с подтверждением
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		request, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				uc.logger.Warn("CancelBookingRequest: request id=%d not found", req.RequestID)
				return ErrRequestNotFound
			}
			uc.logger.Error("CancelBookingRequest: failed to get request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		if !request.CanBeCancelled() {
			uc.logger.Warn("CancelBookingRequest: request id=%d has status %s", request.ID, request.Status)
			return fmt.Errorf("%w: status is %s", ErrInvalidStateTransition, request.Status)
		}

		// 3.1. Определяем, поздняя ли это отмена
		late, err = uc.isLateCancellation(txCtx, request, now)
		if err != nil {
			return err
		}

		// 3.2. Для подтверждённой заявки освобождаем запись в журнале
		if request.Status == domain.RequestConfirmed && request.AppointmentID != nil {
			if err := uc.appointmentRepo.Cancel(txCtx, *request.AppointmentID, req.Reason, late); err != nil {
				uc.logger.Error("CancelBookingRequest: failed to cancel appointment id=%d: %v",
					*request.AppointmentID, err)
				return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
			}
		}

		if err := uc.requestRepo.MarkCancelled(txCtx, request.ID, late); err != nil {
			uc.logger.Error("CancelBookingRequest: failed to mark request id=%d cancelled: %v", request.ID, err)
			return fmt.Errorf("%w: failed to mark request cancelled: %v", ErrInternal, err)
		}

		request.Status = domain.RequestCancelled
		request.LateCancellation = late
		result = request
		return nil
	})

	if err != nil {
		return nil, err
	}

	if late {
		uc.logger.Warn("CancelBookingRequest: request id=%d cancelled late", result.ID)
	} else {
		uc.logger.Info("CancelBookingRequest: request id=%d cancelled", result.ID)
	}

	// 4. Отправляем уведомление (graceful degradation: отмена уже в БД)
	notifyErr := uc.notifyClient.SendEventWithGracefulDegradation(ctx, &notifyservice.BookingEvent{
		Type:          notifyservice.EventRequestCancelled,
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
		uc.logger.Warn("CancelBookingRequest: notification skipped for request id=%d: %v", result.ID, notifyErr)
	}

	return &Response{
		RequestID:        result.ID,
		Status:           string(result.Status),
		LateCancellation: result.LateCancellation,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// isLateCancellation проверяет порог cancellationHours
// Поздней считается отмена подтверждённой заявки, до начала которой
// осталось меньше cancellationHours
func (uc *UseCase) isLateCancellation(ctx context.Context, request *domain.BookingRequest, now time.Time) (bool, error) {
	if request.Status != domain.RequestConfirmed {
		return false, nil
	}

	policy, err := uc.policyRepo.GetBySalon(ctx, request.SalonID)
	if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
		uc.logger.Error("CancelBookingRequest: failed to get policy for salon=%d: %v", request.SalonID, err)
		return false, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}
	if policy == nil {
		policy = domain.DefaultPolicy(request.SalonID)
	}

	start := request.RequestedTime.OnDate(request.RequestedDate)
	threshold := start.Add(-time.Duration(policy.CancellationHours) * time.Hour)
	return now.After(threshold), nil
}
