package reject_booking_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	requestRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/bookingrequest"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/integrations/notifyservice"
)

// UseCase use case для отклонения заявки персоналом салона
type UseCase struct {
	requestRepo  RequestRepository
	notifyClient NotifyServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		notifyClient: notifyClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case отклонения заявки
// Отклонение ничего не освобождает в расписании: заявка в pending
// время мастера не занимала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RejectBookingRequest: request=%d", req.RequestID)

	// 1. Валидация входных данных
	if req.RequestID <= 0 {
		uc.logger.Warn("RejectBookingRequest: requestID must be positive, got %d", req.RequestID)
		return nil, fmt.Errorf("%w: requestID must be positive", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxRejectionReasonLength {
		uc.logger.Warn("RejectBookingRequest: reason exceeds %d characters", domain.MaxRejectionReasonLength)
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxRejectionReasonLength)
	}

	var result *domain.BookingRequest

	// 2. Выполняем операции с БД в сериализуемой транзакции
	// Блокировка строки заявки не даёт отклонению гоняться с подтверждением
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		request, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				uc.logger.Warn("RejectBookingRequest: request id=%d not found", req.RequestID)
				return ErrRequestNotFound
			}
			uc.logger.Error("RejectBookingRequest: failed to get request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		if !request.CanBeRejected() {
			uc.logger.Warn("RejectBookingRequest: request id=%d has status %s", request.ID, request.Status)
			return fmt.Errorf("%w: status is %s", ErrInvalidStateTransition, request.Status)
		}

		if err := uc.requestRepo.MarkRejected(txCtx, request.ID, req.Reason); err != nil {
			uc.logger.Error("RejectBookingRequest: failed to mark request id=%d rejected: %v", request.ID, err)
			return fmt.Errorf("%w: failed to mark request rejected: %v", ErrInternal, err)
		}

		request.Status = domain.RequestRejected
		request.RejectionReason = &req.Reason
		result = request
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RejectBookingRequest: request id=%d rejected", result.ID)

	// 3. Отправляем уведомление (graceful degradation: отклонение уже в БД)
	notifyErr := uc.notifyClient.SendEventWithGracefulDegradation(ctx, &notifyservice.BookingEvent{
		Type:          notifyservice.EventRequestRejected,
		RequestID:     result.ID,
		SalonID:       result.SalonID,
		StaffID:       result.StaffID,
		ClientID:      result.ClientID,
		GuestEmail:    result.GuestEmail,
		ServiceName:   result.ServiceName,
		RequestedDate: result.RequestedDate.Format(domain.DateFormat),
		RequestedTime: result.RequestedTime.String(),
		Reason:        result.RejectionReason,
	})
	if notifyErr != nil {
		uc.logger.Warn("RejectBookingRequest: notification skipped for request id=%d: %v", result.ID, notifyErr)
	}

	return &Response{
		RequestID:       result.ID,
		Status:          string(result.Status),
		RejectionReason: result.RejectionReason,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
