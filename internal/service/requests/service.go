package requests

import (
	"context"
	"errors"
	"fmt"

	requestRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/bookingrequest"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/requests/models"
)

// Service сервис для чтения заявок на бронирование
type Service struct {
	requestRepo RequestRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(requestRepo RequestRepository, logger Logger) *Service {
	return &Service{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// GetByID получает заявку по ID
// Заявку клиента может видеть только сам клиент; гостевые заявки и очередь
// салона видны авторизованному персоналу
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingRequestResponse, error) {
	s.logger.Info("GetByID: fetching request id=%d for user=%d", id, userID)

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Заявка клиента скрыта от других клиентов
	if request.ClientID != nil && *request.ClientID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to request id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched request id=%d", id)
	return models.FromDomainRequest(request), nil
}

// GetSalonRequests получает заявки салона с гибкой фильтрацией
// Ожидающие заявки идут первыми в порядке поступления
//
// Примеры использования:
// - Очередь модерации: указать Status = "pending"
// - Заявки мастера: указать StaffID
// - Заявки за период: StartDate и EndDate
func (s *Service) GetSalonRequests(ctx context.Context, req *models.GetSalonRequestsRequest) (*models.BookingRequestListResponse, error) {
	s.logger.Info("GetSalonRequests: fetching requests for salon=%d, user=%d", req.SalonID, req.UserID)

	if req.SalonID <= 0 {
		s.logger.Warn("GetSalonRequests: salonID must be positive, got %d", req.SalonID)
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSalonRequests: invalid filter for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	requests, err := s.requestRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSalonRequests: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: GetSalonRequests - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSalonRequests: successfully fetched %d requests for salon=%d", len(requests), req.SalonID)
	return models.FromDomainRequestList(requests), nil
}
