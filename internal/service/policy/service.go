package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbdullahAhmed11/KK-BookingService/internal/domain"
	policyRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/policy"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/service/policy/models"
)

// Service сервис для работы с политиками бронирования
type Service struct {
	policyRepo PolicyRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса политик
func NewService(policyRepo PolicyRepository, logger Logger) *Service {
	return &Service{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// GetPolicy получает политику салона
// Салон без собственной политики получает дефолтную с флагом isDefault
func (s *Service) GetPolicy(ctx context.Context, salonID int64) (*models.PolicyResponse, error) {
	s.logger.Info("GetPolicy: fetching policy for salon=%d", salonID)

	if salonID <= 0 {
		s.logger.Warn("GetPolicy: salonID must be positive, got %d", salonID)
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	policy, err := s.policyRepo.GetBySalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Info("GetPolicy: salon=%d has no policy, returning defaults", salonID)
			return models.FromDomainPolicy(domain.DefaultPolicy(salonID), true), nil
		}
		s.logger.Error("GetPolicy: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetPolicy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPolicy: successfully fetched policy for salon=%d", salonID)
	return models.FromDomainPolicy(policy, false), nil
}

// UpdatePolicy создает или обновляет политику салона
func (s *Service) UpdatePolicy(ctx context.Context, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("UpdatePolicy: updating policy for salon=%d by user=%d", req.SalonID, req.UserID)

	if req.SalonID <= 0 {
		s.logger.Warn("UpdatePolicy: salonID must be positive, got %d", req.SalonID)
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	policy := req.ToDomain()
	if err := policy.Validate(); err != nil {
		s.logger.Warn("UpdatePolicy: validation failed for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.policyRepo.Upsert(ctx, policy)
	if err != nil {
		s.logger.Error("UpdatePolicy: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: UpdatePolicy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePolicy: successfully updated policy for salon=%d", req.SalonID)
	return models.FromDomainPolicy(updated, false), nil
}
