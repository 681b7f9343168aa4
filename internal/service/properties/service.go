package properties

import (
	"context"
	"errors"
	"fmt"

	propertyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/property"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/properties/models"
)

// Service сервис для работы с объектами и ссылками на их календари
type Service struct {
	propertyRepo PropertyRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса объектов
func NewService(propertyRepo PropertyRepository, logger Logger) *Service {
	return &Service{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Create создает новый объект владельца карточки
func (s *Service) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.PropertyResponse, error) {
	s.logger.Info("Create: creating property for user=%d", req.UserID)

	property := req.ToDomainProperty()
	if err := validateProperty(property); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.propertyRepo.Create(ctx, property)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created property id=%d", created.ID)
	return models.FromDomainProperty(created), nil
}

// GetByID получает объект по ID
// Доступно только владельцу: ответ содержит приватные ссылки экспорта
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.PropertyResponse, error) {
	s.logger.Info("GetByID: fetching property id=%d by user=%d", id, userID)

	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}

	if !property.IsOwnedBy(userID) {
		s.logger.Warn("GetByID: user=%d is not the owner of property=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainProperty(property), nil
}

// Update обновляет название и ссылки объекта
// Доступно только владельцу
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdatePropertyRequest) (*models.PropertyResponse, error) {
	s.logger.Info("Update: updating property id=%d by user=%d", id, req.UserID)

	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	if !property.IsOwnedBy(req.UserID) {
		s.logger.Warn("Update: user=%d is not the owner of property=%d", req.UserID, id)
		return nil, ErrAccessDenied
	}

	req.ApplyTo(property)
	if err := validateProperty(property); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.propertyRepo.Update(ctx, property)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated property id=%d", id)
	return models.FromDomainProperty(updated), nil
}

// Delete удаляет объект
// Доступно только владельцу
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting property id=%d by user=%d", id, userID)

	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	if !property.IsOwnedBy(userID) {
		s.logger.Warn("Delete: user=%d is not the owner of property=%d", userID, id)
		return ErrAccessDenied
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted property id=%d", id)
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
		s.logger.Warn("%s: property id=%d not found", op, id)
		return ErrPropertyNotFound
	}
	s.logger.Error("%s: repository error for property id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
