package properties

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/property"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/properties/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

const (
	ownerID    int64 = 7
	strangerID int64 = 8
	airbnbURL        = "https://www.airbnb.com/calendar/ical/1.ics?s=secret"
	bookingURL       = "https://admin.booking.com/hotel/hoteladmin/ical.html?t=secret"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(*domain.Property)
	return created, args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Property)
	return p, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	args := m.Called(ctx, p)
	if echo, ok := args.Get(0).(func(*domain.Property) *domain.Property); ok {
		return echo(p), args.Error(1)
	}
	updated, _ := args.Get(0).(*domain.Property)
	return updated, args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func strPtr(s string) *string { return &s }

func existingProperty() *domain.Property {
	return &domain.Property{
		ID:             1,
		OwnerID:        ownerID,
		Name:           "Sea view loft",
		AirbnbICalURL:  strPtr(airbnbURL),
		BookingICalURL: strPtr(bookingURL),
	}
}

func TestService_Create(t *testing.T) {
	repo := &mockRepository{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
		return p.OwnerID == ownerID && p.AirbnbICalURL != nil && p.BookingICalURL == nil
	})).Return(&domain.Property{ID: 42, OwnerID: ownerID, Name: "Loft", AirbnbICalURL: strPtr(airbnbURL)}, nil)

	svc := NewService(repo, logger.Discard())
	resp, err := svc.Create(context.Background(), &models.CreatePropertyRequest{
		UserID:        ownerID,
		Name:          "Loft",
		AirbnbICalURL: airbnbURL,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Nil(t, resp.BookingICalURL)
	repo.AssertExpectations(t)
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreatePropertyRequest
	}{
		{name: "empty name", req: &models.CreatePropertyRequest{UserID: ownerID, Name: "  "}},
		{name: "relative url", req: &models.CreatePropertyRequest{UserID: ownerID, Name: "Loft", AirbnbICalURL: "/calendar.ics"}},
		{name: "ftp url", req: &models.CreatePropertyRequest{UserID: ownerID, Name: "Loft", BookingICalURL: "ftp://booking.com/x.ics"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			svc := NewService(repo, logger.Discard())

			_, err := svc.Create(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("GetByID", mock.Anything, int64(1)).Return(existingProperty(), nil)

		resp, err := NewService(repo, logger.Discard()).GetByID(context.Background(), 1, ownerID)

		require.NoError(t, err)
		assert.Equal(t, airbnbURL, *resp.AirbnbICalURL)
	})

	t.Run("not owner", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("GetByID", mock.Anything, int64(1)).Return(existingProperty(), nil)

		_, err := NewService(repo, logger.Discard()).GetByID(context.Background(), 1, strangerID)

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("GetByID", mock.Anything, int64(1)).Return(nil, propertyRepo.ErrPropertyNotFound)

		_, err := NewService(repo, logger.Discard()).GetByID(context.Background(), 1, ownerID)

		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("connection reset"))

		_, err := NewService(repo, logger.Discard()).GetByID(context.Background(), 1, ownerID)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_UpdateRemovesAndKeepsLinks(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(existingProperty(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(func(p *domain.Property) *domain.Property {
		return p
	}, nil)

	svc := NewService(repo, logger.Discard())
	resp, err := svc.Update(context.Background(), 1, &models.UpdatePropertyRequest{
		UserID:        ownerID,
		AirbnbICalURL: strPtr(""),
	})

	require.NoError(t, err)
	assert.Nil(t, resp.AirbnbICalURL)
	require.NotNil(t, resp.BookingICalURL)
	assert.Equal(t, bookingURL, *resp.BookingICalURL)
	assert.Equal(t, "Sea view loft", resp.Name)
}

func TestService_UpdateRejectsStranger(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(existingProperty(), nil)

	_, err := NewService(repo, logger.Discard()).Update(context.Background(), 1, &models.UpdatePropertyRequest{
		UserID: strangerID,
		Name:   strPtr("Mine now"),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_UpdateRejectsInvalidLink(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(existingProperty(), nil)

	_, err := NewService(repo, logger.Discard()).Update(context.Background(), 1, &models.UpdatePropertyRequest{
		UserID:         ownerID,
		BookingICalURL: strPtr("not a url"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("GetByID", mock.Anything, int64(1)).Return(existingProperty(), nil)
		repo.On("Delete", mock.Anything, int64(1)).Return(nil)

		err := NewService(repo, logger.Discard()).Delete(context.Background(), 1, ownerID)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("stranger", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("GetByID", mock.Anything, int64(1)).Return(existingProperty(), nil)

		err := NewService(repo, logger.Discard()).Delete(context.Background(), 1, strangerID)

		assert.ErrorIs(t, err, ErrAccessDenied)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("vanished between read and delete", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("GetByID", mock.Anything, int64(1)).Return(existingProperty(), nil)
		repo.On("Delete", mock.Anything, int64(1)).Return(propertyRepo.ErrPropertyNotFound)

		err := NewService(repo, logger.Discard()).Delete(context.Background(), 1, ownerID)

		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})
}
