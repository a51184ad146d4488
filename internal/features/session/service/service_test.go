package service

import (
	"context"
	"errors"
	"testing"

	"dispatch-console/internal/features/session/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock implementation of ports.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func sessionWith(token string, source domain.Source, ttl int) interface{} {
	return mock.MatchedBy(func(s *domain.Session) bool {
		return s.Token == token && s.Source == source && s.TTLSeconds == ttl
	})
}

func TestSessionService_SetToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockSessionRepository)
		service := NewSessionService(mockRepo, 0)
		mockRepo.On("Save", ctx, sessionWith("secret", domain.SourceAPI, 120)).Return(nil).Once()

		assert.NoError(t, service.SetToken(ctx, "secret", 120))
		mockRepo.AssertExpectations(t)
	})

	t.Run("DefaultTTL", func(t *testing.T) {
		mockRepo := new(MockSessionRepository)
		service := NewSessionService(mockRepo, 3600)
		mockRepo.On("Save", ctx, sessionWith("secret", domain.SourceAPI, 3600)).Return(nil).Once()

		assert.NoError(t, service.SetToken(ctx, "secret", 0))
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmptyToken", func(t *testing.T) {
		mockRepo := new(MockSessionRepository)
		service := NewSessionService(mockRepo, 0)

		err := service.SetToken(ctx, "", 0)
		assert.ErrorIs(t, err, domain.ErrTokenRequired)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockSessionRepository)
		service := NewSessionService(mockRepo, 0)
		mockRepo.On("Save", ctx, mock.AnythingOfType("*domain.Session")).Return(errors.New("redis down")).Once()

		err := service.SetToken(ctx, "secret", 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save session")
		mockRepo.AssertExpectations(t)
	})
}

func TestSessionService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("Configured", func(t *testing.T) {
		mockRepo := new(MockSessionRepository)
		service := NewSessionService(mockRepo, 60)
		mockRepo.On("Save", ctx, sessionWith("from-env", domain.SourceConfig, 60)).Return(nil).Once()

		assert.NoError(t, service.Seed(ctx, "from-env"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		mockRepo := new(MockSessionRepository)
		service := NewSessionService(mockRepo, 60)

		assert.NoError(t, service.Seed(ctx, ""))
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSessionService_Token(t *testing.T) {
	ctx := context.Background()

	t.Run("Set", func(t *testing.T) {
		mockRepo := new(MockSessionRepository)
		service := NewSessionService(mockRepo, 0)
		mockRepo.On("Get", ctx).Return(&domain.Session{Token: "secret"}, nil).Once()

		token, err := service.Token(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "secret", token)
	})

	t.Run("Unset", func(t *testing.T) {
		mockRepo := new(MockSessionRepository)
		service := NewSessionService(mockRepo, 0)
		mockRepo.On("Get", ctx).Return(nil, nil).Once()

		token, err := service.Token(ctx)
		assert.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockSessionRepository)
		service := NewSessionService(mockRepo, 0)
		mockRepo.On("Get", ctx).Return(nil, errors.New("redis down")).Once()

		_, err := service.Token(ctx)
		assert.Error(t, err)
	})
}

func TestSessionService_ClearToken(t *testing.T) {
	mockRepo := new(MockSessionRepository)
	service := NewSessionService(mockRepo, 0)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo.On("Delete", ctx).Return(nil).Once()
		assert.NoError(t, service.ClearToken(ctx))
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo.On("Delete", ctx).Return(errors.New("redis down")).Once()
		assert.Error(t, service.ClearToken(ctx))
		mockRepo.AssertExpectations(t)
	})
}
