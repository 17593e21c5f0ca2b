package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "taskboard/internal/errors"
	"taskboard/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			userName: "alice",
			email:    "alice@example.com",
			password: "secret",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "name or email already taken",
			userName: "alice",
			email:    "alice@example.com",
			password: "secret",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo)
			user, err := service.Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.userName, user.Name)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_StorageFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := NewAuthService(mockRepo).Register(context.Background(), "bob", "bob@example.com", "pw1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret"), 10)
	stored := &model.User{ID: 3, Name: "alice", PasswordHash: string(hashedPassword), Role: model.RoleUser}

	tests := []struct {
		name          string
		userName      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			userName: "alice",
			password: "secret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByName", mock.Anything, "alice").Return(stored, nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			userName: "alice",
			password: "nope",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByName", mock.Anything, "alice").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			userName: "mallory",
			password: "secret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByName", mock.Anything, "mallory").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo)
			user, err := service.Login(context.Background(), tt.userName, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(3), user.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	t.Run("creates missing admin", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByName", mock.Anything, "root").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Name == "root" && u.Role == model.RoleAdmin
		})).Return(nil)

		user, err := NewAuthService(mockRepo).EnsureAdmin(context.Background(), "root", "root@example.com", "toor")
		assert.NoError(t, err)
		assert.True(t, user.IsAdmin())
		mockRepo.AssertExpectations(t)
	})

	t.Run("promotes existing user", func(t *testing.T) {
		existing := &model.User{ID: 9, Name: "root", PasswordHash: "kept", Role: model.RoleUser}
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByName", mock.Anything, "root").Return(existing, nil)
		mockRepo.On("Update", mock.Anything, existing).Return(nil)

		user, err := NewAuthService(mockRepo).EnsureAdmin(context.Background(), "root", "root@example.com", "toor")
		assert.NoError(t, err)
		assert.True(t, user.IsAdmin())
		assert.Equal(t, "kept", user.PasswordHash)
		mockRepo.AssertExpectations(t)
	})

	t.Run("existing admin is left alone", func(t *testing.T) {
		existing := &model.User{ID: 1, Name: "root", Role: model.RoleAdmin}
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByName", mock.Anything, "root").Return(existing, nil)

		user, err := NewAuthService(mockRepo).EnsureAdmin(context.Background(), "root", "root@example.com", "toor")
		assert.NoError(t, err)
		assert.Same(t, existing, user)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
