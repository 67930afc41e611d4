package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/pkg/auth"
)

// Моки репозиториев определены в quiz_service_test.go

func createTestUserService(userRepo *MockUserRepository) *UserService {
	jwtService, _ := auth.NewJWTService("test-secret", 1)
	return NewUserService(userRepo, jwtService)
}

func TestUserService_Register_Success(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByEmail", "new@example.com").Return(nil, apperrors.ErrNotFound)
	mockUserRepo.On("GetByUsername", "newuser").Return(nil, apperrors.ErrNotFound)
	mockUserRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	userService := createTestUserService(mockUserRepo)

	// Act
	user, err := userService.Register("newuser", "new@example.com", "password123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "newuser", user.Username)
	assert.Equal(t, "new@example.com", user.Email)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	existing := &entity.User{ID: 1, Email: "taken@example.com"}
	mockUserRepo.On("GetByEmail", "taken@example.com").Return(existing, nil)

	userService := createTestUserService(mockUserRepo)

	// Act
	user, err := userService.Register("someone", "taken@example.com", "password123")

	// Assert
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, apperrors.ErrConflict), "Повторный email должен давать ErrConflict")
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	// Arrange
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByEmail", "user@example.com").Return(&entity.User{
		ID:       7,
		Email:    "user@example.com",
		Password: string(hash),
	}, nil)

	userService := createTestUserService(mockUserRepo)

	// Act
	token, user, err := userService.Login("user@example.com", "password123")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(7), user.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	// Arrange
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByEmail", "user@example.com").Return(&entity.User{
		ID:       7,
		Email:    "user@example.com",
		Password: string(hash),
	}, nil)

	userService := createTestUserService(mockUserRepo)

	// Act
	token, user, err := userService.Login("user@example.com", "wrong")

	// Assert
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	// Arrange: несуществующий email маскируется под ErrUnauthorized,
	// чтобы не раскрывать, какие адреса зарегистрированы
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByEmail", "ghost@example.com").Return(nil, apperrors.ErrNotFound)

	userService := createTestUserService(mockUserRepo)

	// Act
	token, user, err := userService.Login("ghost@example.com", "password123")

	// Assert
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
