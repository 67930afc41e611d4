package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// Моки репозиториев определены в quiz_service_test.go

func TestAttemptService_CreateAttempt_WithStartedAt(t *testing.T) {
	// Arrange
	mockAttemptRepo := new(MockAttemptRepository)
	mockAttemptRepo.On("Create", mock.AnythingOfType("*entity.UserQuizAttempt")).Return(nil)

	attemptService := NewAttemptService(mockAttemptRepo)
	startedAt := time.Now().Add(-2 * time.Minute)

	// Act
	attempt, err := attemptService.CreateAttempt(1, 2, decimal.RequireFromString("75.00"), entity.JSONMap{}, &startedAt)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(1), attempt.UserID)
	assert.Equal(t, uint(2), attempt.QuizID)
	require.NotNil(t, attempt.TimeTakenSeconds, "time_taken_seconds должен вычисляться из started_at")
	assert.GreaterOrEqual(t, *attempt.TimeTakenSeconds, 120)
	assert.Less(t, *attempt.TimeTakenSeconds, 125)
	mockAttemptRepo.AssertExpectations(t)
}

func TestAttemptService_CreateAttempt_FutureStartedAt(t *testing.T) {
	// Arrange: started_at в будущем из-за рассинхронизации часов клиента
	mockAttemptRepo := new(MockAttemptRepository)
	mockAttemptRepo.On("Create", mock.AnythingOfType("*entity.UserQuizAttempt")).Return(nil)

	attemptService := NewAttemptService(mockAttemptRepo)
	startedAt := time.Now().Add(30 * time.Second)

	// Act
	attempt, err := attemptService.CreateAttempt(1, 2, decimal.RequireFromString("50.00"), entity.JSONMap{}, &startedAt)

	// Assert: время прохождения прижимается к нулю, попытка сохраняется
	require.NoError(t, err)
	require.NotNil(t, attempt.TimeTakenSeconds)
	assert.Equal(t, 0, *attempt.TimeTakenSeconds,
		"Отрицательное время должно прижиматься к 0, иначе вставка нарушит ограничение БД")
	mockAttemptRepo.AssertExpectations(t)
}

func TestAttemptService_CreateAttempt_WithoutStartedAt(t *testing.T) {
	// Arrange
	mockAttemptRepo := new(MockAttemptRepository)
	mockAttemptRepo.On("Create", mock.AnythingOfType("*entity.UserQuizAttempt")).Return(nil)

	attemptService := NewAttemptService(mockAttemptRepo)

	// Act
	attempt, err := attemptService.CreateAttempt(1, 2, decimal.Zero, nil, nil)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, attempt.TimeTakenSeconds, "Без started_at время прохождения неизвестно")
	assert.NotNil(t, attempt.AnswersData, "nil answers_data заменяется пустым объектом")
	assert.False(t, attempt.CompletedAt.IsZero())
	mockAttemptRepo.AssertExpectations(t)
}

func TestAttemptService_CreateAttempt_ScoreOutOfRange(t *testing.T) {
	// Arrange
	mockAttemptRepo := new(MockAttemptRepository)
	attemptService := NewAttemptService(mockAttemptRepo)

	// Act
	attempt, err := attemptService.CreateAttempt(1, 2, decimal.RequireFromString("101.00"), nil, nil)

	// Assert
	assert.Error(t, err, "Результат выше 100 должен отклоняться")
	assert.Nil(t, attempt)
	mockAttemptRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAttemptService_GetUserAttempts_ClampsPagination(t *testing.T) {
	// Arrange: page=0 и pageSize=1000 приводятся к допустимым значениям
	mockAttemptRepo := new(MockAttemptRepository)
	mockAttemptRepo.On("GetByUser", uint(1), 100, 0).Return([]entity.UserQuizAttempt{}, int64(0), nil)

	attemptService := NewAttemptService(mockAttemptRepo)

	// Act
	_, total, err := attemptService.GetUserAttempts(1, 0, 1000)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	mockAttemptRepo.AssertExpectations(t)
}

func TestAttemptService_GetUserAttempts_Offset(t *testing.T) {
	// Arrange: третья страница по 10 записей -> offset 20
	mockAttemptRepo := new(MockAttemptRepository)
	mockAttemptRepo.On("GetByUser", uint(1), 10, 20).Return([]entity.UserQuizAttempt{}, int64(25), nil)

	attemptService := NewAttemptService(mockAttemptRepo)

	// Act
	_, total, err := attemptService.GetUserAttempts(1, 3, 10)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	mockAttemptRepo.AssertExpectations(t)
}
