package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
)

// Моки репозиториев определены в quiz_service_test.go

func TestStatsService_GetStatistics_NoAttempts(t *testing.T) {
	// Arrange: у нового пользователя нулевые агрегаты, деления на ноль нет
	mockAttemptRepo := new(MockAttemptRepository)
	mockAttemptRepo.On("GetStatsByUser", uint(1)).Return(&repository.AttemptStats{}, nil)
	mockAttemptRepo.On("GetRecentByUser", uint(1), DefaultRecentAttemptsLimit).Return([]entity.UserQuizAttempt{}, nil)

	statsService := NewStatsService(mockAttemptRepo)

	// Act
	stats, err := statsService.GetStatistics(1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalQuizzes)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Equal(t, 0.0, stats.HighestScore)
	assert.NotNil(t, stats.RecentAttempts, "recent_attempts должен быть пустым списком, а не null")
	assert.Empty(t, stats.RecentAttempts)
}

func TestStatsService_GetStatistics_RoundsAggregates(t *testing.T) {
	// Arrange: среднее 66.666... округляется до 66.67
	mockAttemptRepo := new(MockAttemptRepository)
	mockAttemptRepo.On("GetStatsByUser", uint(1)).Return(&repository.AttemptStats{
		TotalQuizzes: 3,
		AverageScore: 66.66666666,
		HighestScore: 100.0,
	}, nil)

	recent := []entity.UserQuizAttempt{
		{ID: 3, UserID: 1, QuizID: 2, Score: decimal.RequireFromString("100.00")},
		{ID: 2, UserID: 1, QuizID: 1, Score: decimal.RequireFromString("66.67")},
	}
	mockAttemptRepo.On("GetRecentByUser", uint(1), DefaultRecentAttemptsLimit).Return(recent, nil)

	statsService := NewStatsService(mockAttemptRepo)

	// Act
	stats, err := statsService.GetStatistics(1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalQuizzes)
	assert.Equal(t, 66.67, stats.AverageScore)
	assert.Equal(t, 100.0, stats.HighestScore)
	assert.Len(t, stats.RecentAttempts, 2)
}

func TestStatsService_GetStatistics_NilRecentBecomesEmpty(t *testing.T) {
	// Arrange
	mockAttemptRepo := new(MockAttemptRepository)
	mockAttemptRepo.On("GetStatsByUser", uint(1)).Return(&repository.AttemptStats{TotalQuizzes: 1, AverageScore: 50, HighestScore: 50}, nil)
	mockAttemptRepo.On("GetRecentByUser", uint(1), DefaultRecentAttemptsLimit).Return(nil, nil)

	statsService := NewStatsService(mockAttemptRepo)

	// Act
	stats, err := statsService.GetStatistics(1)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, stats.RecentAttempts)
	assert.Empty(t, stats.RecentAttempts)
}
