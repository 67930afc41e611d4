package service

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
)

// UserStatistics содержит сводную статистику по попыткам пользователя
type UserStatistics struct {
	TotalQuizzes   int64
	AverageScore   float64
	HighestScore   float64
	RecentAttempts []entity.UserQuizAttempt
}

// StatsService подсчитывает статистику пользователя по истории попыток
type StatsService struct {
	attemptRepo repository.AttemptRepository
}

// NewStatsService создает новый сервис статистики
func NewStatsService(attemptRepo repository.AttemptRepository) *StatsService {
	return &StatsService{attemptRepo: attemptRepo}
}

// GetStatistics возвращает агрегаты по всем попыткам пользователя.
// average_score и highest_score округляются до 2 знаков; у пользователя
// без попыток оба равны 0, recent_attempts — пустой список. Деления на
// ноль и null в ответе не бывает.
func (s *StatsService) GetStatistics(userID uint) (*UserStatistics, error) {
	aggregates, err := s.attemptRepo.GetStatsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate attempts for user %d: %w", userID, err)
	}

	recent, err := s.attemptRepo.GetRecentByUser(userID, DefaultRecentAttemptsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent attempts for user %d: %w", userID, err)
	}
	if recent == nil {
		recent = []entity.UserQuizAttempt{}
	}

	stats := &UserStatistics{
		TotalQuizzes:   aggregates.TotalQuizzes,
		AverageScore:   roundScore(aggregates.AverageScore),
		HighestScore:   roundScore(aggregates.HighestScore),
		RecentAttempts: recent,
	}

	log.Printf("[StatsService] Статистика пользователя %d: попыток=%d, средний=%.2f, лучший=%.2f",
		userID, stats.TotalQuizzes, stats.AverageScore, stats.HighestScore)

	return stats, nil
}

// roundScore округляет процент до 2 знаков (half-up, как в движке подсчета)
func roundScore(score float64) float64 {
	return decimal.NewFromFloat(score).Round(2).InexactFloat64()
}
