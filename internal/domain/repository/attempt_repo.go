package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// AttemptStats содержит агрегаты по попыткам пользователя
type AttemptStats struct {
	TotalQuizzes int64
	AverageScore float64
	HighestScore float64
}

// AttemptRepository определяет методы для работы с попытками прохождения.
// Попытки только создаются и читаются: обновления и удаления истории
// интерфейс не предоставляет.
type AttemptRepository interface {
	Create(attempt *entity.UserQuizAttempt) error
	// GetByUser возвращает попытки пользователя, новые первыми, с пагинацией
	GetByUser(userID uint, limit, offset int) ([]entity.UserQuizAttempt, int64, error)
	// GetRecentByUser возвращает limit последних попыток пользователя
	GetRecentByUser(userID uint, limit int) ([]entity.UserQuizAttempt, error)
	// GetByQuiz возвращает все попытки по викторине, новые первыми
	GetByQuiz(quizID uint) ([]entity.UserQuizAttempt, error)
	// GetStatsByUser возвращает агрегаты (count, avg, max) по попыткам пользователя
	GetStatsByUser(userID uint) (*AttemptStats, error)
}
