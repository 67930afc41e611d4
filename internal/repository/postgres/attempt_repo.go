package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
)

// AttemptRepo реализует repository.AttemptRepository
type AttemptRepo struct {
	db *gorm.DB
}

// NewAttemptRepo создает новый репозиторий попыток
func NewAttemptRepo(db *gorm.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// Create сохраняет новую попытку.
// Всегда вставка: записи попыток неизменяемы, повторные прохождения
// создают независимые новые записи и не конфликтуют между собой.
func (r *AttemptRepo) Create(attempt *entity.UserQuizAttempt) error {
	return r.db.Create(attempt).Error
}

// GetByUser возвращает попытки пользователя, новые первыми, с пагинацией
func (r *AttemptRepo) GetByUser(userID uint, limit, offset int) ([]entity.UserQuizAttempt, int64, error) {
	var attempts []entity.UserQuizAttempt
	var total int64

	if err := r.db.Model(&entity.UserQuizAttempt{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Quiz").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&attempts).Error
	if err != nil {
		return nil, 0, err
	}

	return attempts, total, nil
}

// GetRecentByUser возвращает limit последних попыток пользователя
func (r *AttemptRepo) GetRecentByUser(userID uint, limit int) ([]entity.UserQuizAttempt, error) {
	var attempts []entity.UserQuizAttempt
	err := r.db.Preload("Quiz").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

// GetByQuiz возвращает все попытки по викторине, новые первыми
func (r *AttemptRepo) GetByQuiz(quizID uint) ([]entity.UserQuizAttempt, error) {
	var attempts []entity.UserQuizAttempt
	err := r.db.
		Where("quiz_id = ?", quizID).
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// GetStatsByUser возвращает агрегаты по попыткам пользователя одним запросом.
// COALESCE защищает от NULL при отсутствии попыток: avg и max тогда равны 0.
func (r *AttemptRepo) GetStatsByUser(userID uint) (*repository.AttemptStats, error) {
	var stats repository.AttemptStats
	err := r.db.Model(&entity.UserQuizAttempt{}).
		Select("COUNT(*) AS total_quizzes, COALESCE(AVG(score), 0) AS average_score, COALESCE(MAX(score), 0) AS highest_score").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
