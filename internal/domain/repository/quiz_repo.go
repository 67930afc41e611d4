package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuizRepository определяет методы для работы с викторинами
type QuizRepository interface {
	Create(quiz *entity.Quiz) error
	// GetByID возвращает викторину без дерева вопросов
	GetByID(id uint) (*entity.Quiz, error)
	// GetWithQuestions возвращает викторину с жадно загруженным деревом
	// вопрос -> ответы одним согласованным чтением
	GetWithQuestions(id uint) (*entity.Quiz, error)
	// GetAll возвращает все викторины с вопросами (без ответов), новые первыми
	GetAll() ([]entity.Quiz, error)
	Delete(id uint) error
}
