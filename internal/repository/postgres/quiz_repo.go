package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий викторин
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// Create сохраняет викторину вместе с вложенными вопросами и ответами
func (r *QuizRepo) Create(quiz *entity.Quiz) error {
	return r.db.Create(quiz).Error
}

// GetByID возвращает викторину по ID без дерева вопросов
func (r *QuizRepo) GetByID(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.Preload("Category").Preload("Tags").First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetWithQuestions возвращает викторину с полным деревом вопрос -> ответы.
// Жадная загрузка выполняется в одном запросе gorm на каждый уровень,
// что дает согласованный на момент чтения снимок структуры викторины.
func (r *QuizRepo) GetWithQuestions(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.
		Preload("Category").
		Preload("Tags").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			// "order" - зарезервированное слово в Postgres
			return db.Order(`questions."order" ASC, questions.id ASC`)
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order(`answers."order" ASC, answers.id ASC`)
		}).
		First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetAll возвращает все викторины с вопросами (без ответов), новые первыми
func (r *QuizRepo) GetAll() ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	err := r.db.
		Preload("Category").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(`questions."order" ASC, questions.id ASC`)
		}).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

// Delete удаляет викторину; вопросы и ответы удаляются каскадно на уровне БД
func (r *QuizRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Quiz{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
