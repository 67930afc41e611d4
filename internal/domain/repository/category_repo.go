package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы со справочником категорий
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetAll() ([]entity.Category, error)
}

// TagRepository определяет методы для работы со справочником тегов
type TagRepository interface {
	Create(tag *entity.Tag) error
	GetAll() ([]entity.Tag, error)
}
