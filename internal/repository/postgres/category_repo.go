package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create сохраняет новую категорию
func (r *CategoryRepo) Create(category *entity.Category) error {
	return r.db.Create(category).Error
}

// GetAll возвращает все категории, отсортированные по имени
func (r *CategoryRepo) GetAll() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// TagRepo реализует repository.TagRepository
type TagRepo struct {
	db *gorm.DB
}

// NewTagRepo создает новый репозиторий тегов
func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db: db}
}

// Create сохраняет новый тег
func (r *TagRepo) Create(tag *entity.Tag) error {
	return r.db.Create(tag).Error
}

// GetAll возвращает все теги, отсортированные по имени
func (r *TagRepo) GetAll() ([]entity.Tag, error) {
	var tags []entity.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}
