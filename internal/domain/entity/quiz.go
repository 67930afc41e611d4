package entity

import (
	"strings"
	"time"
)

// Константы уровней сложности викторины
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Quiz представляет викторину
type Quiz struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"size:200;not null" json:"title"`
	Description      string     `gorm:"type:text;not null;default:''" json:"description"`
	IsActive         bool       `gorm:"not null;default:true;index" json:"is_active"`
	TimeLimitMinutes *int       `json:"time_limit_minutes,omitempty"` // 1-180 минут, опционально
	Difficulty       string     `gorm:"size:10;not null;default:'medium'" json:"difficulty"`
	CategoryID       *uint      `gorm:"index" json:"category_id,omitempty"`
	Category         *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tags             []Tag      `gorm:"many2many:quiz_tags" json:"tags,omitempty"`
	Questions        []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt        time.Time  `gorm:"index" json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}

// Validate проверяет инварианты викторины
func (q *Quiz) Validate() bool {
	return strings.TrimSpace(q.Title) != ""
}

// TotalPoints возвращает максимально возможное количество очков за викторину
func (q *Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}

// QuestionCount возвращает количество вопросов в викторине
func (q *Quiz) QuestionCount() int {
	return len(q.Questions)
}
