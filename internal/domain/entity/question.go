package entity

import (
	"strings"
)

// Константы типов вопросов.
// Набор открыт для расширения: новый тип регистрируется в scoring.Registry,
// менять существующий код при этом не требуется.
const (
	QuestionTypeSingle      = "single"       // один правильный вариант (radio button)
	QuestionTypeMulti       = "multi"        // несколько правильных вариантов (checkboxes)
	QuestionTypeSelectWords = "select_words" // выбор слов из текста
)

// Question представляет вопрос в викторине
type Question struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	QuizID       uint     `gorm:"not null;index:idx_questions_quiz_order" json:"quiz_id"`
	QuestionType string   `gorm:"size:20;not null" json:"question_type"`
	Text         string   `gorm:"type:text;not null" json:"text"`
	Points       int      `gorm:"not null;default:1" json:"points"` // 1-100
	Order        int      `gorm:"not null;default:0;index:idx_questions_quiz_order" json:"order"`
	Answers      []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Validate проверяет инварианты вопроса
func (q *Question) Validate() bool {
	return strings.TrimSpace(q.Text) != "" && q.Points > 0
}

// CorrectAnswerIDs возвращает множество ID правильных ответов
func (q *Question) CorrectAnswerIDs() map[uint]struct{} {
	correct := make(map[uint]struct{})
	for _, answer := range q.Answers {
		if answer.IsCorrect {
			correct[answer.ID] = struct{}{}
		}
	}
	return correct
}

// AnswerIDs возвращает множество ID всех вариантов ответа
func (q *Question) AnswerIDs() map[uint]struct{} {
	ids := make(map[uint]struct{}, len(q.Answers))
	for _, answer := range q.Answers {
		ids[answer.ID] = struct{}{}
	}
	return ids
}
