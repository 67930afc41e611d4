package entity

import (
	"strings"
)

// Answer представляет вариант ответа на вопрос.
// Поля IsCorrect и Explanation скрыты от клиента до завершения проверки:
// в JSON они не сериализуются, клиент видит их только в detailed_results
// после отправки ответов.
type Answer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	QuestionID  uint   `gorm:"not null;index:idx_answers_question_correct" json:"question_id"`
	Text        string `gorm:"size:500;not null" json:"text"`
	IsCorrect   bool   `gorm:"not null;default:false;index:idx_answers_question_correct" json:"-"`
	Explanation string `gorm:"type:text;not null;default:''" json:"-"`
	Order       int    `gorm:"not null;default:0" json:"order"`
}

// TableName определяет имя таблицы для GORM
func (Answer) TableName() string {
	return "answers"
}

// Validate проверяет инварианты варианта ответа
func (a *Answer) Validate() bool {
	return strings.TrimSpace(a.Text) != ""
}
