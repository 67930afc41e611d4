package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_CorrectAnswerIDs(t *testing.T) {
	// Arrange
	question := &Question{
		ID:           1,
		QuizID:       1,
		QuestionType: QuestionTypeMulti,
		Text:         "Какие из этих языков компилируемые?",
		Points:       2,
		Answers: []Answer{
			{ID: 1, Text: "Go", IsCorrect: true},
			{ID: 2, Text: "Python", IsCorrect: false},
			{ID: 3, Text: "Rust", IsCorrect: true},
			{ID: 4, Text: "JavaScript", IsCorrect: false},
		},
	}

	// Act
	correct := question.CorrectAnswerIDs()

	// Assert
	assert.Len(t, correct, 2, "должно быть ровно два правильных ответа")
	assert.Contains(t, correct, uint(1))
	assert.Contains(t, correct, uint(3))
	assert.NotContains(t, correct, uint(2))
}

func TestQuestion_CorrectAnswerIDs_NoCorrectAnswers(t *testing.T) {
	// Arrange: вопрос без правильных ответов (некорректная конфигурация)
	question := &Question{
		ID: 1,
		Answers: []Answer{
			{ID: 1, IsCorrect: false},
			{ID: 2, IsCorrect: false},
		},
	}

	// Act & Assert: пустое множество, не nil-паника
	assert.Empty(t, question.CorrectAnswerIDs())
}

func TestQuestion_AnswerIDs(t *testing.T) {
	question := &Question{
		Answers: []Answer{
			{ID: 10}, {ID: 20}, {ID: 30},
		},
	}

	ids := question.AnswerIDs()

	assert.Len(t, ids, 3)
	assert.Contains(t, ids, uint(10))
	assert.Contains(t, ids, uint(20))
	assert.Contains(t, ids, uint(30))
}

func TestQuestion_Validate(t *testing.T) {
	// Валидный вопрос
	valid := &Question{Text: "Сколько будет 2+2?", Points: 1}
	assert.True(t, valid.Validate())

	// Пустой текст недопустим
	emptyText := &Question{Text: "   ", Points: 1}
	assert.False(t, emptyText.Validate(), "вопрос с пустым текстом должен быть невалидным")

	// Неположительное количество очков недопустимо
	zeroPoints := &Question{Text: "Вопрос", Points: 0}
	assert.False(t, zeroPoints.Validate(), "вопрос с нулевыми очками должен быть невалидным")
}

func TestAnswer_Validate(t *testing.T) {
	valid := &Answer{Text: "Go"}
	assert.True(t, valid.Validate())

	empty := &Answer{Text: ""}
	assert.False(t, empty.Validate(), "ответ с пустым текстом должен быть невалидным")
}
