package scoring

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// scenarioQuiz возвращает викторину из спецификации сценария:
// вопрос 1 (single, 1 очко, правильный ответ ID=4) и
// вопрос 2 (multi, 2 очка, правильные ответы {2, 4}).
func scenarioQuiz() *entity.Quiz {
	return &entity.Quiz{
		ID:    1,
		Title: "Сценарий проверки",
		Questions: []entity.Question{
			{
				ID:           1,
				QuestionType: entity.QuestionTypeSingle,
				Text:         "Вопрос с одним ответом",
				Points:       1,
				Answers: []entity.Answer{
					{ID: 3, Text: "Неверный"},
					{ID: 4, Text: "Верный", IsCorrect: true, Explanation: "Потому что"},
				},
			},
			{
				ID:           2,
				QuestionType: entity.QuestionTypeMulti,
				Text:         "Вопрос с несколькими ответами",
				Points:       2,
				Answers: []entity.Answer{
					{ID: 1, Text: "Неверный"},
					{ID: 2, Text: "Верный A", IsCorrect: true},
					{ID: 4, Text: "Верный B", IsCorrect: true},
				},
			},
		},
	}
}

func TestEngine_CalculateScore_AllCorrect(t *testing.T) {
	engine := NewEngine(NewRegistry())

	result := engine.CalculateScore(scenarioQuiz(), map[string][]uint{
		"1": {4},
		"2": {2, 4},
	}, false)

	assert.Equal(t, 3, result.TotalPoints)
	assert.Equal(t, 3, result.EarnedPoints)
	assert.Equal(t, "100.00", result.Score.StringFixed(2))
	assert.Nil(t, result.Details)
}

func TestEngine_CalculateScore_AllIncorrect(t *testing.T) {
	engine := NewEngine(NewRegistry())

	result := engine.CalculateScore(scenarioQuiz(), map[string][]uint{
		"1": {3},
		"2": {2},
	}, false)

	assert.Equal(t, 3, result.TotalPoints)
	assert.Equal(t, 0, result.EarnedPoints)
	assert.Equal(t, "0.00", result.Score.StringFixed(2))
}

func TestEngine_CalculateScore_PartialMultiGivesNoCredit(t *testing.T) {
	engine := NewEngine(NewRegistry())

	// multi отвечен частично: полный вес в знаменателе, 0 очков за вопрос
	result := engine.CalculateScore(scenarioQuiz(), map[string][]uint{
		"1": {4},
		"2": {2},
	}, false)

	assert.Equal(t, 3, result.TotalPoints)
	assert.Equal(t, 1, result.EarnedPoints)
	assert.Equal(t, "33.33", result.Score.StringFixed(2))
}

func TestEngine_CalculateScore_EmptyQuizScoresZero(t *testing.T) {
	engine := NewEngine(NewRegistry())

	// total_points == 0: процент определен как 0.00, без деления на ноль
	result := engine.CalculateScore(&entity.Quiz{ID: 7, Title: "Пустая"}, map[string][]uint{}, false)

	assert.Equal(t, 0, result.TotalPoints)
	assert.Equal(t, 0, result.EarnedPoints)
	assert.True(t, result.Score.Equal(decimal.Zero))
}

func TestEngine_CalculateScore_UnansweredQuestionCountsInDenominator(t *testing.T) {
	engine := NewEngine(NewRegistry())

	// Вопрос 2 не отвечен вовсе: неверно, но его очки входят в знаменатель
	result := engine.CalculateScore(scenarioQuiz(), map[string][]uint{
		"1": {4},
	}, false)

	assert.Equal(t, 3, result.TotalPoints)
	assert.Equal(t, 1, result.EarnedPoints)
	assert.Equal(t, "33.33", result.Score.StringFixed(2))
}

func TestEngine_CalculateScore_UnknownQuestionIDsIgnored(t *testing.T) {
	engine := NewEngine(NewRegistry())

	// Ключи, не принадлежащие викторине, молча игнорируются
	result := engine.CalculateScore(scenarioQuiz(), map[string][]uint{
		"1":   {4},
		"2":   {2, 4},
		"999": {1, 2, 3},
	}, false)

	assert.Equal(t, 3, result.EarnedPoints)
	assert.Equal(t, "100.00", result.Score.StringFixed(2))
}

func TestEngine_CalculateScore_UnknownQuestionTypeScoresZeroAndContinues(t *testing.T) {
	engine := NewEngine(NewRegistry())

	quiz := scenarioQuiz()
	quiz.Questions = append(quiz.Questions, entity.Question{
		ID:           3,
		QuestionType: "essay", // стратегия не зарегистрирована
		Text:         "Свободный ответ",
		Points:       5,
		Answers:      []entity.Answer{{ID: 10, Text: "Что угодно", IsCorrect: true}},
	})

	result := engine.CalculateScore(quiz, map[string][]uint{
		"1": {4},
		"2": {2, 4},
		"3": {10},
	}, false)

	// Вопрос с неизвестным типом дает 0 очков, но входит в знаменатель;
	// остальные вопросы проверены как обычно
	assert.Equal(t, 8, result.TotalPoints)
	assert.Equal(t, 3, result.EarnedPoints)
	assert.Equal(t, "37.50", result.Score.StringFixed(2))
}

func TestEngine_CalculateScore_Idempotent(t *testing.T) {
	engine := NewEngine(NewRegistry())
	quiz := scenarioQuiz()
	submitted := map[string][]uint{"1": {4}, "2": {2}}

	first := engine.CalculateScore(quiz, submitted, false)
	second := engine.CalculateScore(quiz, submitted, false)

	// Чистая функция: повторный вызов дает идентичную тройку
	assert.Equal(t, first.TotalPoints, second.TotalPoints)
	assert.Equal(t, first.EarnedPoints, second.EarnedPoints)
	assert.True(t, first.Score.Equal(second.Score))
}

func TestEngine_CalculateScore_SumLaw(t *testing.T) {
	engine := NewEngine(NewRegistry())
	registry := NewRegistry()
	quiz := scenarioQuiz()
	submitted := map[string][]uint{"1": {4}, "2": {1, 2}}

	result := engine.CalculateScore(quiz, submitted, false)

	// earned == сумма очков верно отвеченных вопросов,
	// total == сумма очков всех вопросов
	expectedTotal := 0
	expectedEarned := 0
	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		expectedTotal += question.Points
		strategy, err := registry.Get(question.QuestionType)
		require.NoError(t, err)
		if strategy.IsCorrect(question, submitted[strconv.FormatUint(uint64(question.ID), 10)]) {
			expectedEarned += question.Points
		}
	}
	assert.Equal(t, expectedTotal, result.TotalPoints)
	assert.Equal(t, expectedEarned, result.EarnedPoints)
}

func TestEngine_CalculateScore_Details(t *testing.T) {
	engine := NewEngine(NewRegistry())

	result := engine.CalculateScore(scenarioQuiz(), map[string][]uint{
		"1": {4},
		"2": {2},
	}, true)

	require.Len(t, result.Details, 2)

	first := result.Details[0]
	assert.Equal(t, uint(1), first.QuestionID)
	assert.Equal(t, entity.QuestionTypeSingle, first.QuestionType)
	assert.Equal(t, 1, first.Points)
	assert.True(t, first.IsCorrect)
	assert.Equal(t, 1, first.PointsAwarded)
	assert.Equal(t, []uint{4}, first.UserAnswerIDs)
	assert.Equal(t, []uint{4}, first.CorrectAnswerIDs)
	require.Len(t, first.Answers, 2)
	// Детальный разбор раскрывает правильность и объяснение каждого варианта
	assert.False(t, first.Answers[0].IsCorrect)
	assert.False(t, first.Answers[0].WasSelected)
	assert.True(t, first.Answers[1].IsCorrect)
	assert.True(t, first.Answers[1].WasSelected)
	assert.Equal(t, "Потому что", first.Answers[1].Explanation)

	second := result.Details[1]
	assert.False(t, second.IsCorrect)
	assert.Equal(t, 0, second.PointsAwarded)
	assert.Equal(t, []uint{2}, second.UserAnswerIDs)
	assert.Equal(t, []uint{2, 4}, second.CorrectAnswerIDs)
}

func TestEngine_CalculateScore_DetailsForUnansweredQuestion(t *testing.T) {
	engine := NewEngine(NewRegistry())

	result := engine.CalculateScore(scenarioQuiz(), map[string][]uint{}, true)

	require.Len(t, result.Details, 2)
	for _, detail := range result.Details {
		assert.False(t, detail.IsCorrect)
		assert.NotNil(t, detail.UserAnswerIDs, "user_answer_ids должен быть пустым слайсом, не null")
		assert.Empty(t, detail.UserAnswerIDs)
	}
}

func TestPercentage_Rounding(t *testing.T) {
	cases := []struct {
		earned int
		total  int
		want   string
	}{
		{0, 0, "0.00"},
		{0, 3, "0.00"},
		{1, 3, "33.33"},
		{2, 3, "66.67"},
		{1, 8, "12.50"},
		{5, 8, "62.50"},
		{1, 16, "6.25"},
		{3, 3, "100.00"},
		// half-up, не банковское округление: 0.125 -> 0.13 на втором знаке
		{1, 800, "0.13"},
		{3, 800, "0.38"},
	}

	for _, tc := range cases {
		got := percentage(tc.earned, tc.total)
		assert.Equal(t, tc.want, got.StringFixed(2), "percentage(%d, %d)", tc.earned, tc.total)
	}
}
