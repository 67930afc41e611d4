package scoring

import (
	"log"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// AnswerDetail описывает один вариант ответа в детальном разборе.
// Поля is_correct и explanation здесь раскрываются намеренно: разбор
// возвращается клиенту только после проверки ответов.
type AnswerDetail struct {
	ID          uint   `json:"id"`
	Text        string `json:"text"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
	WasSelected bool   `json:"was_selected"`
}

// QuestionResult описывает результат проверки одного вопроса
type QuestionResult struct {
	QuestionID       uint           `json:"question_id"`
	QuestionText     string         `json:"question_text"`
	QuestionType     string         `json:"question_type"`
	Points           int            `json:"points"`
	IsCorrect        bool           `json:"is_correct"`
	PointsAwarded    int            `json:"points_awarded"`
	UserAnswerIDs    []uint         `json:"user_answer_ids"`
	CorrectAnswerIDs []uint         `json:"correct_answer_ids"`
	Answers          []AnswerDetail `json:"answers"`
}

// Result содержит итог проверки всей викторины
type Result struct {
	Score        decimal.Decimal  // процент 0-100, 2 знака после запятой
	TotalPoints  int
	EarnedPoints int
	Details      []QuestionResult // nil, если детальный разбор не запрашивался
}

// Engine подсчитывает результат прохождения викторины.
// Движок не имеет состояния между вызовами и не выполняет побочных
// эффектов: сохранение попытки — отдельный шаг вызывающего кода.
// Вызовы независимы и могут идти параллельно из разных запросов.
type Engine struct {
	registry *Registry
}

// NewEngine создает движок подсчета с переданным реестром стратегий
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// CalculateScore подсчитывает результат по снимку викторины и отправленным ответам.
// submitted — карта "ID вопроса (строкой) -> список отправленных ID ответов".
// Вопрос без записи в submitted считается неотвеченным: 0 очков, но полный
// вес в знаменателе. Ключи submitted, не принадлежащие викторине, молча
// игнорируются. Вопрос с незарегистрированным типом логируется, получает
// 0 очков, и подсчет продолжается — одна некорректная запись не блокирует
// проверку остальных вопросов.
func (e *Engine) CalculateScore(quiz *entity.Quiz, submitted map[string][]uint, includeDetails bool) Result {
	result := Result{}
	if includeDetails {
		result.Details = make([]QuestionResult, 0, len(quiz.Questions))
	}

	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		result.TotalPoints += question.Points

		submittedIDs := submitted[strconv.FormatUint(uint64(question.ID), 10)]

		isCorrect := e.isCorrect(question, submittedIDs)
		pointsAwarded := 0
		if isCorrect {
			pointsAwarded = question.Points
			result.EarnedPoints += pointsAwarded
		}

		if includeDetails {
			result.Details = append(result.Details, buildQuestionResult(question, submittedIDs, isCorrect, pointsAwarded))
		}
	}

	result.Score = percentage(result.EarnedPoints, result.TotalPoints)

	log.Printf("[ScoringEngine] Викторина %d: %s%% (%d/%d очков)",
		quiz.ID, result.Score.StringFixed(2), result.EarnedPoints, result.TotalPoints)

	return result
}

// isCorrect проверяет ответ на один вопрос через стратегию его типа.
// Неизвестный тип вопроса — локально восстановимая ситуация: ответ
// считается неверным, ошибка логируется, проверка продолжается.
func (e *Engine) isCorrect(question *entity.Question, submittedIDs []uint) bool {
	strategy, err := e.registry.Get(question.QuestionType)
	if err != nil {
		log.Printf("[ScoringEngine] Ошибка получения стратегии для вопроса %d: %v", question.ID, err)
		return false
	}
	return strategy.IsCorrect(question, submittedIDs)
}

// percentage вычисляет процент earned/total*100 с округлением half-up
// до 2 знаков. При total == 0 возвращает 0.00 — деления на ноль нет.
func percentage(earned, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero.Round(2)
	}
	return decimal.NewFromInt(int64(earned)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// buildQuestionResult собирает детальную запись по одному вопросу
func buildQuestionResult(question *entity.Question, submittedIDs []uint, isCorrect bool, pointsAwarded int) QuestionResult {
	submittedSet := toSet(submittedIDs)

	correctIDs := make([]uint, 0)
	answers := make([]AnswerDetail, 0, len(question.Answers))
	for _, answer := range question.Answers {
		if answer.IsCorrect {
			correctIDs = append(correctIDs, answer.ID)
		}
		_, wasSelected := submittedSet[answer.ID]
		answers = append(answers, AnswerDetail{
			ID:          answer.ID,
			Text:        answer.Text,
			IsCorrect:   answer.IsCorrect,
			Explanation: answer.Explanation,
			WasSelected: wasSelected,
		})
	}
	sort.Slice(correctIDs, func(i, j int) bool { return correctIDs[i] < correctIDs[j] })

	userAnswerIDs := submittedIDs
	if userAnswerIDs == nil {
		userAnswerIDs = []uint{}
	}

	return QuestionResult{
		QuestionID:       question.ID,
		QuestionText:     question.Text,
		QuestionType:     question.QuestionType,
		Points:           question.Points,
		IsCorrect:        isCorrect,
		PointsAwarded:    pointsAwarded,
		UserAnswerIDs:    userAnswerIDs,
		CorrectAnswerIDs: correctIDs,
		Answers:          answers,
	}
}
