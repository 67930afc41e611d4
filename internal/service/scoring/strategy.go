package scoring

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// Strategy определяет правило проверки ответа для одного типа вопроса.
// Реализации — чистые функции над снимком вопроса: никакого состояния,
// никаких обращений к базе.
type Strategy interface {
	IsCorrect(question *entity.Question, submittedIDs []uint) bool
}

// toSet преобразует слайс ID в множество (дубликаты схлопываются)
func toSet(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// setsEqual сравнивает два множества ID
func setsEqual(a, b map[uint]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}

// SingleChoiceStrategy проверяет вопросы с одним правильным вариантом.
// Ответ верен, если отправлен ровно один ID, у вопроса ровно один
// правильный вариант и они совпадают. Вопрос, у которого помечено ноль
// или несколько правильных вариантов, по этому правилу не может быть
// отвечен верно — это намеренная строгость, а не ошибка.
type SingleChoiceStrategy struct{}

func (SingleChoiceStrategy) IsCorrect(question *entity.Question, submittedIDs []uint) bool {
	submitted := toSet(submittedIDs)
	correct := question.CorrectAnswerIDs()

	return len(submitted) == 1 && len(correct) == 1 && setsEqual(submitted, correct)
}

// MultipleChoiceStrategy проверяет вопросы с несколькими правильными вариантами.
// Ответ верен, только если множество отправленных ID в точности равно
// множеству правильных: лишний или недостающий вариант — неверно,
// частичных баллов нет.
type MultipleChoiceStrategy struct{}

func (MultipleChoiceStrategy) IsCorrect(question *entity.Question, submittedIDs []uint) bool {
	return setsEqual(toSet(submittedIDs), question.CorrectAnswerIDs())
}

// SelectWordsStrategy проверяет вопросы типа "выбери слова".
// Слова моделируются как варианты ответа, семантика совпадает
// с MultipleChoiceStrategy: точное равенство множеств.
type SelectWordsStrategy struct{}

func (SelectWordsStrategy) IsCorrect(question *entity.Question, submittedIDs []uint) bool {
	return setsEqual(toSet(submittedIDs), question.CorrectAnswerIDs())
}
