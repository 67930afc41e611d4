package scoring

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// UnknownTypeError возвращается, когда для типа вопроса не зарегистрирована стратегия
type UnknownTypeError struct {
	QuestionType string
	KnownTypes   []string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown question type '%s', supported types: %s",
		e.QuestionType, strings.Join(e.KnownTypes, ", "))
}

// Registry сопоставляет тип вопроса со стратегией его проверки.
// Реестр передается в Engine явно при создании — глобального изменяемого
// состояния нет. Регистрация новых типов выполняется при старте процесса,
// до начала обработки запросов; на этот случай доступ защищен мьютексом.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewRegistry создает реестр с тремя встроенными стратегиями
func NewRegistry() *Registry {
	return &Registry{
		strategies: map[string]Strategy{
			entity.QuestionTypeSingle:      SingleChoiceStrategy{},
			entity.QuestionTypeMulti:       MultipleChoiceStrategy{},
			entity.QuestionTypeSelectWords: SelectWordsStrategy{},
		},
	}
}

// Get возвращает стратегию для типа вопроса.
// Для незарегистрированного типа возвращает *UnknownTypeError с именем
// нарушающего типа и списком известных типов.
func (r *Registry) Get(questionType string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategy, ok := r.strategies[questionType]
	if !ok {
		return nil, &UnknownTypeError{
			QuestionType: questionType,
			KnownTypes:   r.knownTypesLocked(),
		}
	}
	return strategy, nil
}

// Register регистрирует стратегию для типа вопроса.
// Повторная регистрация перезаписывает предыдущую стратегию (last write wins),
// что позволяет расширять набор типов без изменения цикла проверки.
func (r *Registry) Register(questionType string, strategy Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[questionType] = strategy
}

// KnownTypes возвращает отсортированный список зарегистрированных типов
func (r *Registry) KnownTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.knownTypesLocked()
}

func (r *Registry) knownTypesLocked() []string {
	types := make([]string, 0, len(r.strategies))
	for questionType := range r.strategies {
		types = append(types, questionType)
	}
	sort.Strings(types)
	return types
}
