package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

func TestRegistry_GetBuiltins(t *testing.T) {
	registry := NewRegistry()

	single, err := registry.Get(entity.QuestionTypeSingle)
	require.NoError(t, err)
	assert.IsType(t, SingleChoiceStrategy{}, single)

	multi, err := registry.Get(entity.QuestionTypeMulti)
	require.NoError(t, err)
	assert.IsType(t, MultipleChoiceStrategy{}, multi)

	selectWords, err := registry.Get(entity.QuestionTypeSelectWords)
	require.NoError(t, err)
	assert.IsType(t, SelectWordsStrategy{}, selectWords)
}

func TestRegistry_GetUnknownType(t *testing.T) {
	registry := NewRegistry()

	strategy, err := registry.Get("true_false")

	require.Error(t, err)
	assert.Nil(t, strategy)

	// Ошибка должна называть нарушающий тип и перечислять известные типы
	var unknownErr *UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "true_false", unknownErr.QuestionType)
	assert.Equal(t, []string{"multi", "select_words", "single"}, unknownErr.KnownTypes)
	assert.Contains(t, err.Error(), "true_false")
	assert.Contains(t, err.Error(), "single")
}

// alwaysCorrectStrategy — тестовая стратегия, считающая любой ответ верным
type alwaysCorrectStrategy struct{}

func (alwaysCorrectStrategy) IsCorrect(question *entity.Question, submittedIDs []uint) bool {
	return true
}

func TestRegistry_RegisterNewType(t *testing.T) {
	registry := NewRegistry()

	registry.Register("true_false", alwaysCorrectStrategy{})

	strategy, err := registry.Get("true_false")
	require.NoError(t, err)
	assert.True(t, strategy.IsCorrect(&entity.Question{}, nil))
	assert.Contains(t, registry.KnownTypes(), "true_false")
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	registry := NewRegistry()

	// Повторная регистрация перезаписывает встроенную стратегию (last write wins)
	registry.Register(entity.QuestionTypeSingle, alwaysCorrectStrategy{})

	strategy, err := registry.Get(entity.QuestionTypeSingle)
	require.NoError(t, err)
	assert.IsType(t, alwaysCorrectStrategy{}, strategy)
}
