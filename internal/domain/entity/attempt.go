package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// JSONMap - пользовательский тип для работы с JSONB
type JSONMap map[string]interface{}

// Scan реализует интерфейс sql.Scanner для JSONMap
// Используется GORM для чтения JSONB данных из базы
func (m *JSONMap) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	// Обработка пустого массива байтов
	if len(bytes) == 0 {
		*m = JSONMap{}
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Value реализует интерфейс driver.Valuer для JSONMap
// Используется GORM для записи JSONMap в JSONB в базе
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil // Возвращаем пустой JSON объект вместо null
	}
	return json.Marshal(m)
}

// UserQuizAttempt представляет попытку прохождения викторины.
// Запись неизменяемая: создается ровно один раз на каждую проверку ответов
// и после этого никогда не обновляется (история попыток append-only).
type UserQuizAttempt struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	UserID           uint            `gorm:"not null;index:idx_attempts_user_completed" json:"user_id"`
	QuizID           uint            `gorm:"not null;index:idx_attempts_quiz_completed" json:"quiz_id"`
	Quiz             *Quiz           `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"quiz,omitempty"`
	Score            decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"score"` // процент 0-100, 2 знака
	AnswersData      JSONMap         `gorm:"type:jsonb;not null" json:"answers_data"`
	StartedAt        time.Time       `gorm:"not null" json:"started_at"`
	CompletedAt      time.Time       `gorm:"not null;index:idx_attempts_user_completed,sort:desc;index:idx_attempts_quiz_completed,sort:desc" json:"completed_at"`
	TimeTakenSeconds *int            `json:"time_taken_seconds,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (UserQuizAttempt) TableName() string {
	return "user_quiz_attempts"
}

// Validate проверяет инвариант 0 <= score <= 100
func (a *UserQuizAttempt) Validate() bool {
	return !a.Score.IsNegative() && a.Score.LessThanOrEqual(decimal.NewFromInt(100))
}
