package service

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
)

// DefaultRecentAttemptsLimit — количество попыток в блоке recent_attempts статистики
const DefaultRecentAttemptsLimit = 5

// AttemptService предоставляет методы для работы с попытками прохождения.
// Попытка создается ровно один раз на каждую проверку ответов и после
// этого никогда не изменяется; разрешены ли пересдачи — политика внешнего
// слоя авторизации, сервис их не блокирует.
type AttemptService struct {
	attemptRepo repository.AttemptRepository
}

// NewAttemptService создает новый сервис попыток
func NewAttemptService(attemptRepo repository.AttemptRepository) *AttemptService {
	return &AttemptService{attemptRepo: attemptRepo}
}

// CreateAttempt создает новую запись попытки.
// Если startedAt передан, time_taken_seconds вычисляется как целая часть
// разницы между "сейчас" и startedAt; иначе остается null.
// startedAt в будущем (рассинхронизация часов клиента) дает 0 секунд:
// отрицательное время нарушило бы CHECK-ограничение таблицы попыток.
func (s *AttemptService) CreateAttempt(
	userID uint,
	quizID uint,
	score decimal.Decimal,
	answersData entity.JSONMap,
	startedAt *time.Time,
) (*entity.UserQuizAttempt, error) {
	completedAt := time.Now()

	started := completedAt
	var timeTaken *int
	if startedAt != nil {
		started = *startedAt
		seconds := int(completedAt.Sub(*startedAt).Seconds())
		if seconds < 0 {
			seconds = 0
		}
		timeTaken = &seconds
	}

	if answersData == nil {
		answersData = entity.JSONMap{}
	}

	attempt := &entity.UserQuizAttempt{
		UserID:           userID,
		QuizID:           quizID,
		Score:            score,
		AnswersData:      answersData,
		StartedAt:        started,
		CompletedAt:      completedAt,
		TimeTakenSeconds: timeTaken,
	}

	if !attempt.Validate() {
		return nil, fmt.Errorf("attempt score %s is out of range 0-100", score.String())
	}

	if err := s.attemptRepo.Create(attempt); err != nil {
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}

	log.Printf("[AttemptService] Создана попытка #%d: пользователь %d, викторина %d, результат %s%%",
		attempt.ID, userID, quizID, score.StringFixed(2))

	return attempt, nil
}

// GetUserAttempts возвращает попытки пользователя, новые первыми, с пагинацией
func (s *AttemptService) GetUserAttempts(userID uint, page, pageSize int) ([]entity.UserQuizAttempt, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	return s.attemptRepo.GetByUser(userID, pageSize, offset)
}

// GetRecentAttempts возвращает limit последних попыток пользователя
func (s *AttemptService) GetRecentAttempts(userID uint, limit int) ([]entity.UserQuizAttempt, error) {
	if limit < 1 {
		limit = DefaultRecentAttemptsLimit
	}
	return s.attemptRepo.GetRecentByUser(userID, limit)
}

// GetQuizAttempts возвращает все попытки по викторине, новые первыми
func (s *AttemptService) GetQuizAttempts(quizID uint) ([]entity.UserQuizAttempt, error) {
	return s.attemptRepo.GetByQuiz(quizID)
}
