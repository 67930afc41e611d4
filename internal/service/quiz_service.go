package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/internal/service/scoring"
)

// quizListCacheKey — ключ кеша списка викторин
const quizListCacheKey = "quizzes:all"

// quizListCacheTTL — время жизни кеша списка викторин.
// Короткое: список меняется редко, но отставание дольше минуты нежелательно.
const quizListCacheTTL = time.Minute

// SubmissionResult — итог обработки отправки ответов
type SubmissionResult struct {
	Score            float64
	TotalPoints      int
	EarnedPoints     int
	Percentage       float64
	Results          []scoring.QuestionResult
	TimeTakenSeconds *int
	AttemptID        uint
}

// QuizService — фасад над операциями с викторинами.
// Координирует загрузку викторины, валидацию отправки, движок подсчета
// и запись попытки.
type QuizService struct {
	quizRepo       repository.QuizRepository
	categoryRepo   repository.CategoryRepository
	tagRepo        repository.TagRepository
	userRepo       repository.UserRepository
	cacheRepo      repository.CacheRepository
	engine         *scoring.Engine
	attemptService *AttemptService
	emailService   EmailService
}

// NewQuizService создает новый сервис викторин
func NewQuizService(
	quizRepo repository.QuizRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
	engine *scoring.Engine,
	attemptService *AttemptService,
	emailService EmailService,
) *QuizService {
	return &QuizService{
		quizRepo:       quizRepo,
		categoryRepo:   categoryRepo,
		tagRepo:        tagRepo,
		userRepo:       userRepo,
		cacheRepo:      cacheRepo,
		engine:         engine,
		attemptService: attemptService,
		emailService:   emailService,
	}
}

// GetQuizByID возвращает викторину с полным деревом вопрос -> ответы
func (s *QuizService) GetQuizByID(quizID uint) (*entity.Quiz, error) {
	return s.quizRepo.GetWithQuestions(quizID)
}

// GetAllQuizzes возвращает список викторин.
// Список кешируется в Redis с коротким TTL; кеш относится к внешнему
// слою, снимок для подсчета очков всегда читается напрямую из БД.
func (s *QuizService) GetAllQuizzes() ([]entity.Quiz, error) {
	if s.cacheRepo != nil {
		var cached []entity.Quiz
		if err := s.cacheRepo.GetJSON(quizListCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	quizzes, err := s.quizRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(quizListCacheKey, quizzes, quizListCacheTTL); err != nil {
			log.Printf("[QuizService] Не удалось закешировать список викторин: %v", err)
		}
	}

	return quizzes, nil
}

// GetCategories возвращает справочник категорий
func (s *QuizService) GetCategories() ([]entity.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetTags возвращает справочник тегов
func (s *QuizService) GetTags() ([]entity.Tag, error) {
	return s.tagRepo.GetAll()
}

// SubmitQuiz обрабатывает отправку ответов: валидирует отправку, подсчитывает
// результат с детальным разбором, сохраняет попытку и возвращает итог.
// Попытка создается только после успешного подсчета: при любой ошибке
// до этого момента частичное состояние не сохраняется.
func (s *QuizService) SubmitQuiz(
	userID uint,
	quizID uint,
	submitted map[string][]uint,
	startedAt *time.Time,
) (*SubmissionResult, error) {
	quiz, err := s.quizRepo.GetWithQuestions(quizID)
	if err != nil {
		return nil, err
	}

	if err := validateSubmission(quiz, submitted); err != nil {
		return nil, err
	}

	result := s.engine.CalculateScore(quiz, submitted, true)

	attempt, err := s.attemptService.CreateAttempt(userID, quizID, result.Score, entity.JSONMap{
		"submitted_answers": submitted,
		"detailed_results":  result.Details,
	}, startedAt)
	if err != nil {
		return nil, err
	}

	s.sendScoreReport(userID, quiz, result)

	score := result.Score.InexactFloat64()
	return &SubmissionResult{
		Score:            score,
		TotalPoints:      result.TotalPoints,
		EarnedPoints:     result.EarnedPoints,
		Percentage:       score,
		Results:          result.Details,
		TimeTakenSeconds: attempt.TimeTakenSeconds,
		AttemptID:        attempt.ID,
	}, nil
}

// sendScoreReport отправляет письмо с результатом в фоне.
// Ошибка отправки не влияет на результат запроса.
func (s *QuizService) sendScoreReport(userID uint, quiz *entity.Quiz, result scoring.Result) {
	if s.emailService == nil {
		return
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		log.Printf("[QuizService] Не удалось найти пользователя %d для отправки отчета: %v", userID, err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		idempotencyKey := uuid.New().String()
		if err := s.emailService.SendScoreReport(ctx, user.Email, quiz.Title, result.Score, idempotencyKey); err != nil {
			log.Printf("[QuizService] Ошибка отправки отчета о результате пользователю %d: %v", userID, err)
		}
	}()
}

// validateSubmission проверяет отправку до запуска движка подсчета:
//   - каждый ID вопроса в отправке принадлежит викторине;
//   - вопрос типа single получает не более одного ID ответа;
//   - каждый ID ответа принадлежит своему вопросу.
//
// Нарушение — ошибка валидации с именем нарушающего ID.
func validateSubmission(quiz *entity.Quiz, submitted map[string][]uint) error {
	questions := make(map[string]*entity.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		questions[strconv.FormatUint(uint64(quiz.Questions[i].ID), 10)] = &quiz.Questions[i]
	}

	for questionID, answerIDs := range submitted {
		question, ok := questions[questionID]
		if !ok {
			return fmt.Errorf("%w: question %s does not belong to quiz %d",
				apperrors.ErrValidation, questionID, quiz.ID)
		}

		if question.QuestionType == entity.QuestionTypeSingle && len(answerIDs) > 1 {
			return fmt.Errorf("%w: question %s is single-choice but %d answers were provided",
				apperrors.ErrValidation, questionID, len(answerIDs))
		}

		validAnswerIDs := question.AnswerIDs()
		for _, answerID := range answerIDs {
			if _, ok := validAnswerIDs[answerID]; !ok {
				return fmt.Errorf("%w: answer %d does not belong to question %s",
					apperrors.ErrValidation, answerID, questionID)
			}
		}
	}

	return nil
}
