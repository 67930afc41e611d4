package dto

import (
	"time"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/service"
	"github.com/yourusername/quiz-api/internal/service/scoring"
)

// AnswerResponse представляет вариант ответа в формате для ответа клиенту.
// Правильность и объяснение до проверки не раскрываются: клиент получает
// их только в detailed_results после отправки своих ответов.
type AnswerResponse struct {
	ID    uint   `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID           uint             `json:"id"`
	QuizID       uint             `json:"quiz_id"`
	QuestionType string           `json:"question_type"`
	Text         string           `json:"text"`
	Points       int              `json:"points"`
	Order        int              `json:"order"`
	Answers      []AnswerResponse `json:"answers,omitempty"`
}

// QuizResponse представляет викторину в формате для ответа клиенту
type QuizResponse struct {
	ID               uint               `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description,omitempty"`
	IsActive         bool               `json:"is_active"`
	TimeLimitMinutes *int               `json:"time_limit_minutes,omitempty"`
	Difficulty       string             `json:"difficulty"`
	Category         *entity.Category   `json:"category,omitempty"`
	Tags             []entity.Tag       `json:"tags,omitempty"`
	QuestionCount    int                `json:"question_count"`
	TotalPoints      int                `json:"total_points"`
	Questions        []QuestionResponse `json:"questions,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

// SubmissionRequest представляет запрос на отправку ответов.
// answers — карта "ID вопроса (строкой) -> список отправленных ID ответов".
type SubmissionRequest struct {
	Answers   map[string][]uint `json:"answers" binding:"required"`
	StartedAt *time.Time        `json:"started_at,omitempty"`
}

// SubmissionResponse представляет результат проверки отправки
type SubmissionResponse struct {
	Score            float64                  `json:"score"`
	TotalPoints      int                      `json:"total_points"`
	EarnedPoints     int                      `json:"earned_points"`
	Percentage       float64                  `json:"percentage"`
	Results          []scoring.QuestionResult `json:"results,omitempty"`
	TimeTakenSeconds *int                     `json:"time_taken_seconds,omitempty"`
}

// AttemptResponse представляет попытку в формате для ответа клиенту
type AttemptResponse struct {
	ID          uint      `json:"id"`
	QuizID      uint      `json:"quiz_id"`
	QuizTitle   string    `json:"quiz_title"`
	Score       float64   `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// PaginatedAttemptsResponse представляет пагинированный список попыток
type PaginatedAttemptsResponse struct {
	Attempts []AttemptResponse `json:"attempts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
}

// UserStatsResponse представляет статистику пользователя
type UserStatsResponse struct {
	TotalQuizzes   int64             `json:"total_quizzes"`
	AverageScore   float64           `json:"average_score"`
	HighestScore   float64           `json:"highest_score"`
	RecentAttempts []AttemptResponse `json:"recent_attempts"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	answers := make([]AnswerResponse, 0, len(q.Answers))
	for _, answer := range q.Answers {
		answers = append(answers, AnswerResponse{
			ID:    answer.ID,
			Text:  answer.Text,
			Order: answer.Order,
		})
	}

	return QuestionResponse{
		ID:           q.ID,
		QuizID:       q.QuizID,
		QuestionType: q.QuestionType,
		Text:         q.Text,
		Points:       q.Points,
		Order:        q.Order,
		Answers:      answers,
	}
}

// NewQuizResponse создает DTO для викторины
func NewQuizResponse(quiz *entity.Quiz, includeQuestions bool) *QuizResponse {
	resp := &QuizResponse{
		ID:               quiz.ID,
		Title:            quiz.Title,
		Description:      quiz.Description,
		IsActive:         quiz.IsActive,
		TimeLimitMinutes: quiz.TimeLimitMinutes,
		Difficulty:       quiz.Difficulty,
		Category:         quiz.Category,
		Tags:             quiz.Tags,
		QuestionCount:    quiz.QuestionCount(),
		TotalPoints:      quiz.TotalPoints(),
		CreatedAt:        quiz.CreatedAt,
	}

	if includeQuestions {
		resp.Questions = make([]QuestionResponse, 0, len(quiz.Questions))
		for i := range quiz.Questions {
			resp.Questions = append(resp.Questions, NewQuestionResponse(&quiz.Questions[i]))
		}
	}

	return resp
}

// NewListQuizResponse создает список DTO викторин (без вопросов)
func NewListQuizResponse(quizzes []entity.Quiz) []*QuizResponse {
	responses := make([]*QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		responses = append(responses, NewQuizResponse(&quizzes[i], false))
	}
	return responses
}

// NewSubmissionResponse создает DTO результата проверки
func NewSubmissionResponse(result *service.SubmissionResult) *SubmissionResponse {
	return &SubmissionResponse{
		Score:            result.Score,
		TotalPoints:      result.TotalPoints,
		EarnedPoints:     result.EarnedPoints,
		Percentage:       result.Percentage,
		Results:          result.Results,
		TimeTakenSeconds: result.TimeTakenSeconds,
	}
}

// NewAttemptResponse создает DTO попытки
func NewAttemptResponse(attempt *entity.UserQuizAttempt) AttemptResponse {
	quizTitle := ""
	if attempt.Quiz != nil {
		quizTitle = attempt.Quiz.Title
	}
	return AttemptResponse{
		ID:          attempt.ID,
		QuizID:      attempt.QuizID,
		QuizTitle:   quizTitle,
		Score:       attempt.Score.InexactFloat64(),
		CompletedAt: attempt.CompletedAt,
	}
}

// NewAttemptListResponse создает список DTO попыток
func NewAttemptListResponse(attempts []entity.UserQuizAttempt) []AttemptResponse {
	responses := make([]AttemptResponse, 0, len(attempts))
	for i := range attempts {
		responses = append(responses, NewAttemptResponse(&attempts[i]))
	}
	return responses
}

// NewUserStatsResponse создает DTO статистики пользователя
func NewUserStatsResponse(stats *service.UserStatistics) *UserStatsResponse {
	return &UserStatsResponse{
		TotalQuizzes:   stats.TotalQuizzes,
		AverageScore:   stats.AverageScore,
		HighestScore:   stats.HighestScore,
		RecentAttempts: NewAttemptListResponse(stats.RecentAttempts),
	}
}
