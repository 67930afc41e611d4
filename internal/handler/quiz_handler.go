package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с викторинами
type QuizHandler struct {
	quizService    *service.QuizService
	attemptService *service.AttemptService
	statsService   *service.StatsService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(
	quizService *service.QuizService,
	attemptService *service.AttemptService,
	statsService *service.StatsService,
) *QuizHandler {
	return &QuizHandler{
		quizService:    quizService,
		attemptService: attemptService,
		statsService:   statsService,
	}
}

// ListQuizzes возвращает список викторин без вопросов
// GET /api/quizzes
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.GetAllQuizzes()
	if err != nil {
		log.Printf("[QuizHandler] Ошибка при получении списка викторин: %v", err)
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListQuizResponse(quizzes))
}

// GetQuiz возвращает викторину с вопросами и вариантами ответов.
// Правильность вариантов в ответ не попадает.
// GET /api/quizzes/:id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint) // Получаем из контекста

	quiz, err := h.quizService.GetQuizByID(quizID)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz, true))
}

// SubmitQuiz обрабатывает отправку ответов на викторину
// POST /api/quizzes/:id/submit
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint)
	userID := c.MustGet("user_id").(uint)

	var req dto.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Неверный формат запроса: %v", err)})
		return
	}

	result, err := h.quizService.SubmitQuiz(userID, quizID, req.Answers, req.StartedAt)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubmissionResponse(result))
}

// GetUserStats возвращает агрегированную статистику текущего пользователя
// GET /api/quizzes/user/stats
func (h *QuizHandler) GetUserStats(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	stats, err := h.statsService.GetStatistics(userID)
	if err != nil {
		log.Printf("[QuizHandler] Ошибка при получении статистики пользователя %d: %v", userID, err)
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserStatsResponse(stats))
}

// GetUserAttempts возвращает пагинированную историю попыток текущего пользователя
// GET /api/quizzes/user/attempts?page=1&per_page=10
func (h *QuizHandler) GetUserAttempts(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil || perPage < 1 {
		perPage = 10
	}

	attempts, total, err := h.attemptService.GetUserAttempts(userID, page, perPage)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaginatedAttemptsResponse{
		Attempts: dto.NewAttemptListResponse(attempts),
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	})
}

// ExportQuizAttempts экспортирует попытки по викторине в CSV или Excel формате
// GET /api/quizzes/:id/attempts/export?format=csv|xlsx
func (h *QuizHandler) ExportQuizAttempts(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint)
	format := c.DefaultQuery("format", "csv")

	// Для экспорта выгружаем ВСЕ попытки без пагинации
	attempts, err := h.attemptService.GetQuizAttempts(quizID)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	// Информация о викторине нужна для имени файла
	quiz, err := h.quizService.GetQuizByID(quizID)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	filename := fmt.Sprintf("quiz_%d_attempts_%s", quizID, time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, attempts, quiz, filename)
	default:
		h.exportCSV(c, attempts, quiz, filename)
	}
}

// exportCSV экспортирует попытки в CSV с правильным экранированием спецсимволов
func (h *QuizHandler) exportCSV(c *gin.Context, attempts []entity.UserQuizAttempt, quiz *entity.Quiz, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// Заголовки
	writer.Write([]string{"ID попытки", "ID пользователя", "Викторина", "Результат (%)", "Начало", "Завершение", "Время (сек)"})

	// Данные
	for _, a := range attempts {
		timeTaken := ""
		if a.TimeTakenSeconds != nil {
			timeTaken = strconv.Itoa(*a.TimeTakenSeconds)
		}

		writer.Write([]string{
			strconv.FormatUint(uint64(a.ID), 10),
			strconv.FormatUint(uint64(a.UserID), 10),
			sanitizeForExcel(quiz.Title),
			a.Score.StringFixed(2),
			a.StartedAt.Format(time.RFC3339),
			a.CompletedAt.Format(time.RFC3339),
			timeTaken,
		})
	}
}

// exportXLSX экспортирует попытки в Excel с использованием StreamWriter
func (h *QuizHandler) exportXLSX(c *gin.Context, attempts []entity.UserQuizAttempt, quiz *entity.Quiz, filename string) {
	// Используем StreamWriter для эффективной работы с большими файлами
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Попытки"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuizHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	// Заголовки
	headers := []interface{}{"ID попытки", "ID пользователя", "Викторина", "Результат (%)", "Начало", "Завершение", "Время (сек)"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuizHandler] Ошибка записи заголовков: %v", err)
	}

	// Данные
	for i, a := range attempts {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		score, _ := a.Score.Float64()
		timeTaken := ""
		if a.TimeTakenSeconds != nil {
			timeTaken = strconv.Itoa(*a.TimeTakenSeconds)
		}

		row := []interface{}{
			a.ID,
			a.UserID,
			sanitizeForExcel(quiz.Title),
			score,
			a.StartedAt.Format(time.RFC3339),
			a.CompletedAt.Format(time.RFC3339),
			timeTaken,
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuizHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuizHandler] Ошибка при Flush: %v", err)
	}

	// Записываем в response
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuizHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

// GetCategories возвращает справочник категорий
// GET /api/categories
func (h *QuizHandler) GetCategories(c *gin.Context) {
	categories, err := h.quizService.GetCategories()
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetTags возвращает справочник тегов
// GET /api/tags
func (h *QuizHandler) GetTags(c *gin.Context) {
	tags, err := h.quizService.GetTags()
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// handleQuizError обрабатывает ошибки сервисов и возвращает соответствующий HTTP-статус
func (h *QuizHandler) handleQuizError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in QuizHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
