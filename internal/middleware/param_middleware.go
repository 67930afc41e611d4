package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// quizIDKey — ключ контекста Gin, под которым хранится разобранный ID викторины
const quizIDKey = "quizID"

// QuizID разбирает параметр маршрута :id в ID викторины и кладет его
// в контекст под ключом "quizID". Все маршруты вида /quizzes/:id/...
// проходят через эту проверку, поэтому в обработчиках ID уже валиден
// и MustGet безопасен.
func QuizID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("id")
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quiz ID must be a positive integer"})
			c.Abort()
			return
		}

		c.Set(quizIDKey, uint(id))
		c.Next()
	}
}
