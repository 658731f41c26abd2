package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/handler/dto"
	"github.com/yourusername/trivia-game-api/internal/service"
)

// QuizHandler обрабатывает запросы игровой сессии викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategoryRequest представляет категорию в теле запроса викторины
type QuizCategoryRequest struct {
	ID   uint   `json:"id"`
	Type string `json:"type,omitempty"`
}

// NextQuestionRequest представляет тело POST /quizzes
type NextQuestionRequest struct {
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
	PreviousQuestions []uint               `json:"previous_questions"`
}

// NextQuestion выбирает следующий вопрос викторины: случайный вопрос
// категории, не входящий в previous_questions, либо сигнал исчерпания.
// POST /api/quizzes
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondStatus(c, http.StatusBadRequest)
		return
	}

	// Унаследованная валидация: 404 только при одновременном отсутствии
	// категории и пустом списке показанных вопросов.
	if req.QuizCategory == nil && len(req.PreviousQuestions) == 0 {
		respondStatus(c, http.StatusNotFound)
		return
	}

	// Категория отсутствует, а previous_questions непуст: исходная
	// реализация на этом падала, здесь контракт явный.
	if req.QuizCategory == nil {
		respondStatus(c, http.StatusBadRequest)
		return
	}

	result, err := h.quizService.NextQuestion(req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Done {
		c.JSON(http.StatusOK, dto.NewQuizDoneResponse())
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizQuestionResponse(result.Question))
}
