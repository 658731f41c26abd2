package dto

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint    `json:"id"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   *string `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// CategoriesResponse — конверт для GET /categories
type CategoriesResponse struct {
	Success         bool            `json:"success"`
	Categories      map[uint]string `json:"categories"`
	TotalCategories int             `json:"total_categories"`
}

// QuestionListResponse — конверт для GET /questions:
// текущая страница, общее количество, текущая категория (всегда null)
// и отображение всех категорий.
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory *uint              `json:"current_category"`
	Categories      map[uint]string    `json:"categories"`
}

// QuestionPageResponse — конверт для операций, возвращающих страницу
// вопросов и общее количество (удаление, создание, поиск, фильтр по категории)
type QuestionPageResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

// QuizQuestionResponse — конверт с выбранным следующим вопросом викторины
type QuizQuestionResponse struct {
	Success  bool             `json:"success"`
	Question QuestionResponse `json:"question"`
}

// QuizDoneResponse — конверт-сигнал исчерпания викторины
type QuizDoneResponse struct {
	Success bool   `json:"success"`
	Done    string `json:"done"`
}

// ErrorResponse — фиксированный конверт ошибки:
// {success: false, error: <код>, message: <текст>}
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// QuizExhaustedMessage - текст сигнала исчерпания викторины
const QuizExhaustedMessage = "You have viewed every question"

// errorMessages - фиксированные тексты для трех кодов ошибок системы
var errorMessages = map[int]string{
	400: "bad request",
	404: "resource not found",
	422: "unprocessable",
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionListDTO преобразует срез вопросов в срез DTO.
// Возвращает пустой срез (не nil), чтобы в JSON всегда был массив.
func NewQuestionListDTO(questions []entity.Question) []QuestionResponse {
	result := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		result = append(result, NewQuestionResponse(&questions[i]))
	}
	return result
}

// NewCategoriesResponse создает конверт со списком категорий
func NewCategoriesResponse(categories map[uint]string) CategoriesResponse {
	return CategoriesResponse{
		Success:         true,
		Categories:      categories,
		TotalCategories: len(categories),
	}
}

// NewQuestionListResponse создает конверт для постраничного списка вопросов
func NewQuestionListResponse(questions []entity.Question, total int64, categories map[uint]string) QuestionListResponse {
	return QuestionListResponse{
		Success:         true,
		Questions:       NewQuestionListDTO(questions),
		TotalQuestions:  total,
		CurrentCategory: nil,
		Categories:      categories,
	}
}

// NewQuestionPageResponse создает конверт со страницей вопросов и total
func NewQuestionPageResponse(questions []entity.Question, total int64) QuestionPageResponse {
	return QuestionPageResponse{
		Success:        true,
		Questions:      NewQuestionListDTO(questions),
		TotalQuestions: total,
	}
}

// NewQuizQuestionResponse создает конверт со следующим вопросом викторины
func NewQuizQuestionResponse(q *entity.Question) QuizQuestionResponse {
	return QuizQuestionResponse{
		Success:  true,
		Question: NewQuestionResponse(q),
	}
}

// NewQuizDoneResponse создает конверт исчерпания викторины
func NewQuizDoneResponse() QuizDoneResponse {
	return QuizDoneResponse{
		Success: true,
		Done:    QuizExhaustedMessage,
	}
}

// NewErrorResponse создает фиксированный конверт ошибки для кода статуса
func NewErrorResponse(status int) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   status,
		Message: errorMessages[status],
	}
}
