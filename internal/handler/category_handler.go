package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/handler/dto"
	"github.com/yourusername/trivia-game-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(
	categoryService *service.CategoryService,
	questionService *service.QuestionService,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// GetCategories возвращает отображение id -> название для всех категорий.
// GET /api/categories
// Пустое отображение трактуется как "не найдено" — унаследованный контракт.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.CategoryMap()
	if err != nil {
		respondError(c, err)
		return
	}

	if len(categories) == 0 {
		respondStatus(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoriesResponse(categories))
}

// GetQuestionsByCategory возвращает страницу вопросов указанной категории.
// GET /api/categories/:id/questions?page=N
// Пустой результат (категория без вопросов, несуществующая категория или
// страница за пределами списка) — успешный ответ с пустым списком.
func (h *CategoryHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)

	page, err := h.questionService.ListByCategory(categoryID, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionPageResponse(page.Questions, page.Total))
}
