package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// respondError отображает внутреннюю ошибку в один из трех фиксированных
// конвертов. Система сама по себе других статусов не производит: все, что не
// является NotFound или BadRequest, схлопывается в 422 "unprocessable".
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondStatus(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrBadRequest):
		respondStatus(c, http.StatusBadRequest)
	default:
		log.Printf("[Handler] Необработанная ошибка, возвращаю 422: %v", err)
		respondStatus(c, http.StatusUnprocessableEntity)
	}
}

// respondStatus пишет фиксированный конверт ошибки для кода статуса
func respondStatus(c *gin.Context, status int) {
	c.JSON(status, dto.NewErrorResponse(status))
}

// pageFromQuery извлекает номер страницы из query-параметра page.
// Отсутствующее или нечисловое значение трактуется как первая страница.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
