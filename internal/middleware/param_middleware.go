package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/handler/dto"
)

// ExtractUintParam создает middleware для извлечения и валидации числового
// параметра URL. paramName - имя параметра в URL (например, "id");
// contextKey - ключ, под которым значение будет сохранено в контексте Gin.
// Нечисловой параметр отклоняется фиксированным конвертом 400.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest))
			return
		}
		// Сохраняем как uint для единообразия
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
