package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader - имя заголовка с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// RequestID создает middleware, присваивающее каждому запросу уникальный
// идентификатор. Входящий заголовок клиента сохраняется, отсутствующий
// генерируется. Идентификатор доступен в контексте под ключом "requestID"
// и возвращается в ответе.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
