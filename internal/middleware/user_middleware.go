package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDHeader — заголовок, в котором вызывающая сторона передает
// идентификатор пользователя. Аутентификации нет: значение принимается
// как есть, без проверки подлинности.
const UserIDHeader = "userId"

// RequireUserID создает middleware, извлекающий идентификатор пользователя
// из заголовка запроса в контекст Gin под ключом contextKey.
func RequireUserID(contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId header is required"})
			c.Abort()
			return
		}
		c.Set(contextKey, userID)
		c.Next()
	}
}
