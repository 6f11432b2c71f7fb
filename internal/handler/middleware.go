package handler

import (
	"net/http"

	"github.com/Papipp/travelrek/internal/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth пропускает только аутентифицированные запросы. Проверка выполняется
// до любого обращения к доменным сервисам; неаутентифицированный запрос
// обрывается без побочных эффектов.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		loggedIn, _ := s.Get(sessionLoggedIn).(bool)
		if !loggedIn {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Требуется вход в систему"})
			return
		}
		c.Next()
	}
}

// RequireAdmin пропускает только запросы с ролью администратора.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		role, _ := s.Get(sessionRole).(string)
		if role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Доступ только для администратора"})
			return
		}
		c.Next()
	}
}

// currentUsername возвращает имя пользователя текущей сессии.
func currentUsername(c *gin.Context) string {
	username, _ := sessions.Default(c).Get(sessionUsername).(string)
	return username
}
