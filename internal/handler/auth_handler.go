package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/Papipp/travelrek/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username             string `json:"username" binding:"required"`
	Password             string `json:"password" binding:"required"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
	Role                 string `json:"role" binding:"required,oneof=admin customer"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updatePasswordRequest struct {
	NewPassword          string `json:"new_password" binding:"required"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
}

// Register обработчик POST /auth/register - регистрация нового пользователя.
// Несовпадение подтверждения пароля отсекается до обращения к сервису.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные регистрации"})
		return
	}
	if req.Password != req.PasswordConfirmation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Подтверждение пароля не совпадает"})
		return
	}

	err := h.AuthService.Register(req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Имя пользователя уже занято"})
			return
		}
		log.Printf("Ошибка регистрации: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось выполнить регистрацию"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Регистрация успешна"})
}

// Login обработчик POST /auth/login - вход в систему. При успехе сессия получает
// {loggedin, username, role} одним сохранением.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные входа"})
		return
	}

	user, err := h.AuthService.Authenticate(req.Username, req.Password)
	if err != nil {
		log.Printf("Ошибка аутентификации: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось выполнить вход"})
		return
	}
	if user == nil {
		// Неверное имя и неверный пароль дают одинаковый ответ.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверное имя пользователя или пароль"})
		return
	}

	s := sessions.Default(c)
	s.Set(sessionLoggedIn, true)
	s.Set(sessionUsername, user.Username)
	s.Set(sessionRole, user.Role)
	if err := s.Save(); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось выполнить вход"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": user.Username, "role": user.Role})
}

// Logout обработчик POST /auth/logout - выход из системы, сессия очищается полностью.
func (h *Handler) Logout(c *gin.Context) {
	s := sessions.Default(c)
	s.Clear()
	if err := s.Save(); err != nil {
		log.Printf("Ошибка очистки сессии: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось выйти из системы"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Вы вышли из системы"})
}

// GetProfile обработчик GET /api/profile - данные текущего пользователя.
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.AuthService.Profile(currentUsername(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
			return
		}
		log.Printf("Ошибка получения профиля: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить профиль"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdatePassword обработчик PUT /api/profile - смена пароля текущего пользователя.
// Старый пароль не запрашивается - поведение исходной системы сохранено.
func (h *Handler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}
	if req.NewPassword != req.PasswordConfirmation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Подтверждение пароля не совпадает"})
		return
	}

	if err := h.AuthService.UpdatePassword(currentUsername(c), req.NewPassword); err != nil {
		log.Printf("Ошибка смены пароля: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сменить пароль"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Пароль успешно изменен"})
}
