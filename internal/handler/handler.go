package handler

import (
	"github.com/Papipp/travelrek/internal/service"
)

// Ключи сессии. Login выставляет все три значения одним Save,
// Logout очищает сессию целиком.
const (
	sessionLoggedIn = "loggedin"
	sessionUsername = "username"
	sessionRole     = "role"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	AuthService    *service.AuthService
	PackageService *service.PackageService
	BookingService *service.BookingService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(as *service.AuthService, ps *service.PackageService, bs *service.BookingService) *Handler {
	return &Handler{
		AuthService:    as,
		PackageService: ps,
		BookingService: bs,
	}
}
