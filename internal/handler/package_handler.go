package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Papipp/travelrek/internal/service"

	"github.com/gin-gonic/gin"
)

type packageRequest struct {
	Name        string  `json:"name" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
}

// ListPackages обработчик GET /api/packages - каталог доступен любой
// аутентифицированной роли.
func (h *Handler) ListPackages(c *gin.Context) {
	packages, err := h.PackageService.List()
	if err != nil {
		log.Printf("Ошибка получения каталога: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить каталог пакетов"})
		return
	}
	c.JSON(http.StatusOK, packages)
}

// CreatePackage обработчик POST /api/packages - добавление пакета (только админ).
func (h *Handler) CreatePackage(c *gin.Context) {
	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные пакета"})
		return
	}
	p, err := h.PackageService.Create(req.Name, req.Destination, req.Price)
	if err != nil {
		log.Printf("Ошибка создания пакета: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать пакет"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetPackage обработчик GET /api/packages/:id.
func (h *Handler) GetPackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пакета"})
		return
	}
	p, err := h.PackageService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Пакет не найден"})
			return
		}
		log.Printf("Ошибка получения пакета: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить пакет"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdatePackage обработчик PUT /api/packages/:id - изменение пакета (только админ).
// Отсутствующий ID молча игнорируется.
func (h *Handler) UpdatePackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пакета"})
		return
	}
	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные пакета"})
		return
	}
	if err := h.PackageService.Update(id, req.Name, req.Destination, req.Price); err != nil {
		log.Printf("Ошибка обновления пакета: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить пакет"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Пакет обновлен"})
}

// DeletePackage обработчик DELETE /api/packages/:id - удаление пакета (только админ).
// Отсутствующий ID молча игнорируется.
func (h *Handler) DeletePackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пакета"})
		return
	}
	if err := h.PackageService.Delete(id); err != nil {
		log.Printf("Ошибка удаления пакета: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить пакет"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Пакет удален"})
}
