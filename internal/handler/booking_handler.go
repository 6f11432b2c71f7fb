package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Papipp/travelrek/internal/service"

	"github.com/gin-gonic/gin"
)

// travelDateLayout - формат даты поездки в запросах.
const travelDateLayout = "2006-01-02"

type createBookingRequest struct {
	PackageID  int    `json:"package_id" binding:"required"`
	TravelDate string `json:"travel_date" binding:"required"`
	PartySize  int    `json:"party_size" binding:"required,min=1"`
	Note       string `json:"note"`
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateBooking обработчик POST /api/bookings - создание бронирования
// текущим пользователем. Статус новой записи всегда Pending.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные бронирования"})
		return
	}
	travelDate, err := time.Parse(travelDateLayout, req.TravelDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата поездки, ожидается ГГГГ-ММ-ДД"})
		return
	}

	booking, err := h.BookingService.Create(currentUsername(c), req.PackageID, travelDate, req.PartySize, req.Note)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
			return
		}
		log.Printf("Ошибка создания бронирования: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать бронирование"})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// MyBookings обработчик GET /api/bookings/my - история бронирований текущего
// пользователя; чужие записи в выборку не попадают.
func (h *Handler) MyBookings(c *gin.Context) {
	views, err := h.BookingService.ListForUser(currentUsername(c))
	if err != nil {
		log.Printf("Ошибка получения бронирований: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить бронирования"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListBookings обработчик GET /api/bookings - отчет по всем бронированиям (только админ).
func (h *Handler) ListBookings(c *gin.Context) {
	views, err := h.BookingService.ListAll()
	if err != nil {
		log.Printf("Ошибка получения отчета: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить отчет"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// SetBookingStatus обработчик PUT /api/bookings/:id/status - смена статуса
// администратором. Отмененное бронирование менять нельзя.
func (h *Handler) SetBookingStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор бронирования"})
		return
	}
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные статуса"})
		return
	}

	err = h.BookingService.SetStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Бронирование не найдено"})
		case errors.Is(err, service.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": "Бронирование уже отменено пользователем"})
		default:
			log.Printf("Ошибка смены статуса: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось изменить статус"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Статус бронирования изменен на " + req.Status})
}

// CancelBooking обработчик POST /api/bookings/:id/cancel - отмена бронирования
// клиентом. Ответ одинаков для отсутствующей, чужой и уже обработанной записи.
func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор бронирования"})
		return
	}

	err = h.BookingService.Cancel(id, currentUsername(c))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotCancellable) {
			c.JSON(http.StatusConflict, gin.H{"error": "Бронирование не найдено или уже обработано"})
			return
		}
		log.Printf("Ошибка отмены бронирования: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось отменить бронирование"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Бронирование отменено"})
}
