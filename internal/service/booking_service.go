package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Papipp/travelrek/internal/model"
)

// BookingService содержит бизнес-логику бронирований и машину статусов.
type BookingService struct {
	bookingStore BookingStore
	userStore    UserStore
}

// NewBookingService создает новый сервис бронирований.
func NewBookingService(bookingStore BookingStore, userStore UserStore) *BookingService {
	return &BookingService{bookingStore: bookingStore, userStore: userStore}
}

// Create создает бронирование для пользователя с начальным статусом Pending.
// Возвращает ErrUserNotFound, если пользователя нет в базе (после аутентификации
// такого быть не должно, но контракт это учитывает).
func (s *BookingService) Create(username string, packageID int, travelDate time.Time, partySize int, note string) (*model.Booking, error) {
	user, err := s.userStore.GetByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}

	b := &model.Booking{
		UserID:     user.ID,
		PackageID:  packageID,
		TravelDate: travelDate,
		PartySize:  partySize,
		Note:       note,
		Status:     model.StatusPending,
	}
	id, err := s.bookingStore.Create(b)
	if err != nil {
		return nil, err
	}
	b.ID = id
	return b, nil
}

// ListForUser возвращает бронирования пользователя вместе с данными пакетов.
func (s *BookingService) ListForUser(username string) ([]model.BookingView, error) {
	return s.bookingStore.FindByUsername(username)
}

// ListAll возвращает все бронирования для административного отчета.
func (s *BookingService) ListAll() ([]model.BookingView, error) {
	return s.bookingStore.FindAll()
}

// SetStatus выставляет бронированию произвольный статус от имени администратора.
// Отмененное бронирование терминально: возвращается ErrAlreadyCancelled, статус
// не меняется. Значение нового статуса не проверяется - администратору доверяем.
func (s *BookingService) SetStatus(id int, status string) error {
	ok, err := s.bookingStore.UpdateStatusIfNotCancelled(id, status)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	// Условный UPDATE не сработал: либо записи нет, либо она уже отменена.
	if _, err := s.bookingStore.GetByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка при поиске бронирования: %w", err)
	}
	return ErrAlreadyCancelled
}

// Cancel отменяет бронирование от имени клиента. Успех только если запись
// существует, принадлежит пользователю и находится в статусе Pending; во всех
// остальных случаях - единый ErrBookingNotCancellable. Повторная отмена
// той же записи также завершается ошибкой.
func (s *BookingService) Cancel(id int, username string) error {
	ok, err := s.bookingStore.CancelIfPending(id, username)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBookingNotCancellable
	}
	return nil
}
