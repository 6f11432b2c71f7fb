package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Papipp/travelrek/internal/model"
	"github.com/Papipp/travelrek/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService отвечает за регистрацию, аутентификацию и смену пароля.
type AuthService struct {
	userStore UserStore
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(userStore UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

// Register регистрирует нового пользователя. Пароль сохраняется только
// в виде bcrypt-хэша. Занятое имя дает ErrUsernameTaken: сначала предварительной
// проверкой, а при гонке двух регистраций - unique-ограничением базы.
func (s *AuthService) Register(username, password, role string) error {
	_, err := s.userStore.GetByUsername(username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке имени пользователя: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("не удалось захэшировать пароль: %w", err)
	}

	_, err = s.userStore.Create(&model.User{
		Username: username,
		Password: string(hash),
		Role:     role,
	})
	if errors.Is(err, repository.ErrDuplicateUsername) {
		return ErrUsernameTaken
	}
	return err
}

// Authenticate проверяет пару имя/пароль. Возвращает пользователя при совпадении
// и (nil, nil) как при отсутствии пользователя, так и при неверном пароле:
// вызывающая сторона не может отличить одно от другого.
func (s *AuthService) Authenticate(username, password string) (*model.User, error) {
	user, err := s.userStore.GetByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// UpdatePassword безусловно заменяет пароль уже аутентифицированного пользователя.
// Старый пароль повторно не запрашивается - поведение исходной системы.
func (s *AuthService) UpdatePassword(username, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("не удалось захэшировать пароль: %w", err)
	}
	return s.userStore.UpdatePassword(username, string(hash))
}

// Profile возвращает данные пользователя для страницы профиля.
func (s *AuthService) Profile(username string) (*model.User, error) {
	user, err := s.userStore.GetByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	return user, nil
}
