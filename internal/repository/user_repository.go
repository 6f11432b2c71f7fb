package repository

import (
	"errors"
	"fmt"

	"github.com/Papipp/travelrek/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrDuplicateUsername возвращается при нарушении уникальности имени пользователя.
var ErrDuplicateUsername = errors.New("имя пользователя уже занято")

// uniqueViolation - код ошибки PostgreSQL для нарушения unique-ограничения.
const uniqueViolation = "23505"

// UserRepository обеспечивает доступ к данным пользователей в базе данных.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create добавляет нового пользователя в базу. Возвращает ID созданного пользователя.
// При гонке двух регистраций с одним именем unique-ограничение базы
// превращается в ErrDuplicateUsername.
func (r *UserRepository) Create(user *model.User) (int, error) {
	query := `INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id`
	var id int
	err := r.db.QueryRow(query, user.Username, user.Password, user.Role).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("не удалось создать пользователя: %w", err)
	}
	return id, nil
}

// GetByUsername ищет пользователя по имени. Возвращает sql.ErrNoRows, если не найдено.
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE username=$1", username)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword заменяет хэш пароля пользователя.
func (r *UserRepository) UpdatePassword(username, passwordHash string) error {
	_, err := r.db.Exec("UPDATE users SET password=$1 WHERE username=$2", passwordHash, username)
	if err != nil {
		return fmt.Errorf("не удалось обновить пароль: %w", err)
	}
	return nil
}
