package repository

import (
	"fmt"

	"github.com/Papipp/travelrek/internal/model"

	"github.com/jmoiron/sqlx"
)

// BookingRepository обеспечивает доступ к данным бронирований в базе данных.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository создает новый репозиторий бронирований.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create создает новое бронирование. Возвращает ID созданной записи.
func (r *BookingRepository) Create(b *model.Booking) (int, error) {
	query := `INSERT INTO bookings (user_id, package_id, travel_date, party_size, note, status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := r.db.QueryRow(query, b.UserID, b.PackageID, b.TravelDate, b.PartySize, b.Note, b.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать бронирование: %w", err)
	}
	return id, nil
}

// GetByID возвращает бронирование по ID. Возвращает sql.ErrNoRows, если не найдено.
func (r *BookingRepository) GetByID(id int) (*model.Booking, error) {
	var b model.Booking
	err := r.db.Get(&b, "SELECT * FROM bookings WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByUsername возвращает бронирования указанного пользователя вместе с данными
// пакета, новые первыми. Записи других пользователей никогда не попадают в выборку.
func (r *BookingRepository) FindByUsername(username string) ([]model.BookingView, error) {
	views := []model.BookingView{}
	err := r.db.Select(&views,
		`SELECT b.id, b.user_id, b.package_id, b.travel_date, b.party_size, b.note, b.status,
		        p.name AS package_name, p.destination, p.price, u.username
		 FROM bookings b
		 JOIN packages p ON b.package_id = p.id
		 JOIN users u ON b.user_id = u.id
		 WHERE u.username = $1
		 ORDER BY b.id DESC`, username)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении бронирований пользователя: %w", err)
	}
	return views, nil
}

// FindAll возвращает все бронирования для административного отчета, новые первыми.
func (r *BookingRepository) FindAll() ([]model.BookingView, error) {
	views := []model.BookingView{}
	err := r.db.Select(&views,
		`SELECT b.id, b.user_id, b.package_id, b.travel_date, b.party_size, b.note, b.status,
		        p.name AS package_name, p.destination, p.price, u.username
		 FROM bookings b
		 JOIN packages p ON b.package_id = p.id
		 JOIN users u ON b.user_id = u.id
		 ORDER BY b.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка бронирований: %w", err)
	}
	return views, nil
}

// UpdateStatusIfNotCancelled выставляет новый статус одним условным UPDATE:
// проверка терминальности и запись выполняются атомарно на стороне базы.
// Возвращает false, если запись не найдена или уже отменена.
func (r *BookingRepository) UpdateStatusIfNotCancelled(id int, status string) (bool, error) {
	res, err := r.db.Exec("UPDATE bookings SET status=$1 WHERE id=$2 AND status <> $3",
		status, id, model.StatusCancelled)
	if err != nil {
		return false, fmt.Errorf("не удалось обновить статус бронирования: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("не удалось обновить статус бронирования: %w", err)
	}
	return n > 0, nil
}

// CancelIfPending отменяет бронирование одним условным UPDATE: запись должна
// существовать, принадлежать указанному пользователю и находиться в статусе Pending.
// Возвращает false во всех остальных случаях, не различая причину.
func (r *BookingRepository) CancelIfPending(id int, username string) (bool, error) {
	res, err := r.db.Exec(
		`UPDATE bookings SET status=$1
		 WHERE id=$2 AND status=$3
		   AND user_id = (SELECT id FROM users WHERE username=$4)`,
		model.StatusCancelled, id, model.StatusPending, username)
	if err != nil {
		return false, fmt.Errorf("не удалось отменить бронирование: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("не удалось отменить бронирование: %w", err)
	}
	return n > 0, nil
}
