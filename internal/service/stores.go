package service

import "github.com/Papipp/travelrek/internal/model"

// Интерфейсы хранилищ, которыми пользуются сервисы. Реализуются пакетом
// repository; в тестах подменяются двойниками.

// UserStore - операции над пользователями.
type UserStore interface {
	Create(user *model.User) (int, error)
	GetByUsername(username string) (*model.User, error)
	UpdatePassword(username, passwordHash string) error
}

// PackageStore - операции над каталогом пакетов.
type PackageStore interface {
	FindAll() ([]model.Package, error)
	Create(p *model.Package) (int, error)
	GetByID(id int) (*model.Package, error)
	Update(id int, name, destination string, price float64) error
	Delete(id int) error
}

// BookingStore - операции над бронированиями.
type BookingStore interface {
	Create(b *model.Booking) (int, error)
	GetByID(id int) (*model.Booking, error)
	FindByUsername(username string) ([]model.BookingView, error)
	FindAll() ([]model.BookingView, error)
	UpdateStatusIfNotCancelled(id int, status string) (bool, error)
	CancelIfPending(id int, username string) (bool, error)
}
