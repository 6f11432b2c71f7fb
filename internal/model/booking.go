package model

import "time"

// Статусы бронирования. Администратор может выставить произвольный статус,
// но "Cancelled" является терминальным: после отмены статус больше не меняется.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Booking представляет бронирование пакета клиентом.
type Booking struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"user_id"`       // клиент, создавший бронирование
	PackageID  int       `db:"package_id" json:"package_id"` // забронированный пакет
	TravelDate time.Time `db:"travel_date" json:"travel_date"`
	PartySize  int       `db:"party_size" json:"party_size"` // количество участников поездки
	Note       string    `db:"note" json:"note"`             // пожелания клиента в свободной форме
	Status     string    `db:"status" json:"status"`
}

// BookingView - денормализованная строка для отчетов: бронирование вместе
// с данными пакета и именем пользователя.
type BookingView struct {
	Booking
	PackageName string  `db:"package_name" json:"package_name"`
	Destination string  `db:"destination" json:"destination"`
	Price       float64 `db:"price" json:"price"`
	Username    string  `db:"username" json:"username"`
}
