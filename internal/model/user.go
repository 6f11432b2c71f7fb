package model

// Роли пользователей системы.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User представляет учетную запись пользователя (администратора или клиента).
type User struct {
	ID       int    `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"` // bcrypt-хэш, никогда не отдается наружу
	Role     string `db:"role" json:"role"`
}
