package repository

import (
	"fmt"

	"github.com/Papipp/travelrek/internal/model"

	"github.com/jmoiron/sqlx"
)

// PackageRepository обеспечивает доступ к каталогу туристических пакетов в базе данных.
type PackageRepository struct {
	db *sqlx.DB
}

// NewPackageRepository создает новый репозиторий пакетов.
func NewPackageRepository(db *sqlx.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// FindAll возвращает все пакеты, новые первыми.
func (r *PackageRepository) FindAll() ([]model.Package, error) {
	packages := []model.Package{}
	err := r.db.Select(&packages, "SELECT * FROM packages ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка пакетов: %w", err)
	}
	return packages, nil
}

// Create добавляет новый пакет в каталог. Возвращает ID созданного пакета.
func (r *PackageRepository) Create(p *model.Package) (int, error) {
	query := `INSERT INTO packages (name, destination, price) VALUES ($1, $2, $3) RETURNING id`
	var id int
	err := r.db.QueryRow(query, p.Name, p.Destination, p.Price).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать пакет: %w", err)
	}
	return id, nil
}

// GetByID возвращает пакет по его идентификатору. Возвращает sql.ErrNoRows, если не найдено.
func (r *PackageRepository) GetByID(id int) (*model.Package, error) {
	var p model.Package
	err := r.db.Get(&p, "SELECT * FROM packages WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update изменяет данные пакета. Если пакета с таким ID нет, изменение молча не происходит.
func (r *PackageRepository) Update(id int, name, destination string, price float64) error {
	_, err := r.db.Exec("UPDATE packages SET name=$1, destination=$2, price=$3 WHERE id=$4",
		name, destination, price, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить пакет: %w", err)
	}
	return nil
}

// Delete удаляет пакет из каталога. Если пакета с таким ID нет, удаление молча не происходит.
func (r *PackageRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM packages WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить пакет: %w", err)
	}
	return nil
}
