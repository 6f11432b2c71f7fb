package service

import (
	"database/sql"
	"errors"

	"github.com/Papipp/travelrek/internal/model"
)

// PackageService содержит бизнес-логику каталога туристических пакетов.
type PackageService struct {
	packageStore PackageStore
}

// NewPackageService создает новый сервис каталога.
func NewPackageService(packageStore PackageStore) *PackageService {
	return &PackageService{packageStore: packageStore}
}

// List возвращает все пакеты каталога, новые первыми.
func (s *PackageService) List() ([]model.Package, error) {
	return s.packageStore.FindAll()
}

// Create добавляет новый пакет в каталог.
func (s *PackageService) Create(name, destination string, price float64) (*model.Package, error) {
	p := &model.Package{Name: name, Destination: destination, Price: price}
	id, err := s.packageStore.Create(p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

// Get возвращает пакет по ID или ErrNotFound.
func (s *PackageService) Get(id int) (*model.Package, error) {
	p, err := s.packageStore.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update изменяет данные пакета. Отсутствующий ID молча игнорируется.
func (s *PackageService) Update(id int, name, destination string, price float64) error {
	return s.packageStore.Update(id, name, destination, price)
}

// Delete удаляет пакет. Отсутствующий ID молча игнорируется.
func (s *PackageService) Delete(id int) error {
	return s.packageStore.Delete(id)
}
