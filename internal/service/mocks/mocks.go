package mocks

import (
	"github.com/Papipp/travelrek/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockUserStore - mock-реализация service.UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(user *model.User) (int, error) {
	args := m.Called(user)
	return args.Int(0), args.Error(1)
}

func (m *MockUserStore) GetByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) UpdatePassword(username, passwordHash string) error {
	args := m.Called(username, passwordHash)
	return args.Error(0)
}

// MockPackageStore - mock-реализация service.PackageStore.
type MockPackageStore struct {
	mock.Mock
}

func (m *MockPackageStore) FindAll() ([]model.Package, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func (m *MockPackageStore) Create(p *model.Package) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *MockPackageStore) GetByID(id int) (*model.Package, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Package), args.Error(1)
}

func (m *MockPackageStore) Update(id int, name, destination string, price float64) error {
	args := m.Called(id, name, destination, price)
	return args.Error(0)
}

func (m *MockPackageStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockBookingStore - mock-реализация service.BookingStore.
type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) Create(b *model.Booking) (int, error) {
	args := m.Called(b)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingStore) GetByID(id int) (*model.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingStore) FindByUsername(username string) ([]model.BookingView, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BookingView), args.Error(1)
}

func (m *MockBookingStore) FindAll() ([]model.BookingView, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BookingView), args.Error(1)
}

func (m *MockBookingStore) UpdateStatusIfNotCancelled(id int, status string) (bool, error) {
	args := m.Called(id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingStore) CancelIfPending(id int, username string) (bool, error) {
	args := m.Called(id, username)
	return args.Bool(0), args.Error(1)
}
