package service_test

import (
	"database/sql"
	"testing"

	"github.com/Papipp/travelrek/internal/model"
	"github.com/Papipp/travelrek/internal/repository"
	"github.com/Papipp/travelrek/internal/service"
	"github.com/Papipp/travelrek/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("stores bcrypt hash, never the plaintext", func(t *testing.T) {
		store := new(mocks.MockUserStore)
		svc := service.NewAuthService(store)

		store.On("GetByUsername", "alice").Return(nil, sql.ErrNoRows)
		store.On("Create", mock.MatchedBy(func(u *model.User) bool {
			if u.Username != "alice" || u.Role != model.RoleCustomer {
				return false
			}
			if u.Password == "pw1" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pw1")) == nil
		})).Return(1, nil)

		err := svc.Register("alice", "pw1", model.RoleCustomer)
		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("taken username is rejected without touching the store", func(t *testing.T) {
		store := new(mocks.MockUserStore)
		svc := service.NewAuthService(store)

		store.On("GetByUsername", "alice").Return(&model.User{ID: 1, Username: "alice"}, nil)

		err := svc.Register("alice", "pw2", model.RoleCustomer)
		assert.ErrorIs(t, err, service.ErrUsernameTaken)
		store.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("registration race surfaces as ErrUsernameTaken", func(t *testing.T) {
		store := new(mocks.MockUserStore)
		svc := service.NewAuthService(store)

		// Предварительная проверка прошла, но вставка уперлась в unique-ограничение.
		store.On("GetByUsername", "alice").Return(nil, sql.ErrNoRows)
		store.On("Create", mock.Anything).Return(0, repository.ErrDuplicateUsername)

		err := svc.Register("alice", "pw1", model.RoleCustomer)
		assert.ErrorIs(t, err, service.ErrUsernameTaken)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("valid credentials return the user", func(t *testing.T) {
		store := new(mocks.MockUserStore)
		svc := service.NewAuthService(store)

		store.On("GetByUsername", "alice").Return(&model.User{
			ID: 1, Username: "alice", Password: hashFor(t, "pw1"), Role: model.RoleCustomer,
		}, nil)

		user, err := svc.Authenticate("alice", "pw1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, model.RoleCustomer, user.Role)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		store := new(mocks.MockUserStore)
		svc := service.NewAuthService(store)

		store.On("GetByUsername", "alice").Return(&model.User{
			ID: 1, Username: "alice", Password: hashFor(t, "pw1"),
		}, nil)
		store.On("GetByUsername", "nobody").Return(nil, sql.ErrNoRows)

		wrongPw, err := svc.Authenticate("alice", "pw2")
		require.NoError(t, err)
		noUser, err2 := svc.Authenticate("nobody", "pw1")
		require.NoError(t, err2)

		assert.Nil(t, wrongPw)
		assert.Nil(t, noUser)
	})
}

func TestAuthService_UpdatePassword(t *testing.T) {
	store := new(mocks.MockUserStore)
	svc := service.NewAuthService(store)

	store.On("UpdatePassword", "alice", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpw")) == nil
	})).Return(nil)

	err := svc.UpdatePassword("alice", "newpw")
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestAuthService_Profile(t *testing.T) {
	store := new(mocks.MockUserStore)
	svc := service.NewAuthService(store)

	store.On("GetByUsername", "ghost").Return(nil, sql.ErrNoRows)

	_, err := svc.Profile("ghost")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
