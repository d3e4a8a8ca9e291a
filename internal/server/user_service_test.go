package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-screen/internal/config"
	"github.com/jonathan/talent-screen/internal/types"
)

// fakeUserStore keeps users in memory, keyed by email.
type fakeUserStore struct {
	users map[string]*types.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*types.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, email, name string, role types.UserRole, passwordHash string) (*types.User, error) {
	user := &types.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users[email] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	return f.users[email], nil
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func testUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	pwCfg := &config.PasswordConfig{BcryptCost: 10}
	return NewUserService(store, pwCfg), store
}

func TestUserServiceRegister(t *testing.T) {
	svc, store := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, types.RoleInterviewer, user.Role, "role defaults to interviewer")
	assert.NotEqual(t, "correct-horse-battery", user.PasswordHash)
	assert.Len(t, store.users, 1)
}

func TestUserServiceRegisterExplicitRole(t *testing.T) {
	svc, _ := testUserService()

	user, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: "correct-horse-battery",
		Role:     string(types.RoleAdmin),
	})
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, user.Role)
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	req := &RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "correct-horse-battery"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	var dup *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
}

func TestUserServiceLogin(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, &LoginRequest{Email: "alice@example.com", Password: "correct-horse-battery"})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginRequest{Email: "alice@example.com", Password: "wrong"})
		var invalid *ErrInvalidCredentials
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "correct-horse-battery"})
		var invalid *ErrInvalidCredentials
		assert.ErrorAs(t, err, &invalid)
	})
}
