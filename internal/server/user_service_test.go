package server

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/types"
)

// mockDB is an in-memory DBClient for service and handler tests.
type mockDB struct {
	mu    sync.Mutex
	users map[uuid.UUID]*db.User
}

func newMockDB() *mockDB {
	return &mockDB{users: make(map[uuid.UUID]*db.User)}
}

func (m *mockDB) CreateUser(ctx context.Context, name, email, passwordHash string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	user := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[user.ID] = user
	copied := *user
	return &copied, nil
}

func (m *mockDB) GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *mockDB) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockDB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	user, err := m.GetUserByEmail(ctx, email)
	return user != nil, err
}

func (m *mockDB) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	return nil
}

func testUserService(database DBClient) *UserService {
	return NewUserService(database, &config.PasswordConfig{BcryptCost: 10})
}

func registerTestUser(t *testing.T, service *UserService, email, password string) *types.User {
	t.Helper()
	user, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Test User",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func TestUserService_Register(t *testing.T) {
	service := testUserService(newMockDB())

	user := registerTestUser(t, service, "ada@example.com", "password123")

	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	service := testUserService(newMockDB())
	registerTestUser(t, service, "ada@example.com", "password123")

	_, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Second",
		Email:    "ada@example.com",
		Password: "password456",
	})

	require.Error(t, err)
	var conflict *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "ada@example.com", conflict.Email)
}

func TestUserService_Login(t *testing.T) {
	service := testUserService(newMockDB())
	created := registerTestUser(t, service, "ada@example.com", "password123")

	user, err := service.Login(context.Background(), &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	service := testUserService(newMockDB())
	registerTestUser(t, service, "ada@example.com", "password123")

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})

	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	service := testUserService(newMockDB())

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	// Same generic error as a wrong password, so the API does not leak
	// which emails are registered.
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_UpdatePassword(t *testing.T) {
	service := testUserService(newMockDB())
	user := registerTestUser(t, service, "ada@example.com", "password123")

	err := service.UpdatePassword(context.Background(), user.ID, "password123", "new-password-456")
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "new-password-456",
	})
	assert.NoError(t, err)

	_, err = service.Login(context.Background(), &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	assert.Error(t, err, "old password should no longer work")
}

func TestUserService_UpdatePasswordWrongCurrent(t *testing.T) {
	service := testUserService(newMockDB())
	user := registerTestUser(t, service, "ada@example.com", "password123")

	err := service.UpdatePassword(context.Background(), user.ID, "wrong-password", "new-password-456")

	var mismatch *ErrPasswordMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestUserService_UpdatePasswordUnknownUser(t *testing.T) {
	service := testUserService(newMockDB())

	err := service.UpdatePassword(context.Background(), uuid.New(), "password123", "new-password-456")

	var notFound *ErrUserNotFound
	assert.ErrorAs(t, err, &notFound)
}
