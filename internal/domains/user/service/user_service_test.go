package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"productstore-backend/internal/domains/user"
	"productstore-backend/pkg/jwt"
)

type mockUserRepository struct {
	usersByName map[string]*user.User
	usersByID   map[int64]*user.User

	updatedPasswordHash string
	updatedPasswordID   int64
	created             *user.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		usersByName: map[string]*user.User{},
		usersByID:   map[int64]*user.User{},
	}
}

func (m *mockUserRepository) add(u *user.User) {
	m.usersByName[u.Username] = u
	m.usersByID[u.ID] = u
}

func (m *mockUserRepository) List(ctx context.Context) ([]user.User, error) {
	out := []user.User{}
	for _, u := range m.usersByID {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := m.usersByID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	u, ok := m.usersByName[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := m.usersByName[username]
	return ok, nil
}

func (m *mockUserRepository) Create(ctx context.Context, entity *user.User) error {
	entity.ID = int64(len(m.usersByID) + 1)
	m.created = entity
	m.add(entity)
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, entity *user.User) error {
	m.add(entity)
	return nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	m.updatedPasswordID = id
	m.updatedPasswordHash = passwordHash
	if u, ok := m.usersByID[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	return nil
}

func testJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
}

// MinCost keeps the hashing fast in tests.
func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func seedUser(t *testing.T, repo *mockUserRepository, password string) *user.User {
	t.Helper()
	u := &user.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, password),
	}
	repo.add(u)
	return u
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepository()
	seedUser(t, repo, "correct-horse")
	svc := NewUserService(repo, testJWTManager())

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "alice",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestLogin_UniformFailure(t *testing.T) {
	repo := newMockUserRepository()
	seedUser(t, repo, "correct-horse")
	svc := NewUserService(repo, testJWTManager())

	// Unknown username and wrong password must be indistinguishable.
	_, unknownErr := svc.Login(context.Background(), user.LoginRequest{
		Username: "mallory",
		Password: "whatever",
	})
	_, wrongErr := svc.Login(context.Background(), user.LoginRequest{
		Username: "alice",
		Password: "battery-staple",
	})

	assert.ErrorIs(t, unknownErr, user.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, user.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewUserService(repo, testJWTManager())

	dto, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", dto.Username)

	require.NotNil(t, repo.created)
	assert.NotEqual(t, "secret123", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.created.PasswordHash), []byte("secret123")))
}

func TestRegister_UsernameTaken(t *testing.T) {
	repo := newMockUserRepository()
	seedUser(t, repo, "whatever")
	svc := NewUserService(repo, testJWTManager())

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestChangePassword_WrongCurrentLeavesHashUntouched(t *testing.T) {
	repo := newMockUserRepository()
	u := seedUser(t, repo, "old-password")
	originalHash := u.PasswordHash
	svc := NewUserService(repo, testJWTManager())

	err := svc.ChangePassword(context.Background(), 1, user.ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "new-password",
	})

	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	assert.Equal(t, originalHash, u.PasswordHash)
	assert.Empty(t, repo.updatedPasswordHash)
}

func TestChangePassword_Success(t *testing.T) {
	repo := newMockUserRepository()
	u := seedUser(t, repo, "old-password")
	originalHash := u.PasswordHash
	svc := NewUserService(repo, testJWTManager())

	err := svc.ChangePassword(context.Background(), 1, user.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), repo.updatedPasswordID)
	assert.NotEqual(t, originalHash, u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(u.PasswordHash), []byte("new-password")))
}

func TestChangePassword_RejectsShortNewPassword(t *testing.T) {
	repo := newMockUserRepository()
	seedUser(t, repo, "old-password")
	svc := NewUserService(repo, testJWTManager())

	err := svc.ChangePassword(context.Background(), 1, user.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "short",
	})
	assert.Error(t, err)
	assert.Empty(t, repo.updatedPasswordHash)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	repo := newMockUserRepository()
	seedUser(t, repo, "correct-horse")
	manager := testJWTManager()
	svc := NewUserService(repo, manager)

	refresh, err := manager.GenerateRefreshToken(1)
	require.NoError(t, err)

	resp, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	repo := newMockUserRepository()
	seedUser(t, repo, "correct-horse")
	manager := testJWTManager()
	svc := NewUserService(repo, manager)

	access, err := manager.GenerateAccessToken(1, "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUpdate_RejectsTakenUsername(t *testing.T) {
	repo := newMockUserRepository()
	seedUser(t, repo, "pw-one")
	repo.add(&user.User{ID: 2, Username: "bob", Email: "bob@example.com"})
	svc := NewUserService(repo, testJWTManager())

	_, err := svc.Update(context.Background(), 2, user.UpdateUserRequest{
		Username: "alice",
		Email:    "bob@example.com",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}
