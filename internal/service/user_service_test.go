package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duongle/go-shop-backend/internal/auth"
	"github.com/duongle/go-shop-backend/internal/entity"
	"github.com/duongle/go-shop-backend/internal/repository"
)

type mockUserRepo struct {
	user       *entity.User
	byEmailErr error
	createErr  error

	createdHash string
}

func (m *mockUserRepo) Create(_ context.Context, _, _, passwordHash string) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.createdHash = passwordHash
	return 1, nil
}

func (m *mockUserRepo) ByEmail(_ context.Context, _ string) (*entity.User, error) {
	if m.byEmailErr != nil {
		return nil, m.byEmailErr
	}
	return m.user, nil
}

func newTestUserService(repo *mockUserRepo) (*UserService, *auth.PasswordHasher, *auth.TokenManager) {
	hasher := auth.NewPasswordHasher(4) // min cost, tests only
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(repo, hasher, tokens), hasher, tokens
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := &mockUserRepo{byEmailErr: repository.ErrNotFound}
	svc, hasher, _ := newTestUserService(repo)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", repo.createdHash)
	assert.True(t, hasher.Compare(repo.createdHash, "s3cret"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{user: &entity.User{ID: 1, Email: "alice@example.com"}}
	svc, _, _ := newTestUserService(repo)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	repo := &mockUserRepo{user: &entity.User{ID: 7, Email: "alice@example.com", PasswordHash: hash}}
	svc, _, tokens := newTestUserService(repo)

	token, err := svc.Login(context.Background(), "alice@example.com", "s3cret")

	require.NoError(t, err)
	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	repo := &mockUserRepo{user: &entity.User{ID: 7, PasswordHash: hash}}
	svc, _, _ := newTestUserService(repo)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	repo := &mockUserRepo{byEmailErr: repository.ErrNotFound}
	svc, _, _ := newTestUserService(repo)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
