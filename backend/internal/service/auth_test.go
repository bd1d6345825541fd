package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/itchan-dev/signup/shared/domain"
	internal_errors "github.com/itchan-dev/signup/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- Mocks ---

type MockAuthStorage struct {
	SaveUserFunc func(ctx context.Context, user domain.User) error
}

func (m *MockAuthStorage) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFunc != nil {
		return m.SaveUserFunc(ctx, user)
	}
	return nil
}

func TestRegister(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))

	t.Run("stores normalized email and bcrypt hash", func(t *testing.T) {
		var saved domain.User
		storage := &MockAuthStorage{SaveUserFunc: func(ctx context.Context, user domain.User) error {
			saved = user
			return nil
		}}
		auth := NewAuth(storage, bcrypt.MinCost)
		auth.now = func() time.Time { return fixed }

		user, err := auth.Register(context.Background(), domain.Credentials{Email: "User@Example.COM", Password: "s3cret"})

		require.NoError(t, err)
		assert.Equal(t, saved, user)
		assert.Equal(t, "user@example.com", saved.Email)
		assert.NotEmpty(t, saved.Id)
		assert.Equal(t, fixed.UTC(), saved.CreatedAt)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PassHash), []byte("s3cret")))
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		storage := &MockAuthStorage{SaveUserFunc: func(ctx context.Context, user domain.User) error {
			return fmt.Errorf("insert user: %w", domain.ErrEmailTaken)
		}}
		auth := NewAuth(storage, bcrypt.MinCost)

		_, err := auth.Register(context.Background(), domain.Credentials{Email: "a@b.c", Password: "pw"})

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
		assert.Equal(t, MsgEmailTaken, statusErr.Message)
	})

	t.Run("storage failure passes through", func(t *testing.T) {
		boom := errors.New("connection reset")
		storage := &MockAuthStorage{SaveUserFunc: func(ctx context.Context, user domain.User) error { return boom }}
		auth := NewAuth(storage, bcrypt.MinCost)

		_, err := auth.Register(context.Background(), domain.Credentials{Email: "a@b.c", Password: "pw"})

		assert.ErrorIs(t, err, boom)
	})

	t.Run("password over bcrypt limit is a bad request", func(t *testing.T) {
		auth := NewAuth(&MockAuthStorage{}, bcrypt.MinCost)
		_, err := auth.Register(context.Background(), domain.Credentials{Email: "a@b.c", Password: strings.Repeat("x", 73)})

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	})

	t.Run("unique ids", func(t *testing.T) {
		auth := NewAuth(&MockAuthStorage{}, bcrypt.MinCost)
		u1, err := auth.Register(context.Background(), domain.Credentials{Email: "a@b.c", Password: "pw"})
		require.NoError(t, err)
		u2, err := auth.Register(context.Background(), domain.Credentials{Email: "b@b.c", Password: "pw"})
		require.NoError(t, err)
		assert.NotEqual(t, u1.Id, u2.Id)
	})
}
