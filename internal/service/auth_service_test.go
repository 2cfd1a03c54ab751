package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/entity"
	"onemore-backend/internal/pkg/apperror"
	"onemore-backend/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) IAuthService {
	t.Helper()
	return NewAuthService(newTestStore(t), testConfig(), logger.NewNop())
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	res, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Ana", Email: "Ana@Example.COM ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", res.User.Email)
	assert.Equal(t, "Ana", res.User.Name)
	assert.NotEmpty(t, res.Token)

	identity, err := svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.Id, identity.User.Id)
	assert.Equal(t, res.Token, identity.Token)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	cases := []struct {
		name    string
		req     dto.RegisterRequest
		message string
	}{
		{"missing fields", dto.RegisterRequest{Name: " ", Email: "", Password: ""}, "Name, email, and password are required."},
		{"bad email", dto.RegisterRequest{Name: "Ana", Email: "not-an-email", Password: "secret1"}, "Please provide a valid email."},
		{"short password", dto.RegisterRequest{Name: "Ana", Email: "a@b.co", Password: "12345"}, "Password must be at least 6 characters."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tc.req)
			require.Error(t, err)
			appErr := apperror.From(err)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Equal(t, tc.message, appErr.Message)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	// Same address in a different case is still a duplicate.
	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "Other", Email: "ANA@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "EMAIL_EXISTS", apperror.From(err).Code)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	reg, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.Id, res.User.Id)
	// Every login issues its own token.
	assert.NotEqual(t, reg.Token, res.Token)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "wrong-pass"})
	require.Error(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", apperror.From(err).Code)

	// Unknown users fail the same way as wrong passwords.
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", apperror.From(err).Code)
}

func TestLoginThrottleAfterRepeatedFailures(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	for i := 0; i < maxLoginFailures; i++ {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: fmt.Sprintf("wrong-%d", i)})
		require.Error(t, err)
		assert.Equal(t, "INVALID_CREDENTIALS", apperror.From(err).Code)
	}

	// Even the correct password is refused while locked out.
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "TOO_MANY_ATTEMPTS", apperror.From(err).Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	res, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	out, err := svc.Logout(ctx, res.Token)
	require.NoError(t, err)
	assert.True(t, out.LoggedOut)

	_, err = svc.Authenticate(ctx, res.Token)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperror.From(err).Code)

	// Logout is idempotent.
	out, err = svc.Logout(ctx, res.Token)
	require.NoError(t, err)
	assert.True(t, out.LoggedOut)
}

func TestAuthenticateRemovesExpiredSession(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAuthService(store, testConfig(), logger.NewNop())

	err := store.Update(func(doc *entity.Document) (bool, error) {
		doc.Users = append(doc.Users, entity.User{Id: "u1", Email: "ana@example.com", Name: "Ana"})
		doc.Sessions["stale-token"] = entity.Session{UserId: "u1", ExpiresAt: time.Now().Add(-time.Minute)}
		return true, nil
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "stale-token")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperror.From(err).Code)

	// The expired session is gone after the failed lookup.
	store.View(func(doc *entity.Document) {
		_, ok := doc.Sessions["stale-token"]
		assert.False(t, ok)
	})
}

func TestAuthenticateUnknownOrEmptyToken(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Authenticate(ctx, "")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperror.From(err).Code)

	_, err = svc.Authenticate(ctx, "never-issued")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperror.From(err).Code)
}
