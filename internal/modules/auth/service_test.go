package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtsvc "taskforce/internal/pkg/jwt"
)

type fakeSessions struct {
	isAdmin bool
}

func (f *fakeSessions) IsAdmin() bool         { return f.isAdmin }
func (f *fakeSessions) SetAdmin(isAdmin bool) { f.isAdmin = isAdmin }

func newTestService(password, hash string) (*Service, *fakeSessions) {
	sessions := &fakeSessions{}
	j := jwtsvc.New("test-secret", time.Hour)
	return NewService(sessions, j, password, hash), sessions
}

func TestLoginWrongPasswordLeavesStateUnchanged(t *testing.T) {
	svc, sessions := newTestService("1111", "")

	_, err := svc.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, sessions.isAdmin)

	// Prior state is preserved either way.
	sessions.isAdmin = true
	_, err = svc.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, sessions.isAdmin)
}

func TestLoginCorrectPassword(t *testing.T) {
	svc, sessions := newTestService("1111", "")

	token, err := svc.Login("1111")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, sessions.isAdmin)

	// The token must validate against the same JWT service.
	j := jwtsvc.New("test-secret", time.Hour)
	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginPrefersBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, sessions := newTestService("1111", string(hash))

	// The plain fallback password must not work once a hash is configured.
	_, err = svc.Login("1111")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("s3cret")
	require.NoError(t, err)
	assert.True(t, sessions.isAdmin)
}

func TestLogout(t *testing.T) {
	svc, sessions := newTestService("1111", "")
	sessions.isAdmin = true

	svc.Logout()
	assert.False(t, sessions.isAdmin)
	assert.False(t, svc.IsAdmin())
}
