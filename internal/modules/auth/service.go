package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	jwtsvc "taskforce/internal/pkg/jwt"
)

// SessionStore records the persisted admin-session flag.
type SessionStore interface {
	IsAdmin() bool
	SetAdmin(isAdmin bool)
}

// Service checks the single admin credential and manages the session flag.
// There are no accounts: one operator, one password.
type Service struct {
	sessions     SessionStore
	jwt          *jwtsvc.Service
	password     string
	passwordHash string
}

// NewService prefers passwordHash (bcrypt) when both are supplied; the plain
// password is the dev fallback.
func NewService(sessions SessionStore, jwt *jwtsvc.Service, password, passwordHash string) *Service {
	return &Service{
		sessions:     sessions,
		jwt:          jwt,
		password:     password,
		passwordHash: passwordHash,
	}
}

// Login verifies the password. On success it records the session flag and
// returns a bearer token; on mismatch it leaves all state unchanged.
func (s *Service) Login(password string) (string, error) {
	if !s.checkPassword(password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAdminToken()
	if err != nil {
		return "", err
	}

	s.sessions.SetAdmin(true)
	return token, nil
}

func (s *Service) checkPassword(password string) bool {
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
}

func (s *Service) Logout() {
	s.sessions.SetAdmin(false)
}

func (s *Service) IsAdmin() bool {
	return s.sessions.IsAdmin()
}
