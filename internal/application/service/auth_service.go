package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pdv-client/internal/infrastructure/backend"
	"pdv-client/internal/infrastructure/session"
	"pdv-client/pkg/apperror"
)

// AuthService exchanges credentials for backend bearer tokens and manages
// operator sessions. The only state that outlives a request is the session
// entry holding the token.
type AuthService struct {
	api      *backend.Client // unauthenticated, login only
	sessions *session.Store
}

// NewAuthService creates a new auth service.
func NewAuthService(api *backend.Client, sessions *session.Store) *AuthService {
	return &AuthService{api: api, sessions: sessions}
}

// Login forwards the credentials to the backend and, on success, opens a
// session bound to an authenticated client.
func (s *AuthService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	if email == "" || password == "" {
		return nil, apperror.NewBadRequestError("Email and password are required")
	}

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	authed := s.api.WithToken(res.Token)
	return s.sessions.Create(res.Token, res.User, authed), nil
}

// Resolve returns the live session for the cookie value. An expired bearer
// token forces a logout instead of letting a doomed request reach the
// backend.
func (s *AuthService) Resolve(sessionID string) (*session.Session, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, apperror.ErrSessionExpired
	}

	if tokenExpired(sess.Token) {
		s.sessions.Delete(sess.ID)
		return nil, apperror.ErrSessionExpired
	}
	return sess, nil
}

// Logout drops the session. The cart it owned is discarded with it.
func (s *AuthService) Logout(sessionID string) {
	s.sessions.Delete(sessionID)
}

// tokenExpired inspects the bearer token's exp claim without verifying the
// signature: verification is the backend's job, the client only wants to
// know whether sending the token is pointless.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// opaque tokens are passed through untouched
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
