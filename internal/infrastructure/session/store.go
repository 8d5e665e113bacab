// Package session holds the operator sessions of the client. A session
// owns the bearer token, the authenticated backend client and the live
// checkout state; nothing here is persisted, so a restart loses carts.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"pdv-client/internal/checkout"
	"pdv-client/internal/domain/entity"
	"pdv-client/internal/infrastructure/backend"
	"pdv-client/pkg/money"
)

// Session is one logged-in operator. The mutex serializes cart mutations:
// the checkout flow is event-driven and every mutation runs to completion
// before the next is admitted, mirroring the one-at-a-time barcode
// processing of the PDV screen.
type Session struct {
	ID       string
	Token    string
	User     entity.User
	API      *backend.Client
	Checkout *checkout.Session

	// Payment-dialog input state: the tendered-amount currency field and
	// the discount percentage field, edited keystroke by keystroke.
	Tender   *money.CurrencyField
	Discount *money.NumberField

	mu       sync.Mutex
	lastSeen time.Time
}

// Lock serializes access to the checkout state.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the checkout state.
func (s *Session) Unlock() { s.mu.Unlock() }

// Store is the in-memory session registry with TTL-based eviction.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	locale   money.Locale
}

// NewStore creates a store whose janitor evicts sessions idle longer than
// ttl.
func NewStore(ttl time.Duration, locale money.Locale) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		locale:   locale,
	}
	go s.cleanupLoop(ttl / 4)
	return s
}

// Create registers a new session for a logged-in operator and returns it.
func (s *Store) Create(token string, user entity.User, api *backend.Client) *Session {
	sess := &Session{
		ID:       uuid.New().String(),
		Token:    token,
		User:     user,
		API:      api,
		Checkout: checkout.NewSession(),
		Tender:   money.NewCurrencyField(s.locale, 0),
		Discount: money.NewNumberField(0, 100, 0),
		lastSeen: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session if it exists, refreshing its idle timer.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	sess.mu.Lock()
	sess.lastSeen = time.Now()
	sess.mu.Unlock()
	return sess, true
}

// Delete removes a session (logout or forced expiry).
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) cleanupLoop(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-s.ttl)
		s.mu.Lock()
		for id, sess := range s.sessions {
			sess.mu.Lock()
			stale := sess.lastSeen.Before(cutoff)
			sess.mu.Unlock()
			if stale {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}
