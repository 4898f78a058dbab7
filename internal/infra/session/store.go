// Package session holds the single owned console session. The original
// design read the token cookie ad hoc from every component; here the store
// is the only reader and everything else gets it injected.
package session

import (
	"log/slog"
	"sync"
	"time"

	"console/internal/domain/service"
)

type store struct {
	mu      sync.Mutex
	reader  service.TokenReader
	logger  *slog.Logger
	current service.Session
	subs    map[int]chan service.Session
	nextSub int
}

// NewStore creates a session store in the Unknown state.
func NewStore(reader service.TokenReader, logger *slog.Logger) service.SessionStore {
	return &store{
		reader:  reader,
		logger:  logger,
		current: service.Session{State: service.SessionUnknown},
		subs:    make(map[int]chan service.Session),
	}
}

// Read returns the current session. A held token whose claims have expired
// since the last update demotes the session to anonymous first.
func (s *store) Read() service.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.State == service.SessionAuthenticated &&
		s.current.Claims != nil &&
		s.current.Claims.ExpiresAt.Before(time.Now()) {
		s.logger.Info("session expired, clearing stored token")
		s.setLocked(service.Session{State: service.SessionAnonymous})
	}

	return s.current
}

// Update replaces the held token. Invalid tokens are discarded rather than
// stored: decoding failure is an expected outcome, not an error path.
func (s *store) Update(token string) service.Session {
	claims, err := s.reader.Read(token)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Debug("discarding unusable session token")
		s.setLocked(service.Session{State: service.SessionAnonymous})

		return s.current
	}

	s.setLocked(service.Session{
		State:  service.SessionAuthenticated,
		Token:  token,
		Claims: claims,
	})

	return s.current
}

// Clear drops the session back to anonymous.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setLocked(service.Session{State: service.SessionAnonymous})
}

// Token returns the held bearer token, or "" when anonymous.
func (s *store) Token() string {
	return s.Read().Token
}

// Subscribe registers a listener for session changes.
func (s *store) Subscribe() (<-chan service.Session, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan service.Session, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// setLocked replaces the session and fans the change out to subscribers.
// A slow subscriber keeps only the most recent change.
func (s *store) setLocked(next service.Session) {
	s.current = next
	for _, ch := range s.subs {
		select {
		case ch <- next:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- next
		}
	}
}
