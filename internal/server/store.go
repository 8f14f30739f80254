package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/wizard"
)

// session pairs a wizard run with the bookkeeping the HTTP layer needs on
// top of it. All access goes through mu; the wizard session itself is not
// safe for concurrent use.
type session struct {
	mu         sync.Mutex
	wiz        *wizard.Session
	lookupBusy bool
}

// sessionStore keeps all live wizard runs in memory. Sessions are discarded
// with the process; nothing is persisted.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

func (s *sessionStore) create() (string, *session) {
	id := uuid.NewString()
	sess := &session{wiz: wizard.NewSession()}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return id, sess
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *sessionStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}
