package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps session ids to live Sessions and serializes access per
// key: concurrent requests for different sessions run in parallel, while
// requests for the same session queue on its lock.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	sess *Session
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*entry)}
}

// Acquire returns the session for id, creating one (with a fresh UUID
// when id is empty) on first use. The session's lock is held on return;
// the caller must call release when done mutating it.
func (r *Registry) Acquire(id string) (s *Session, release func()) {
	r.mu.Lock()
	if id == "" {
		id = uuid.NewString()
	}
	e, ok := r.sessions[id]
	if !ok {
		e = &entry{sess: &Session{ID: id, Phase: PhaseIdle}}
		r.sessions[id] = e
	}
	r.mu.Unlock()

	e.mu.Lock()
	return e.sess, e.mu.Unlock
}

// Lookup returns the session for id without creating one. The session's
// lock is held on return when found.
func (r *Registry) Lookup(id string) (s *Session, release func(), ok bool) {
	r.mu.Lock()
	e, found := r.sessions[id]
	r.mu.Unlock()
	if !found {
		return nil, nil, false
	}
	e.mu.Lock()
	return e.sess, e.mu.Unlock, true
}

// Len reports how many sessions are live.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
