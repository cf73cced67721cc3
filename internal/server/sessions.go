package server

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/KaramelBytes/pitwall-cli/internal/sheet"
)

const sessionCookie = "pitwall_session"

// sessionStore keeps one uploaded viewer table per browser session. When
// full, the least recently written session is evicted.
type sessionStore struct {
	mu     sync.Mutex
	max    int
	tables map[string]*sheet.Table
	order  []string // oldest first
}

func newSessionStore(limit int) *sessionStore {
	if limit <= 0 {
		limit = 1
	}
	return &sessionStore{max: limit, tables: make(map[string]*sheet.Table)}
}

func (s *sessionStore) get(id string) (*sheet.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[id]
	return t, ok
}

func (s *sessionStore) put(id string, t *sheet.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[id]; ok {
		s.remove(id)
	}
	for len(s.order) >= s.max {
		delete(s.tables, s.order[0])
		s.order = s.order[1:]
	}
	s.tables[id] = t
	s.order = append(s.order, id)
}

func (s *sessionStore) remove(id string) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	delete(s.tables, id)
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tables)
}

// sessionID returns the caller's session id, or "" when none is set.
func sessionID(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

// ensureSession returns the caller's session id, issuing a cookie if needed.
func ensureSession(w http.ResponseWriter, r *http.Request) string {
	if id := sessionID(r); id != "" {
		return id
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
