package review

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"recruit-backend/internal/backend"
	"recruit-backend/internal/evaluation"
)

// LoadFunc fetches the view of one application.
type LoadFunc func(ctx context.Context, id string) (ApplicationView, error)

// Session is the state of one reviewer screen: the selected tab, the selected
// application and the last view that was loaded for it.
type Session struct {
	id string

	mu        sync.Mutex
	tab       evaluation.Category
	selected  string
	loading   bool
	view      *ApplicationView
	errMsg    string
	updatedAt time.Time

	latest backend.Latest[string, ApplicationView]
}

// SessionState is a snapshot of a Session.
type SessionState struct {
	ID                    string              `json:"id"`
	Tab                   evaluation.Category `json:"tab"`
	SelectedApplicationID string              `json:"selected_application_id,omitempty"`
	Loading               bool                `json:"loading"`
	View                  *ApplicationView    `json:"view,omitempty"`
	Error                 string              `json:"error,omitempty"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// NewSession returns a session on the in-progress tab.
func NewSession(id string) *Session {
	return &Session{id: id, tab: evaluation.CategoryInProgress, updatedAt: time.Now().UTC()}
}

func (s *Session) ID() string {
	return s.id
}

// State returns a snapshot of the session.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionState{
		ID:                    s.id,
		Tab:                   s.tab,
		SelectedApplicationID: s.selected,
		Loading:               s.loading,
		View:                  s.view,
		Error:                 s.errMsg,
		UpdatedAt:             s.updatedAt,
	}
}

// SetTab switches the board tab.
func (s *Session) SetTab(tab evaluation.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
	s.touch()
}

// Select makes id the selected application and loads its view. A load that
// is overtaken by a later Select leaves the session untouched and returns
// backend.ErrSuperseded. A failed load records the user message and keeps the
// previous view. An empty id clears the selection.
func (s *Session) Select(ctx context.Context, id string, load LoadFunc) error {
	s.mu.Lock()
	if id == "" {
		s.latest.Cancel()
		s.selected = ""
		s.loading = false
		s.view = nil
		s.errMsg = ""
		s.touch()
		s.mu.Unlock()
		return nil
	}
	// The selection and the Latest registration change together, so the last
	// caller to take the lock owns both.
	s.selected = id
	s.loading = true
	s.errMsg = ""
	s.touch()
	call := s.latest.Start(ctx, id)
	s.mu.Unlock()

	loaded, loadErr := load(call.Context(), id)

	s.mu.Lock()
	defer s.mu.Unlock()
	view, err := call.Finish(loaded, loadErr)
	if errors.Is(err, backend.ErrSuperseded) {
		return err
	}
	s.loading = false
	s.touch()
	if err != nil {
		s.errMsg = backend.UserMessage(err)
		return err
	}
	s.view = &view
	return nil
}

// Refresh reloads the selected application, if any.
func (s *Session) Refresh(ctx context.Context, load LoadFunc) error {
	s.mu.Lock()
	id := s.selected
	s.mu.Unlock()
	if id == "" {
		return nil
	}
	return s.Select(ctx, id, load)
}

func (s *Session) touch() {
	s.updatedAt = time.Now().UTC()
}

const (
	defaultSessionTTL  = 2 * time.Hour
	defaultMaxSessions = 10000
)

// SessionStore keeps review sessions in memory. Sessions unused for IdleTTL
// are dropped, and when MaxSessions are live the least recently used one
// makes room for a new session.
type SessionStore struct {
	IdleTTL     time.Duration
	MaxSessions int
	Now         func() time.Time

	mu       sync.Mutex
	data     map[string]*Session
	lastUsed map[string]time.Time
}

// NewSessionStore constructs an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		IdleTTL:     defaultSessionTTL,
		MaxSessions: defaultMaxSessions,
		data:        make(map[string]*Session),
		lastUsed:    make(map[string]time.Time),
	}
}

// Create starts a new session.
func (st *SessionStore) Create() *Session {
	sess := NewSession(uuid.NewString())
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	st.evictLocked(now)
	st.data[sess.id] = sess
	st.lastUsed[sess.id] = now
	return sess
}

func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.data[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := st.now()
	if st.expired(id, now) {
		st.removeLocked(id)
		return nil, ErrSessionNotFound
	}
	st.lastUsed[id] = now
	return sess, nil
}

func (st *SessionStore) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.data[id]; !ok {
		return ErrSessionNotFound
	}
	st.removeLocked(id)
	return nil
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.data)
}

func (st *SessionStore) evictLocked(now time.Time) {
	for id := range st.data {
		if st.expired(id, now) {
			st.removeLocked(id)
		}
	}
	if st.MaxSessions <= 0 {
		return
	}
	for len(st.data) >= st.MaxSessions {
		var oldest string
		var oldestAt time.Time
		for id, at := range st.lastUsed {
			if oldest == "" || at.Before(oldestAt) {
				oldest, oldestAt = id, at
			}
		}
		st.removeLocked(oldest)
	}
}

func (st *SessionStore) expired(id string, now time.Time) bool {
	return st.IdleTTL > 0 && now.Sub(st.lastUsed[id]) >= st.IdleTTL
}

func (st *SessionStore) removeLocked(id string) {
	if sess, ok := st.data[id]; ok {
		sess.latest.Cancel()
	}
	delete(st.data, id)
	delete(st.lastUsed, id)
}

func (st *SessionStore) now() time.Time {
	if st.Now != nil {
		return st.Now()
	}
	return time.Now()
}
