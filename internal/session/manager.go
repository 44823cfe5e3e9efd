package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crmconsole/internal/model"
)

// ExpiredNotice is shown on login page after backend rejected credentials of active session
const ExpiredNotice = "Your session has expired, please sign in again"

// Manager loads, establishes and clears sessions. It also authenticates backend requests made
// on behalf of the session found in request context.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// NewManager builds Manager, sessions expire after ttl of inactivity
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// Load returns session with provided id or new anonymous session if there is no such session.
// Session holding expired bearer token is downgraded to anonymous.
func (m *Manager) Load(ctx context.Context, id string) (*Session, error) {
	if id != "" {
		s, err := m.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		if s != nil && m.now().Before(s.ExpiresAt) {
			if tokenExpired(s.Token, m.now()) {
				s.clear(ExpiredNotice)
				if err := m.Save(ctx, s); err != nil && !errors.Is(err, ErrStale) {
					return nil, err
				}
			}
			return s, nil
		}
	}

	s := &Session{ID: uuid.NewString()}
	s.ExpiresAt = m.now().Add(m.ttl)
	return s, nil
}

// TTL is inactivity period after which session expires
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Save persists changes of session and extends its lifetime. Untouched anonymous session is not
// stored at all. ErrStale is returned when another request changed the session after s was loaded,
// so a stale copy never overrides sign out.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	s.mu.Lock()
	if !s.dirty && !s.stored {
		s.mu.Unlock()
		return nil
	}

	base, dirty, expiresAt := s.Revision, s.dirty, s.ExpiresAt
	if dirty {
		s.Revision++
	}
	s.ExpiresAt = m.now().Add(m.ttl)
	s.mu.Unlock()

	if err := m.store.Save(ctx, s, base, m.ttl); err != nil {
		s.mu.Lock()
		s.Revision, s.ExpiresAt = base, expiresAt
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.dirty = false
	s.stored = true
	s.mu.Unlock()
	return nil
}

// Authorize sets bearer token used by subsequent backend calls of the request, it is persisted with the session
func (m *Manager) Authorize(ctx context.Context, token string) {
	s := FromContext(ctx)
	if s == nil || token == "" {
		return
	}

	s.mu.Lock()
	s.Token = token
	s.dirty = true
	s.mu.Unlock()
}

// Establish signs user in within session of ctx, empty token keeps relying on backend cookies.
// Session gets new id, the previous one is dropped from store.
func (m *Manager) Establish(ctx context.Context, token string, u model.User) error {
	s := FromContext(ctx)
	if s == nil {
		return fmt.Errorf("no session in context")
	}

	s.mu.Lock()
	previousID, wasStored := s.ID, s.stored
	s.ID = uuid.NewString()
	s.Revision = 0
	s.stored = false
	if token != "" {
		s.Token = token
	}
	s.User = &u
	s.Notice = ""
	s.dirty = true
	s.mu.Unlock()

	if err := m.Save(ctx, s); err != nil {
		return err
	}

	if wasStored {
		if err := m.store.Delete(ctx, previousID); err != nil {
			logrus.WithField("session", previousID).Warnf("failed to drop previous session - %v", err)
		}
	}
	return nil
}

// Clear signs user out of session of ctx, notice is shown on the next login page
func (m *Manager) Clear(ctx context.Context, notice string) error {
	s := FromContext(ctx)
	if s == nil {
		return nil
	}
	s.clear(notice)
	err := m.Save(ctx, s)
	if !errors.Is(err, ErrStale) {
		return err
	}

	// sign out wins over changes made meanwhile, unless session was replaced by a new sign in
	current, err := m.store.Get(ctx, s.ID)
	if err != nil || current == nil {
		return err
	}
	s.mu.Lock()
	s.Revision = current.Revision
	s.stored = true
	s.dirty = true
	s.mu.Unlock()
	return m.Save(ctx, s)
}

// TakeNotice returns and drops one-off notice of session
func (m *Manager) TakeNotice(ctx context.Context) string {
	s := FromContext(ctx)
	if s == nil {
		return ""
	}

	s.mu.Lock()
	notice := s.Notice
	if notice != "" {
		s.Notice = ""
		s.dirty = true
	}
	s.mu.Unlock()

	if notice != "" {
		if err := m.Save(ctx, s); err != nil {
			logrus.Errorf("failed to save session after notice was shown - %v", err)
		}
	}
	return notice
}

// Attach implements api.Authenticator
func (m *Manager) Attach(ctx context.Context, req *http.Request) {
	s := FromContext(ctx)
	if s == nil {
		return
	}

	token, cookies := s.credentials()
	if token != "" && !tokenExpired(token, m.now()) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for name, value := range cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

// Remember implements api.Authenticator
func (m *Manager) Remember(ctx context.Context, res *http.Response) {
	s := FromContext(ctx)
	if s == nil || len(res.Cookies()) == 0 {
		return
	}

	s.mu.Lock()
	if s.Cookies == nil {
		s.Cookies = make(map[string]string)
	}
	for _, c := range res.Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(s.Cookies, c.Name)
			continue
		}
		s.Cookies[c.Name] = c.Value
	}
	s.dirty = true
	s.mu.Unlock()

	if err := m.Save(ctx, s); err != nil {
		logrus.Errorf("failed to save backend cookies - %v", err)
	}
}

// Unauthorized implements api.Authenticator
func (m *Manager) Unauthorized(ctx context.Context) {
	s := FromContext(ctx)
	if s == nil {
		return
	}

	notice := ""
	if s.Authenticated() {
		notice = ExpiredNotice
	}
	if err := m.Clear(ctx, notice); err != nil {
		logrus.Errorf("failed to clear session - %v", err)
	}
}
