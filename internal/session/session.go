// Package session holds state of a signed in console operator.
//
// Session is the only mutable state shared across views. It is loaded per browser request by
// middleware, carried in the request context and written only through Manager: by login, logout
// and by the API client when backend rejects credentials.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/umalmyha/crmconsole/internal/model"
)

// Session is console session bound to browser cookie
type Session struct {
	mu        sync.RWMutex
	ID        string            `msgpack:"id"`
	User      *model.User       `msgpack:"user"`
	Token     string            `msgpack:"token"`
	Cookies   map[string]string `msgpack:"cookies"`
	Notice    string            `msgpack:"notice"`
	ExpiresAt time.Time         `msgpack:"expiresAt"`
	// Revision grows with every change written to store, copies with older revision can't be saved
	Revision int64 `msgpack:"revision"`

	dirty  bool
	stored bool
}

// CurrentUser returns signed in user, false if session is anonymous
func (s *Session) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.User == nil {
		return model.User{}, false
	}
	return *s.User, true
}

// Authenticated reports whether user is signed in
func (s *Session) Authenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// Owner identifies session owner in shared caches, anonymous sessions are owned by session id
func (s *Session) Owner() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.User != nil && s.User.ID != "" {
		return s.User.ID
	}
	if s.User != nil && s.User.Email != "" {
		return s.User.Email
	}
	return s.ID
}

// HasCredentials reports whether session carries bearer token or backend cookies
func (s *Session) HasCredentials() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Token != "" || len(s.Cookies) > 0
}

// Stored reports whether session is kept in store or is going to be by the end of request.
// Untouched anonymous sessions are never stored.
func (s *Session) Stored() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stored || s.dirty
}

func (s *Session) credentials() (string, map[string]string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cookies := make(map[string]string, len(s.Cookies))
	for k, v := range s.Cookies {
		cookies[k] = v
	}
	return s.Token, cookies
}

func (s *Session) clear(notice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.User = nil
	s.Token = ""
	s.Cookies = nil
	s.Notice = notice
	s.dirty = true
}

type sessionKey struct{}

// WithSession puts session into context
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns session of current request or nil
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionKey{}).(*Session); ok {
		return s
	}
	return nil
}
