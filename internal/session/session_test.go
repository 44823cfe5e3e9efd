package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/crmconsole/internal/cache"
	"github.com/umalmyha/crmconsole/internal/model"
)

func signedToken(expiresAt time.Time) string {
	claims := jwt.RegisteredClaims{Subject: "u1", ExpiresAt: jwt.NewNumericDate(expiresAt)}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		panic(err)
	}
	return signed
}

type sessionTestSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	manager *Manager
	user    model.User
}

func (s *sessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s.manager = NewManager(NewStore(cache.NewMemoryStore(8<<20)), time.Hour)
	s.manager.now = func() time.Time { return s.now }
	s.user = model.User{ID: "u1", Name: "Jane", Email: "jane@somemail.com"}
}

func (s *sessionTestSuite) establish(token string) (context.Context, *Session) {
	sess, err := s.manager.Load(s.ctx, "")
	s.Require().NoError(err)
	ctx := WithSession(s.ctx, sess)
	s.Require().NoError(s.manager.Establish(ctx, token, s.user))
	return ctx, sess
}

func (s *sessionTestSuite) TestLoadUnknownCreatesAnonymousSession() {
	sess, err := s.manager.Load(s.ctx, "unknown")
	s.Require().NoError(err)
	s.Require().NotEmpty(sess.ID)
	s.Require().NotEqual("unknown", sess.ID)
	s.Require().False(sess.Authenticated())
}

func (s *sessionTestSuite) TestEstablishedSessionSurvivesReload() {
	_, sess := s.establish("opaque-token")

	s.T().Log("session is restored by id with user and token")
	{
		loaded, err := s.manager.Load(s.ctx, sess.ID)
		s.Require().NoError(err)
		u, ok := loaded.CurrentUser()
		s.Require().True(ok)
		s.Require().Equal(s.user, u)
		s.Require().Equal("opaque-token", loaded.Token)
		s.Require().Equal("u1", loaded.Owner())
	}

	s.T().Log("session expires after inactivity")
	{
		s.now = s.now.Add(2 * time.Hour)
		loaded, err := s.manager.Load(s.ctx, sess.ID)
		s.Require().NoError(err)
		s.Require().False(loaded.Authenticated())
		s.Require().NotEqual(sess.ID, loaded.ID)
	}
}

func (s *sessionTestSuite) TestExpiredTokenIsTreatedAsAbsent() {
	_, sess := s.establish(signedToken(s.now.Add(10 * time.Minute)))

	s.now = s.now.Add(15 * time.Minute)
	loaded, err := s.manager.Load(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Require().False(loaded.Authenticated())
	s.Require().Empty(loaded.Token)
	s.Require().Equal(ExpiredNotice, s.manager.TakeNotice(WithSession(s.ctx, loaded)))
}

func (s *sessionTestSuite) TestUnauthorizedClearsSession() {
	ctx, sess := s.establish("opaque-token")

	s.manager.Unauthorized(ctx)

	s.T().Log("401 signs user out and leaves notice for login page")
	{
		s.Require().False(sess.Authenticated())
		loaded, err := s.manager.Load(s.ctx, sess.ID)
		s.Require().NoError(err)
		s.Require().False(loaded.Authenticated())
		s.Require().Equal(ExpiredNotice, s.manager.TakeNotice(WithSession(s.ctx, loaded)))
		s.Require().Empty(s.manager.TakeNotice(WithSession(s.ctx, loaded)), "notice is shown once")
	}
}

func (s *sessionTestSuite) TestCredentialsAreAttachedAndCookiesRemembered() {
	ctx, sess := s.establish("opaque-token")

	rec := httptest.NewRecorder()
	http.SetCookie(rec, &http.Cookie{Name: "connect.sid", Value: "backend-session"})
	s.manager.Remember(ctx, rec.Result())

	req := httptest.NewRequest(http.MethodGet, "http://backend/api/customers", nil)
	s.manager.Attach(ctx, req)

	s.Require().Equal("Bearer opaque-token", req.Header.Get("Authorization"))
	c, err := req.Cookie("connect.sid")
	s.Require().NoError(err)
	s.Require().Equal("backend-session", c.Value)

	s.T().Log("cookie deleted by backend is forgotten")
	{
		rec := httptest.NewRecorder()
		http.SetCookie(rec, &http.Cookie{Name: "connect.sid", MaxAge: -1})
		s.manager.Remember(ctx, rec.Result())
		s.Require().Empty(sess.Cookies)
	}
}

func (s *sessionTestSuite) TestExpiredTokenIsNotAttached() {
	ctx, _ := s.establish(signedToken(s.now.Add(time.Minute)))
	s.now = s.now.Add(2 * time.Minute)

	req := httptest.NewRequest(http.MethodGet, "http://backend/api/customers", nil)
	s.manager.Attach(ctx, req)
	s.Require().Empty(req.Header.Get("Authorization"))
}

func (s *sessionTestSuite) TestStaleCopyDoesNotUndoLogout() {
	_, sess := s.establish("opaque-token")

	slow, err := s.manager.Load(s.ctx, sess.ID)
	s.Require().NoError(err)
	logout, err := s.manager.Load(s.ctx, sess.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.manager.Clear(WithSession(s.ctx, logout), ""))

	s.T().Log("request which loaded session before logout can't write it back")
	{
		s.Require().ErrorIs(s.manager.Save(s.ctx, slow), ErrStale)

		s.manager.Remember(WithSession(s.ctx, slow), cookieResponse("connect.sid", "stale"))
		s.Require().ErrorIs(s.manager.Save(s.ctx, slow), ErrStale)

		loaded, err := s.manager.Load(s.ctx, sess.ID)
		s.Require().NoError(err)
		s.Require().False(loaded.Authenticated())
		s.Require().False(loaded.HasCredentials())
	}

	s.T().Log("up to date copy keeps being saved")
	{
		s.Require().NoError(s.manager.Save(s.ctx, logout))
	}
}

func (s *sessionTestSuite) TestStaleCopyDoesNotUndoUnauthorized() {
	_, sess := s.establish("opaque-token")

	slow, err := s.manager.Load(s.ctx, sess.ID)
	s.Require().NoError(err)
	rejected, err := s.manager.Load(s.ctx, sess.ID)
	s.Require().NoError(err)

	s.manager.Unauthorized(WithSession(s.ctx, rejected))
	s.Require().ErrorIs(s.manager.Save(s.ctx, slow), ErrStale)

	loaded, err := s.manager.Load(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Require().False(loaded.Authenticated())
	s.Require().Equal(ExpiredNotice, loaded.Notice)
}

func (s *sessionTestSuite) TestLogoutWinsOverConcurrentChange() {
	_, sess := s.establish("opaque-token")

	stale, err := s.manager.Load(s.ctx, sess.ID)
	s.Require().NoError(err)
	busy, err := s.manager.Load(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.manager.Remember(WithSession(s.ctx, busy), cookieResponse("connect.sid", "backend-session"))

	s.T().Log("copy loaded before the change still signs user out")
	{
		s.Require().NoError(s.manager.Clear(WithSession(s.ctx, stale), ""))
		loaded, err := s.manager.Load(s.ctx, sess.ID)
		s.Require().NoError(err)
		s.Require().False(loaded.Authenticated())
		s.Require().False(loaded.HasCredentials())
	}

	s.T().Log("clear of replaced session doesn't touch the new one")
	{
		current, err := s.manager.Load(s.ctx, sess.ID)
		s.Require().NoError(err)
		replaced, err := s.manager.Load(s.ctx, sess.ID)
		s.Require().NoError(err)

		ctx := WithSession(s.ctx, current)
		s.Require().NoError(s.manager.Establish(ctx, "new-token", s.user))

		s.Require().NoError(s.manager.Clear(WithSession(s.ctx, replaced), ""))
		loaded, err := s.manager.Load(s.ctx, current.ID)
		s.Require().NoError(err)
		s.Require().True(loaded.Authenticated())
	}
}

func (s *sessionTestSuite) TestUntouchedAnonymousSessionIsNotStored() {
	sess, err := s.manager.Load(s.ctx, "")
	s.Require().NoError(err)

	s.Require().NoError(s.manager.Save(s.ctx, sess))
	s.Require().False(sess.Stored())

	loaded, err := s.manager.Load(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Require().NotEqual(sess.ID, loaded.ID, "session must not be found in store")
}

func (s *sessionTestSuite) TestEstablishRotatesID() {
	sess, err := s.manager.Load(s.ctx, "")
	s.Require().NoError(err)
	ctx := WithSession(s.ctx, sess)
	s.manager.Remember(ctx, cookieResponse("connect.sid", "backend-session"))
	s.Require().NoError(s.manager.Save(ctx, sess))
	anonymousID := sess.ID

	s.Require().NoError(s.manager.Establish(ctx, "opaque-token", s.user))

	s.T().Log("signed in session lives under new id, the previous one is gone")
	{
		s.Require().NotEqual(anonymousID, sess.ID)
		s.Require().True(sess.Stored())

		previous, err := s.manager.Load(s.ctx, anonymousID)
		s.Require().NoError(err)
		s.Require().NotEqual(anonymousID, previous.ID)
		s.Require().False(previous.Authenticated())

		current, err := s.manager.Load(s.ctx, sess.ID)
		s.Require().NoError(err)
		s.Require().True(current.Authenticated())
		s.Require().Equal("backend-session", current.Cookies["connect.sid"])
	}
}

func cookieResponse(name, value string) *http.Response {
	rec := httptest.NewRecorder()
	http.SetCookie(rec, &http.Cookie{Name: name, Value: value})
	return rec.Result()
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(sessionTestSuite))
}
