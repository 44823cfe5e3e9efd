package infra

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/crmconsole/internal/cache"
	"github.com/umalmyha/crmconsole/internal/config"
	"github.com/umalmyha/crmconsole/internal/session"
)

const testCookieName = "crm-session"

type routerTestSuite struct {
	suite.Suite
	backend *httptest.Server
	app     *echo.Echo
	cookie  *http.Cookie

	mu              sync.Mutex
	customersStatus int
}

func (s *routerTestSuite) SetupTest() {
	s.customersStatus = http.StatusOK
	s.cookie = nil

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"opaque-token","user":{"id":"u1","name":"Jane","email":"jane@somemail.com"}}`))
	})
	mux.HandleFunc("/api/auth/current", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer opaque-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"user":{"_id":"u1","name":"Jane","email":"jane@somemail.com"}}`))
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/customers", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status := s.customersStatus
		s.mu.Unlock()

		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"customers":[{"_id":"c1","name":"John Doe","email":"john@somemail.com","totalSpent":1500}]}`))
		}
	})
	s.backend = httptest.NewServer(mux)

	cfg := config.Config{
		APICfg:     config.APICfg{BaseURL: s.backend.URL + "/api", RequestTimeout: time.Second},
		SessionCfg: config.SessionCfg{CookieName: testCookieName, TimeToLive: time.Hour},
		CacheCfg:   config.CacheCfg{SizeBytes: 8 << 20, TimeToLive: time.Minute, DemoOffline: true},
	}
	mem := cache.NewMemoryStore(cfg.CacheCfg.SizeBytes)
	s.app = Router(cfg, Stores{Sessions: mem, Lists: mem})
}

func (s *routerTestSuite) TearDownTest() {
	s.backend.Close()
}

func (s *routerTestSuite) setCustomersStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customersStatus = status
}

// do sends browser request keeping console session cookie between calls
func (s *routerTestSuite) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}

	rec := httptest.NewRecorder()
	s.app.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			s.cookie = c
		}
	}
	return rec
}

func (s *routerTestSuite) login() {
	previous := s.cookie
	rec := s.do(http.MethodPost, "/login", url.Values{"email": {"jane@somemail.com"}, "password": {"secret"}})
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	s.Require().Equal("/", rec.Header().Get(echo.HeaderLocation))
	s.Require().NotNil(s.cookie, "session cookie must be issued on sign in")
	if previous != nil {
		s.Require().NotEqual(previous.Value, s.cookie.Value, "session id must change on sign in")
	}
}

func (s *routerTestSuite) TestGate() {
	s.T().Log("protected page redirects anonymous user to login")
	{
		rec := s.do(http.MethodGet, "/customers", nil)
		s.Require().Equal(http.StatusSeeOther, rec.Code)
		s.Require().Equal("/login", rec.Header().Get(echo.HeaderLocation))
		s.Require().Nil(s.cookie, "anonymous session must not be stored")
	}

	s.T().Log("unknown page redirects to dashboard")
	{
		rec := s.do(http.MethodGet, "/reports/2024", nil)
		s.Require().Equal(http.StatusSeeOther, rec.Code)
		s.Require().Equal("/", rec.Header().Get(echo.HeaderLocation))
	}

	s.T().Log("login page is public")
	{
		rec := s.do(http.MethodGet, "/login", nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Require().Contains(rec.Body.String(), "Sign in")
	}
}

func (s *routerTestSuite) TestLoginFlow() {
	s.T().Log("invalid credentials form is re-rendered inline")
	{
		rec := s.do(http.MethodPost, "/login", url.Values{"email": {"jane"}})
		s.Require().Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Require().Contains(rec.Body.String(), `value="jane"`)
	}

	s.login()

	s.T().Log("signed in user sees customers")
	{
		rec := s.do(http.MethodGet, "/customers", nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Require().Contains(rec.Body.String(), "John Doe")
		s.Require().Contains(rec.Body.String(), "/customers/c1/delete")
	}

	s.T().Log("login page sends signed in user to dashboard")
	{
		rec := s.do(http.MethodGet, "/login", nil)
		s.Require().Equal(http.StatusSeeOther, rec.Code)
		s.Require().Equal("/", rec.Header().Get(echo.HeaderLocation))
	}

	s.T().Log("logout clears session")
	{
		rec := s.do(http.MethodPost, "/logout", nil)
		s.Require().Equal(http.StatusSeeOther, rec.Code)
		rec = s.do(http.MethodGet, "/customers", nil)
		s.Require().Equal("/login", rec.Header().Get(echo.HeaderLocation))
	}
}

func (s *routerTestSuite) TestUnauthorizedBackendSignsUserOut() {
	s.login()
	s.setCustomersStatus(http.StatusUnauthorized)

	s.T().Log("401 from backend sends user to login")
	{
		rec := s.do(http.MethodGet, "/customers", nil)
		s.Require().Equal(http.StatusSeeOther, rec.Code)
		s.Require().Equal("/login", rec.Header().Get(echo.HeaderLocation))
	}

	s.T().Log("session is cleared and expiry notice is shown once")
	{
		rec := s.do(http.MethodGet, "/login", nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Require().Contains(rec.Body.String(), session.ExpiredNotice)

		rec = s.do(http.MethodGet, "/login", nil)
		s.Require().NotContains(rec.Body.String(), session.ExpiredNotice)
	}
}

func (s *routerTestSuite) TestOfflineList() {
	s.login()

	s.T().Log("remembered list is served when backend fails")
	{
		rec := s.do(http.MethodGet, "/customers", nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		s.setCustomersStatus(http.StatusBadGateway)
		rec = s.do(http.MethodGet, "/customers", nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Require().Contains(rec.Body.String(), "John Doe")
		s.Require().Contains(rec.Body.String(), "showing the last loaded data")
	}

	s.T().Log("sample data is served for never loaded filter, actions are disabled")
	{
		rec := s.do(http.MethodGet, "/customers?search=ann", nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Require().Contains(rec.Body.String(), "showing sample data")
		s.Require().NotContains(rec.Body.String(), "/delete")
	}
}

func (s *routerTestSuite) TestCustomerFormValidation() {
	s.login()

	rec := s.do(http.MethodPost, "/customers/new", url.Values{
		"name":       {"John"},
		"email":      {"not-an-email"},
		"totalSpent": {"-5"},
	})
	s.Require().Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Require().Contains(rec.Body.String(), `value="John"`)
	s.Require().Contains(rec.Body.String(), "must not be negative")
}

func (s *routerTestSuite) TestOpsRoutes() {
	s.login()

	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/metrics", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), "crmconsole_backend_requests_total")
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(routerTestSuite))
}
