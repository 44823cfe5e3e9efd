package infra

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/umalmyha/crmconsole/internal/api"
	"github.com/umalmyha/crmconsole/internal/cache"
	"github.com/umalmyha/crmconsole/internal/config"
	"github.com/umalmyha/crmconsole/internal/handlers"
	"github.com/umalmyha/crmconsole/internal/middleware"
	"github.com/umalmyha/crmconsole/internal/service"
	"github.com/umalmyha/crmconsole/internal/session"
	"github.com/umalmyha/crmconsole/internal/validation"
	"github.com/umalmyha/crmconsole/internal/view"
)

const loginPath = "/login"

func Router(cfg config.Config, stores Stores) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	validator := validation.MustNew()
	e.Validator = validator
	e.Renderer = view.MustNewRenderer()
	e.HTTPErrorHandler = errorHandler(e)

	// Session and backend
	sessions := session.NewManager(session.NewStore(stores.Sessions), cfg.SessionCfg.TimeToLive)
	client := api.NewClient(api.Config{BaseURL: cfg.APICfg.BaseURL, Timeout: cfg.APICfg.RequestTimeout}, sessions)
	offline := service.Offline{
		Lists: cache.NewLists(stores.Lists, cfg.CacheCfg.TimeToLive),
		Demo:  cfg.CacheCfg.DemoOffline,
	}

	// Services
	authSvc := service.NewAuthService(client, sessions, validator)
	dashboardSvc := service.NewDashboardService(client, offline)
	customerSvc := service.NewCustomerService(client, validator, offline)
	campaignSvc := service.NewCampaignService(client, client, validator, offline)
	segmentSvc := service.NewSegmentService(client, validator, offline)

	// Handlers
	authHandler := handlers.NewAuthHandler(authSvc, sessions)
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc)
	customerHandler := handlers.NewCustomerHandler(customerSvc)
	campaignHandler := handlers.NewCampaignHandler(campaignSvc)
	segmentHandler := handlers.NewSegmentHandler(segmentSvc)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	registry.MustRegister(api.Collectors()...)

	// Middleware
	e.Use(middleware.RequestLogger(), echomw.Recover())
	e.Use(middleware.Session(sessions, middleware.CookieCfg{
		Name:    cfg.SessionCfg.CookieName,
		Secure:  cfg.SessionCfg.CookieSecure,
		Skipper: opsRoute,
	}))
	e.Use(middleware.Restore(authSvc))
	requireUser := middleware.RequireUser(loginPath)

	// ops
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// auth
	e.GET(loginPath, authHandler.LoginPage)
	e.POST(loginPath, authHandler.Login)
	e.GET("/login/google", authHandler.GoogleLogin)
	e.GET("/login/callback", authHandler.Callback)
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)
	e.POST("/logout", authHandler.Logout)

	// dashboard
	e.GET("/", dashboardHandler.Show, requireUser)

	// customers
	e.GET("/customers", customerHandler.List, requireUser)
	e.GET("/customers/new", customerHandler.New, requireUser)
	e.POST("/customers/new", customerHandler.Submit, requireUser)
	e.GET("/customers/:id", customerHandler.Edit, requireUser)
	e.POST("/customers/:id", customerHandler.Submit, requireUser)
	e.POST("/customers/:id/delete", customerHandler.Delete, requireUser)

	// campaigns
	e.GET("/campaigns", campaignHandler.List, requireUser)
	e.GET("/campaigns/new", campaignHandler.New, requireUser)
	e.POST("/campaigns/new", campaignHandler.Submit, requireUser)
	e.GET("/campaigns/:id", campaignHandler.Edit, requireUser)
	e.POST("/campaigns/:id", campaignHandler.Submit, requireUser)
	e.POST("/campaigns/:id/delete", campaignHandler.Delete, requireUser)
	e.POST("/campaigns/:id/toggle", campaignHandler.Toggle, requireUser)

	// segments
	e.GET("/segments", segmentHandler.List, requireUser)
	e.GET("/segments/new", segmentHandler.New, requireUser)
	e.POST("/segments/new", segmentHandler.Submit, requireUser)
	e.GET("/segments/:id", segmentHandler.Edit, requireUser)
	e.POST("/segments/:id", segmentHandler.Submit, requireUser)

	// unknown pages
	e.GET("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/")
	})

	return e
}

func opsRoute(c echo.Context) bool {
	p := c.Path()
	return p == "/healthz" || p == "/metrics"
}
