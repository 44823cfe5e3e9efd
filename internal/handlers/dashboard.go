package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crmconsole/internal/service"
	"github.com/umalmyha/crmconsole/internal/view"
)

// DashboardHandler serves dashboard
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler builds new DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

func (h *DashboardHandler) Show(c echo.Context) error {
	res, err := h.dashboardSvc.Load(c.Request().Context())
	if err != nil {
		return err
	}

	p := page(c, "Dashboard", "dashboard", view.Dashboard{
		Metrics:         res.Data.Metrics,
		RecentCampaigns: res.Data.RecentCampaigns,
	})
	p.Notice = res.Notice
	return c.Render(http.StatusOK, "dashboard", p)
}
