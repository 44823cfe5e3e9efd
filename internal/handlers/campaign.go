package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crmconsole/internal/form"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/service"
	"github.com/umalmyha/crmconsole/internal/view"
)

// CampaignHandler serves campaigns list and campaign form
type CampaignHandler struct {
	campaignSvc service.CampaignService
}

// NewCampaignHandler builds new CampaignHandler
func NewCampaignHandler(campaignSvc service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignSvc: campaignSvc}
}

func (h *CampaignHandler) List(c echo.Context) error {
	res, err := h.campaignSvc.List(c.Request().Context(), 0)
	if err != nil {
		return err
	}

	p := page(c, "Campaigns", "campaigns", view.Campaigns{Campaigns: res.Data, Actionable: res.Actionable()})
	p.Notice = res.Notice
	return c.Render(http.StatusOK, "campaigns", p)
}

func (h *CampaignHandler) New(c echo.Context) error {
	p, err := h.page(c, form.NewCampaign())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "campaign_form", p)
}

func (h *CampaignHandler) Edit(c echo.Context) error {
	cmp, err := h.campaignSvc.Load(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	p, err := h.page(c, form.FromCampaign(cmp))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "campaign_form", p)
}

// Submit creates campaign or updates the one from path
func (h *CampaignHandler) Submit(c echo.Context) error {
	var f form.Campaign
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f.ID = c.Param("id")

	if _, err := h.campaignSvc.Submit(c.Request().Context(), f); err != nil {
		p, pErr := h.page(c, f)
		if pErr != nil {
			return pErr
		}
		return rejected(c, err, "campaign_form", p)
	}
	return redirect(c, "/campaigns")
}

func (h *CampaignHandler) Delete(c echo.Context) error {
	if err := h.campaignSvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return redirect(c, "/campaigns")
}

// Toggle pauses or resumes campaign
func (h *CampaignHandler) Toggle(c echo.Context) error {
	if _, err := h.campaignSvc.Toggle(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return redirect(c, "/campaigns")
}

// page builds form page, segments for target selector are loaded with offline fallback
func (h *CampaignHandler) page(c echo.Context, f form.Campaign) (view.Page, error) {
	segments, err := h.campaignSvc.Segments(c.Request().Context())
	if err != nil {
		return view.Page{}, err
	}

	title := "New campaign"
	if f.Editing() {
		title = "Edit campaign"
	}

	p := page(c, title, "campaigns", view.CampaignForm{
		Form:     f,
		Segments: segments.Data,
		Types:    model.CampaignTypes,
		Statuses: model.CampaignStatuses,
	})
	p.Notice = segments.Notice
	return p, nil
}
