package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crmconsole/internal/form"
	"github.com/umalmyha/crmconsole/internal/segment"
	"github.com/umalmyha/crmconsole/internal/service"
	"github.com/umalmyha/crmconsole/internal/view"
)

const (
	actionAdd     = "add"
	actionPreview = "preview"
)

// SegmentHandler serves segments grid and segment builder
type SegmentHandler struct {
	segmentSvc service.SegmentService
}

// NewSegmentHandler builds new SegmentHandler
func NewSegmentHandler(segmentSvc service.SegmentService) *SegmentHandler {
	return &SegmentHandler{segmentSvc: segmentSvc}
}

func (h *SegmentHandler) List(c echo.Context) error {
	res, err := h.segmentSvc.List(c.Request().Context())
	if err != nil {
		return err
	}

	p := page(c, "Segments", "segments", view.Segments{Segments: res.Data, Actionable: res.Actionable()})
	p.Notice = res.Notice
	return c.Render(http.StatusOK, "segments", p)
}

func (h *SegmentHandler) New(c echo.Context) error {
	return c.Render(http.StatusOK, "segment_form", h.page(c, form.NewSegment(), nil))
}

func (h *SegmentHandler) Edit(c echo.Context) error {
	seg, err := h.segmentSvc.Load(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "segment_form", h.page(c, form.FromSegment(seg), nil))
}

// Submit drives segment builder: rule rows are added and removed, audience is previewed
// and segment is saved, all within the same form
func (h *SegmentHandler) Submit(c echo.Context) error {
	var f form.Segment
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f.ID = c.Param("id")

	if remove := c.FormValue("remove"); remove != "" {
		if i, err := strconv.Atoi(remove); err == nil {
			f.RemoveRule(i)
		}
		return c.Render(http.StatusOK, "segment_form", h.page(c, f, nil))
	}

	switch c.FormValue("action") {
	case actionAdd:
		f.AddRule()
		return c.Render(http.StatusOK, "segment_form", h.page(c, f, nil))
	case actionPreview:
		res, err := h.segmentSvc.Preview(c.Request().Context(), f)
		if err != nil {
			return rejected(c, err, "segment_form", h.page(c, f, nil))
		}
		p := h.page(c, f, &res.Data)
		p.Notice = res.Notice
		return c.Render(http.StatusOK, "segment_form", p)
	}

	if _, err := h.segmentSvc.Submit(c.Request().Context(), f); err != nil {
		return rejected(c, err, "segment_form", h.page(c, f, nil))
	}
	return redirect(c, "/segments")
}

func (h *SegmentHandler) page(c echo.Context, f form.Segment, estimate *int) view.Page {
	title := "New segment"
	if f.Editing() {
		title = "Edit segment"
	}
	return page(c, title, "segments", view.SegmentForm{
		Form:      f,
		Fields:    segment.Fields,
		Operators: segment.Operators,
		Estimate:  estimate,
	})
}
