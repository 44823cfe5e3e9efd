package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/umalmyha/crmconsole/internal/model"
)

type previewRequest struct {
	Rules     []model.Rule    `json:"rules"`
	RuleLogic model.RuleLogic `json:"ruleLogic"`
}

type previewResponse struct {
	EstimatedSize int `json:"estimatedSize"`
}

func (c *Client) ListSegments(ctx context.Context) ([]model.Segment, error) {
	l := list[model.Segment]{key: "segments"}
	err := c.do(ctx, call{op: "segments.list", method: http.MethodGet, path: "/segments", out: &l})
	if err != nil {
		return nil, err
	}
	return l.result(), nil
}

func (c *Client) GetSegment(ctx context.Context, id string) (model.Segment, error) {
	var seg model.Segment
	err := c.do(ctx, call{op: "segments.get", method: http.MethodGet, path: "/segments/" + url.PathEscape(id), out: &seg})
	return seg, err
}

func (c *Client) CreateSegment(ctx context.Context, seg model.Segment) (model.Segment, error) {
	created := seg
	err := c.do(ctx, call{op: "segments.create", method: http.MethodPost, path: "/segments", body: &seg, out: &created})
	return created, err
}

func (c *Client) UpdateSegment(ctx context.Context, seg model.Segment) (model.Segment, error) {
	updated := seg
	err := c.do(ctx, call{op: "segments.update", method: http.MethodPut, path: "/segments/" + url.PathEscape(seg.ID), body: &seg, out: &updated})
	return updated, err
}

// PreviewSegment asks backend how many customers currently match rules, nothing is persisted
func (c *Client) PreviewSegment(ctx context.Context, rules []model.Rule, logic model.RuleLogic) (int, error) {
	if rules == nil {
		rules = make([]model.Rule, 0)
	}

	var res previewResponse
	err := c.do(ctx, call{
		op:     "segments.preview",
		method: http.MethodPost,
		path:   "/segments/preview",
		body:   &previewRequest{Rules: rules, RuleLogic: logic},
		out:    &res,
	})
	return res.EstimatedSize, err
}

// DashboardMetrics returns aggregated counters shown on dashboard
func (c *Client) DashboardMetrics(ctx context.Context) (model.DashboardMetrics, error) {
	var m model.DashboardMetrics
	err := c.do(ctx, call{op: "dashboard.metrics", method: http.MethodGet, path: "/dashboard/metrics", out: &m})
	return m, err
}
