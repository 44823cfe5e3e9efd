package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/umalmyha/crmconsole/internal/model"
)

// ListCampaigns lists campaigns, positive limit asks backend for the most recent ones only
func (c *Client) ListCampaigns(ctx context.Context, limit int) ([]model.Campaign, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	l := list[model.Campaign]{key: "campaigns"}
	err := c.do(ctx, call{op: "campaigns.list", method: http.MethodGet, path: "/campaigns", query: q, out: &l})
	if err != nil {
		return nil, err
	}
	return l.result(), nil
}

func (c *Client) GetCampaign(ctx context.Context, id string) (model.Campaign, error) {
	var cmp model.Campaign
	err := c.do(ctx, call{op: "campaigns.get", method: http.MethodGet, path: "/campaigns/" + url.PathEscape(id), out: &cmp})
	return cmp, err
}

func (c *Client) CreateCampaign(ctx context.Context, cmp model.Campaign) (model.Campaign, error) {
	created := cmp
	err := c.do(ctx, call{op: "campaigns.create", method: http.MethodPost, path: "/campaigns", body: &cmp, out: &created})
	return created, err
}

// UpdateCampaign replaces the whole campaign record, status changes go through it as well
func (c *Client) UpdateCampaign(ctx context.Context, cmp model.Campaign) (model.Campaign, error) {
	updated := cmp
	err := c.do(ctx, call{op: "campaigns.update", method: http.MethodPut, path: "/campaigns/" + url.PathEscape(cmp.ID), body: &cmp, out: &updated})
	return updated, err
}

func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return c.do(ctx, call{op: "campaigns.delete", method: http.MethodDelete, path: "/campaigns/" + url.PathEscape(id)})
}
