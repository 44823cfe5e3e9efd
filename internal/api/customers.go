package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/umalmyha/crmconsole/internal/model"
)

func customerQuery(f model.CustomerFilter) url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.MinSpent.Valid {
		q.Set("minSpent", f.MinSpent.Decimal.String())
	}
	if f.MaxSpent.Valid {
		q.Set("maxSpent", f.MaxSpent.Decimal.String())
	}
	if !f.LastVisit.IsZero() {
		q.Set("lastVisit", f.LastVisit.String())
	}
	for _, t := range f.Tags {
		q.Add("tags", t)
	}
	return q
}

// ListCustomers lists customers matching filter, filtering is done by backend
func (c *Client) ListCustomers(ctx context.Context, f model.CustomerFilter) ([]model.Customer, error) {
	l := list[model.Customer]{key: "customers"}
	err := c.do(ctx, call{op: "customers.list", method: http.MethodGet, path: "/customers", query: customerQuery(f), out: &l})
	if err != nil {
		return nil, err
	}
	return l.result(), nil
}

func (c *Client) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	var cust model.Customer
	err := c.do(ctx, call{op: "customers.get", method: http.MethodGet, path: "/customers/" + url.PathEscape(id), out: &cust})
	return cust, err
}

func (c *Client) CreateCustomer(ctx context.Context, cust model.Customer) (model.Customer, error) {
	created := cust
	err := c.do(ctx, call{op: "customers.create", method: http.MethodPost, path: "/customers", body: &cust, out: &created})
	return created, err
}

// UpdateCustomer replaces the whole customer record
func (c *Client) UpdateCustomer(ctx context.Context, cust model.Customer) (model.Customer, error) {
	updated := cust
	err := c.do(ctx, call{op: "customers.update", method: http.MethodPut, path: "/customers/" + url.PathEscape(cust.ID), body: &cust, out: &updated})
	return updated, err
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, call{op: "customers.delete", method: http.MethodDelete, path: "/customers/" + url.PathEscape(id)})
}
