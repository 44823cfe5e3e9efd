package service

import (
	"context"

	"github.com/umalmyha/crmconsole/internal/api"
	"github.com/umalmyha/crmconsole/internal/model"
)

// CustomerBackend is customer part of backend API
type CustomerBackend interface {
	ListCustomers(context.Context, model.CustomerFilter) ([]model.Customer, error)
	GetCustomer(context.Context, string) (model.Customer, error)
	CreateCustomer(context.Context, model.Customer) (model.Customer, error)
	UpdateCustomer(context.Context, model.Customer) (model.Customer, error)
	DeleteCustomer(context.Context, string) error
}

// CampaignBackend is campaign part of backend API
type CampaignBackend interface {
	ListCampaigns(context.Context, int) ([]model.Campaign, error)
	GetCampaign(context.Context, string) (model.Campaign, error)
	CreateCampaign(context.Context, model.Campaign) (model.Campaign, error)
	UpdateCampaign(context.Context, model.Campaign) (model.Campaign, error)
	DeleteCampaign(context.Context, string) error
}

// SegmentBackend is segment part of backend API
type SegmentBackend interface {
	ListSegments(context.Context) ([]model.Segment, error)
	GetSegment(context.Context, string) (model.Segment, error)
	CreateSegment(context.Context, model.Segment) (model.Segment, error)
	UpdateSegment(context.Context, model.Segment) (model.Segment, error)
	PreviewSegment(context.Context, []model.Rule, model.RuleLogic) (int, error)
}

// DashboardBackend serves dashboard counters
type DashboardBackend interface {
	DashboardMetrics(context.Context) (model.DashboardMetrics, error)
	ListCampaigns(context.Context, int) ([]model.Campaign, error)
}

// AuthBackend is session part of backend API
type AuthBackend interface {
	CurrentUser(context.Context) (model.User, error)
	Login(context.Context, string, string) (api.Credentials, error)
	Signup(context.Context, string, string, string) (api.Credentials, error)
	Logout(context.Context) error
	GoogleLoginURL() string
}

// SessionKeeper writes session of the request context
type SessionKeeper interface {
	Authorize(context.Context, string)
	Establish(context.Context, string, model.User) error
	Clear(context.Context, string) error
}
