package view

import (
	"github.com/umalmyha/crmconsole/internal/form"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/segment"
)

// Login is content of login page
type Login struct {
	Form      form.Login
	GoogleURL string
}

// Signup is content of registration page
type Signup struct {
	Form form.Signup
}

// Dashboard is content of dashboard page
type Dashboard struct {
	Metrics         model.DashboardMetrics
	RecentCampaigns []model.Campaign
}

// Customers is content of customers list, row actions are offered only for actionable data
type Customers struct {
	Customers  []model.Customer
	Filter     form.CustomerFilter
	Tags       []string
	Actionable bool
}

// CustomerForm is content of customer form
type CustomerForm struct {
	Form form.Customer
	Tags []string
}

// Campaigns is content of campaigns list
type Campaigns struct {
	Campaigns  []model.Campaign
	Actionable bool
}

// CampaignForm is content of campaign form
type CampaignForm struct {
	Form     form.Campaign
	Segments []model.Segment
	Types    []model.CampaignType
	Statuses []model.CampaignStatus
}

// Segments is content of segments grid
type Segments struct {
	Segments   []model.Segment
	Actionable bool
}

// SegmentForm is content of segment builder
type SegmentForm struct {
	Form      form.Segment
	Fields    []segment.Field
	Operators []segment.Operator
	// Estimate is audience size of the last preview, nil until previewed
	Estimate *int
}
