package service

import (
	"github.com/shopspring/decimal"
	"github.com/umalmyha/crmconsole/internal/model"
)

// sample data shown when backend is unreachable and nothing was remembered

func sampleCustomers() []model.Customer {
	return []model.Customer{
		{
			ID:         "sample-1",
			Name:       "John Doe",
			Email:      "john@example.com",
			Phone:      "+1 234 567 8900",
			TotalSpent: decimal.NewFromInt(1500),
			VisitCount: 12,
			LastVisit:  model.NewDate(2024, 3, 15),
			Tags:       []string{"VIP", "Regular"},
		},
		{
			ID:         "sample-2",
			Name:       "Jane Smith",
			Email:      "jane@example.com",
			Phone:      "+1 234 567 8901",
			TotalSpent: decimal.NewFromInt(2300),
			VisitCount: 2,
			LastVisit:  model.NewDate(2024, 3, 14),
			Tags:       []string{"New"},
		},
		{
			ID:         "sample-3",
			Name:       "Bob Johnson",
			Email:      "bob@example.com",
			Phone:      "+1 234 567 8902",
			TotalSpent: decimal.NewFromInt(800),
			VisitCount: 5,
			LastVisit:  model.NewDate(2024, 3, 13),
			Tags:       []string{"Regular"},
		},
	}
}

func sampleSegments() []model.Segment {
	return []model.Segment{
		{
			ID:            "sample-1",
			Name:          "High Value Customers",
			Description:   "Customers who spent more than $1000",
			Rules:         []model.Rule{{Field: "totalSpent", Operator: "greaterThan", Value: "1000"}},
			RuleLogic:     model.RuleLogicAnd,
			CustomerCount: 24,
		},
		{
			ID:            "sample-2",
			Name:          "Recent Visitors",
			Description:   "Customers who visited since March",
			Rules:         []model.Rule{{Field: "lastVisit", Operator: "greaterThan", Value: "2024-03-01"}},
			RuleLogic:     model.RuleLogicAnd,
			CustomerCount: 15,
		},
		{
			ID:            "sample-3",
			Name:          "VIP or New",
			Description:   "Customers tagged VIP or New",
			Rules:         []model.Rule{{Field: "tags", Operator: "contains", Value: "VIP"}, {Field: "tags", Operator: "contains", Value: "New"}},
			RuleLogic:     model.RuleLogicOr,
			CustomerCount: 40,
		},
	}
}

func sampleCampaigns() []model.Campaign {
	return []model.Campaign{
		{
			ID:            "sample-1",
			Name:          "Summer Sale Campaign",
			Description:   "Seasonal discounts",
			Message:       "Get 50% off on summer collection!",
			Type:          model.CampaignTypeEmail,
			Status:        model.CampaignStatusActive,
			StartDate:     model.NewDate(2024, 6, 1),
			EndDate:       model.NewDate(2024, 6, 30),
			TargetSegment: model.SegmentRef{ID: "sample-1", Name: "High Value Customers"},
			Budget:        decimal.NewFromInt(500),
			Metrics:       model.CampaignMetrics{Sent: 250, Delivered: 245, Opened: 180},
		},
		{
			ID:            "sample-2",
			Name:          "New Product Launch",
			Description:   "Announcement of new product line",
			Message:       "Check out our new product line!",
			Type:          model.CampaignTypeSMS,
			Status:        model.CampaignStatusScheduled,
			StartDate:     model.NewDate(2024, 7, 1),
			EndDate:       model.NewDate(2024, 7, 15),
			TargetSegment: model.SegmentRef{ID: "sample-2", Name: "Recent Visitors"},
			Budget:        decimal.NewFromInt(300),
		},
		{
			ID:            "sample-3",
			Name:          "Customer Feedback",
			Description:   "Post purchase survey",
			Message:       "How was your shopping experience?",
			Type:          model.CampaignTypeEmail,
			Status:        model.CampaignStatusDraft,
			StartDate:     model.NewDate(2024, 8, 1),
			EndDate:       model.NewDate(2024, 8, 31),
			TargetSegment: model.SegmentRef{ID: "sample-3", Name: "VIP or New"},
			Budget:        decimal.Zero,
		},
	}
}

func sampleDashboard() Dashboard {
	return Dashboard{
		Metrics: model.DashboardMetrics{
			TotalCustomers:  1234,
			ActiveCampaigns: 5,
			TotalSegments:   12,
			Revenue:         decimal.NewFromInt(45678),
		},
		RecentCampaigns: sampleCampaigns(),
	}
}
