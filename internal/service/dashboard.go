package service

import (
	"context"

	"github.com/umalmyha/crmconsole/internal/model"
	"golang.org/x/sync/errgroup"
)

const recentCampaignsLimit = 5

// Dashboard is content of dashboard view
type Dashboard struct {
	Metrics         model.DashboardMetrics
	RecentCampaigns []model.Campaign
}

// DashboardService loads dashboard
type DashboardService interface {
	Load(context.Context) (Result[Dashboard], error)
}

type dashboardService struct {
	backend DashboardBackend
	offline Offline
}

// NewDashboardService builds DashboardService
func NewDashboardService(backend DashboardBackend, offline Offline) DashboardService {
	return &dashboardService{backend: backend, offline: offline}
}

// Load fetches metrics and recent campaigns concurrently, both are required for live dashboard
func (s *dashboardService) Load(ctx context.Context) (Result[Dashboard], error) {
	return fetch(ctx, s.offline, "dashboard", s.load, sampleDashboard)
}

func (s *dashboardService) load(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, err := s.backend.DashboardMetrics(gCtx)
		if err != nil {
			return err
		}
		d.Metrics = m
		return nil
	})

	g.Go(func() error {
		campaigns, err := s.backend.ListCampaigns(gCtx, recentCampaignsLimit)
		if err != nil {
			return err
		}
		d.RecentCampaigns = campaigns
		return nil
	})

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
