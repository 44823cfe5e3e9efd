package service

import (
	"context"

	"github.com/umalmyha/crmconsole/internal/form"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/validation"
)

// CampaignService drives campaigns list and campaign form
type CampaignService interface {
	List(context.Context, int) (Result[[]model.Campaign], error)
	Load(context.Context, string) (model.Campaign, error)
	Submit(context.Context, form.Campaign) (model.Campaign, error)
	Delete(context.Context, string) error
	Toggle(context.Context, string) (model.Campaign, error)
	Segments(context.Context) (Result[[]model.Segment], error)
}

type campaignService struct {
	backend   CampaignBackend
	segments  SegmentBackend
	validator *validation.Validator
	offline   Offline
}

// NewCampaignService builds CampaignService, segments backend feeds target segment selector
func NewCampaignService(backend CampaignBackend, segments SegmentBackend, validator *validation.Validator, offline Offline) CampaignService {
	return &campaignService{backend: backend, segments: segments, validator: validator, offline: offline}
}

func (s *campaignService) List(ctx context.Context, limit int) (Result[[]model.Campaign], error) {
	name := "campaigns"
	if limit > 0 {
		name = "campaigns?recent"
	}

	load := func(ctx context.Context) ([]model.Campaign, error) {
		return s.backend.ListCampaigns(ctx, limit)
	}
	return fetch(ctx, s.offline, name, load, sampleCampaigns)
}

func (s *campaignService) Load(ctx context.Context, id string) (model.Campaign, error) {
	if id == "" {
		return model.Campaign{Type: model.CampaignTypeEmail, Status: model.CampaignStatusDraft}, nil
	}
	return s.backend.GetCampaign(ctx, id)
}

// Submit creates or replaces campaign, delivery metrics of existing campaign are owned by backend and kept
func (s *campaignService) Submit(ctx context.Context, f form.Campaign) (model.Campaign, error) {
	c, err := f.Model(s.validator)
	if err != nil {
		return model.Campaign{}, err
	}

	if c.ID == "" {
		created, err := s.backend.CreateCampaign(ctx, c)
		return s.saved(ctx, created, err)
	}

	existing, err := s.backend.GetCampaign(ctx, c.ID)
	if err != nil {
		return model.Campaign{}, err
	}
	c.Metrics = existing.Metrics

	updated, err := s.backend.UpdateCampaign(ctx, c)
	return s.saved(ctx, updated, err)
}

func (s *campaignService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteCampaign(ctx, id); err != nil {
		return err
	}
	s.offline.forget(ctx, campaignGroups...)
	return nil
}

// Toggle pauses active campaign and activates any other one
func (s *campaignService) Toggle(ctx context.Context, id string) (model.Campaign, error) {
	c, err := s.backend.GetCampaign(ctx, id)
	if err != nil {
		return model.Campaign{}, err
	}
	updated, err := s.backend.UpdateCampaign(ctx, c.Toggled())
	return s.saved(ctx, updated, err)
}

// campaignGroups are remembered responses which include campaigns
var campaignGroups = []string{"campaigns", "dashboard"}

// saved forgets remembered campaigns once backend accepted the change
func (s *campaignService) saved(ctx context.Context, c model.Campaign, err error) (model.Campaign, error) {
	if err != nil {
		return model.Campaign{}, err
	}
	s.offline.forget(ctx, campaignGroups...)
	return c, nil
}

func (s *campaignService) Segments(ctx context.Context) (Result[[]model.Segment], error) {
	return fetch(ctx, s.offline, "segments", s.segments.ListSegments, sampleSegments)
}
