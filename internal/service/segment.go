package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/form"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/segment"
	"github.com/umalmyha/crmconsole/internal/validation"
)

const localEstimateNotice = "Couldn't reach the server, audience size is estimated from the last loaded customers."

// SegmentService drives segments list and segment builder
type SegmentService interface {
	List(context.Context) (Result[[]model.Segment], error)
	Load(context.Context, string) (model.Segment, error)
	Submit(context.Context, form.Segment) (model.Segment, error)
	Preview(context.Context, form.Segment) (Result[int], error)
}

type segmentService struct {
	backend   SegmentBackend
	validator *validation.Validator
	offline   Offline
}

// NewSegmentService builds SegmentService
func NewSegmentService(backend SegmentBackend, validator *validation.Validator, offline Offline) SegmentService {
	return &segmentService{backend: backend, validator: validator, offline: offline}
}

func (s *segmentService) List(ctx context.Context) (Result[[]model.Segment], error) {
	return fetch(ctx, s.offline, "segments", s.backend.ListSegments, sampleSegments)
}

func (s *segmentService) Load(ctx context.Context, id string) (model.Segment, error) {
	if id == "" {
		return model.Segment{RuleLogic: model.RuleLogicAnd}, nil
	}
	return s.backend.GetSegment(ctx, id)
}

// Submit compiles rules before anything is sent, so malformed rules never reach backend
func (s *segmentService) Submit(ctx context.Context, f form.Segment) (model.Segment, error) {
	seg, _, err := f.Model(s.validator)
	if err != nil {
		return model.Segment{}, err
	}

	if seg.ID == "" {
		seg, err = s.backend.CreateSegment(ctx, seg)
	} else {
		seg, err = s.backend.UpdateSegment(ctx, seg)
	}
	if err != nil {
		return model.Segment{}, err
	}

	s.offline.forget(ctx, "segments")
	return seg, nil
}

// Preview asks backend for audience size of the rules. When backend is unreachable size is
// evaluated locally against the last customers list remembered for the user.
func (s *segmentService) Preview(ctx context.Context, f form.Segment) (Result[int], error) {
	rs, err := f.RuleSet()
	if err != nil {
		return Result[int]{}, err
	}

	size, err := s.backend.PreviewSegment(ctx, rs.Wire(), rs.Logic)
	if err == nil {
		return Result[int]{Data: size, Source: SourceLive}, nil
	}

	var netErr *apperrors.NetworkErr
	if !errors.As(err, &netErr) || s.offline.Lists == nil {
		return Result[int]{}, err
	}

	var population []model.Customer
	ok, cErr := s.offline.Lists.Recall(ctx, owner(ctx), customerListName(model.CustomerFilter{}), &population)
	if cErr != nil {
		logrus.Warnf("failed to recall customers for local estimate - %v", cErr)
	}
	if !ok {
		return Result[int]{}, err
	}

	return Result[int]{Data: segment.EstimateSize(rs, population), Source: SourceCached, Notice: localEstimateNotice}, nil
}
