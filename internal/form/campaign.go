package form

import (
	"strings"

	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/validation"
)

// Campaign is state of campaign form
type Campaign struct {
	ID            string
	Name          string `form:"name" validate:"required"`
	Description   string `form:"description" validate:"required"`
	Message       string `form:"message"`
	Type          string `form:"type" validate:"required,oneof=email sms push social"`
	Status        string `form:"status" validate:"required,oneof=draft scheduled active paused"`
	StartDate     string `form:"startDate" validate:"required"`
	EndDate       string `form:"endDate" validate:"required"`
	TargetSegment string `form:"targetSegment" validate:"required"`
	Budget        string `form:"budget" validate:"required"`
	Metrics       model.CampaignMetrics
}

// NewCampaign is blank campaign form with defaults
func NewCampaign() Campaign {
	return Campaign{
		Type:   string(model.CampaignTypeEmail),
		Status: string(model.CampaignStatusDraft),
	}
}

// FromCampaign fills form with campaign being edited
func FromCampaign(c model.Campaign) Campaign {
	return Campaign{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		Message:       c.Message,
		Type:          string(c.Type),
		Status:        string(c.Status),
		StartDate:     c.StartDate.String(),
		EndDate:       c.EndDate.String(),
		TargetSegment: c.TargetSegment.ID,
		Budget:        c.Budget.StringFixed(2),
		Metrics:       c.Metrics,
	}
}

// Editing reports whether form edits existing campaign
func (f Campaign) Editing() bool {
	return f.ID != ""
}

// Model validates form and converts it to campaign entity.
// Returned error is *errors.ValidationErr holding every invalid field.
func (f Campaign) Model(v *validation.Validator) (model.Campaign, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.TargetSegment = strings.TrimSpace(f.TargetSegment)

	vErr := &apperrors.ValidationErr{}
	vErr.Merge(v.Collect(&f))

	cr := newCoercer(vErr)
	c := model.Campaign{
		ID:            f.ID,
		Name:          f.Name,
		Description:   f.Description,
		Message:       strings.TrimSpace(f.Message),
		Type:          model.CampaignType(f.Type),
		Status:        model.CampaignStatus(f.Status),
		StartDate:     cr.date("startDate", f.StartDate),
		EndDate:       cr.date("endDate", f.EndDate),
		TargetSegment: model.SegmentRef{ID: f.TargetSegment},
		Budget:        cr.amount("budget", f.Budget),
		Metrics:       f.Metrics,
	}

	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && c.EndDate.Compare(c.StartDate) < 0 {
		cr.violate("endDate", "must not be before startDate")
	}

	if err := vErr.OrNil(); err != nil {
		return model.Campaign{}, err
	}
	return c, nil
}
