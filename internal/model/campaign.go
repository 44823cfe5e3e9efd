package model

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CampaignType is delivery channel of campaign
type CampaignType string

const (
	CampaignTypeEmail  CampaignType = "email"
	CampaignTypeSMS    CampaignType = "sms"
	CampaignTypePush   CampaignType = "push"
	CampaignTypeSocial CampaignType = "social"
)

// CampaignTypes lists supported channels in display order
var CampaignTypes = []CampaignType{CampaignTypeEmail, CampaignTypeSMS, CampaignTypePush, CampaignTypeSocial}

// CampaignStatus is lifecycle status of campaign, transitions are driven by backend
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
)

// CampaignStatuses lists all statuses
var CampaignStatuses = []CampaignStatus{CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusActive, CampaignStatusPaused}

// CampaignMetrics are delivery counters reported by backend
type CampaignMetrics struct {
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Opened    int `json:"opened"`
	Clicked   int `json:"clicked"`
	Converted int `json:"converted"`
}

// SegmentRef references target segment, name is known only when backend expands the reference
type SegmentRef struct {
	ID   string
	Name string
}

func (r SegmentRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

func (r *SegmentRef) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*r = SegmentRef{}
		return nil
	}

	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		*r = SegmentRef{ID: id}
		return nil
	}

	var expanded struct {
		ID    string `json:"_id"`
		AltID string `json:"id"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(b, &expanded); err != nil {
		return err
	}

	r.ID = expanded.ID
	if r.ID == "" {
		r.ID = expanded.AltID
	}
	r.Name = expanded.Name
	return nil
}

// Label returns name if known, otherwise id
func (r SegmentRef) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// Campaign is marketing campaign targeting segment
type Campaign struct {
	ID            string          `json:"_id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Message       string          `json:"message,omitempty"`
	Type          CampaignType    `json:"type"`
	Status        CampaignStatus  `json:"status"`
	StartDate     Date            `json:"startDate"`
	EndDate       Date            `json:"endDate"`
	TargetSegment SegmentRef      `json:"targetSegment"`
	Budget        decimal.Decimal `json:"budget"`
	Metrics       CampaignMetrics `json:"metrics"`
}

// Toggled returns campaign with status switched between active and paused
func (c Campaign) Toggled() Campaign {
	if c.Status == CampaignStatusActive {
		c.Status = CampaignStatusPaused
	} else {
		c.Status = CampaignStatusActive
	}
	return c
}

func (c *Campaign) UnmarshalJSON(b []byte) error {
	type plain Campaign
	aux := struct {
		*plain
		AltID   string      `json:"id"`
		Segment *SegmentRef `json:"segment"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	if c.ID == "" {
		c.ID = aux.AltID
	}
	if c.TargetSegment.ID == "" && aux.Segment != nil {
		c.TargetSegment = *aux.Segment
	}
	return nil
}
