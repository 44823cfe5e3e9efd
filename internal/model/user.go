package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// User is console operator signed in to backend
type User struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	aux := struct {
		*plain
		AltID string `json:"id"`
	}{plain: (*plain)(u)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	if u.ID == "" {
		u.ID = aux.AltID
	}
	return nil
}

// DisplayName returns name or email if name is unknown
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// DashboardMetrics are aggregate counters shown on dashboard
type DashboardMetrics struct {
	TotalCustomers  int             `json:"totalCustomers"`
	ActiveCampaigns int             `json:"activeCampaigns"`
	TotalSegments   int             `json:"totalSegments"`
	Revenue         decimal.Decimal `json:"revenue"`
}
