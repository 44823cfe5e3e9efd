package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// KnownTags are customer tags offered by forms and filters
var KnownTags = []string{"VIP", "Regular", "New"}

// Customer is customer entity as exposed by backend
type Customer struct {
	ID         string          `json:"_id,omitempty"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	VisitCount int             `json:"visitCount"`
	LastVisit  Date            `json:"lastVisit"`
	Tags       []string        `json:"tags"`
}

// HasTag reports whether customer is labeled with tag
func (c Customer) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (c *Customer) UnmarshalJSON(b []byte) error {
	type plain Customer
	aux := struct {
		*plain
		AltID string `json:"id"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	if c.ID == "" {
		c.ID = aux.AltID
	}
	return nil
}

// CustomerFilter narrows customers list
type CustomerFilter struct {
	Search    string
	MinSpent  decimal.NullDecimal
	MaxSpent  decimal.NullDecimal
	LastVisit Date
	Tags      []string
}
