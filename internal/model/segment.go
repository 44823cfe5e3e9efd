package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RuleLogic combines segment rules
type RuleLogic string

const (
	RuleLogicAnd RuleLogic = "AND"
	RuleLogicOr  RuleLogic = "OR"
)

// Literal is rule value as typed by user, backend may send it as string, number, boolean or list
type Literal string

func (l *Literal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*l = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = Literal(s)
	case '[':
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return fmt.Errorf("rule value list must contain strings - %w", err)
		}
		*l = Literal(strings.Join(items, ","))
	case '{':
		return fmt.Errorf("rule value must be a scalar or a list, got object")
	default:
		// numbers and booleans are kept verbatim
		*l = Literal(b)
	}
	return nil
}

// Rule is single segment condition in its wire form
type Rule struct {
	Field    string  `json:"field"`
	Operator string  `json:"operator"`
	Value    Literal `json:"value"`
}

func (r Rule) String() string {
	return fmt.Sprintf("%s %s %s", r.Field, r.Operator, r.Value)
}

// Segment is named set of rules used to target campaigns
type Segment struct {
	ID            string    `json:"_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Rules         []Rule    `json:"rules"`
	RuleLogic     RuleLogic `json:"ruleLogic"`
	CustomerCount int       `json:"customerCount,omitempty"`
}

func (s *Segment) UnmarshalJSON(b []byte) error {
	type plain Segment
	aux := struct {
		*plain
		AltID string `json:"id"`
	}{plain: (*plain)(s)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	if s.ID == "" {
		s.ID = aux.AltID
	}
	return nil
}
