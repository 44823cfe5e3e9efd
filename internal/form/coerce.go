// Package form holds editable field state of console forms.
//
// Field values are kept as submitted by the browser so that an invalid form can be rendered back
// unchanged; conversion to entities happens on submit and reports every problem at once.
package form

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/model"
)

// coercer converts raw field values collecting violations
type coercer struct {
	vErr *apperrors.ValidationErr
}

func newCoercer(vErr *apperrors.ValidationErr) *coercer {
	if vErr == nil {
		vErr = &apperrors.ValidationErr{}
	}
	return &coercer{vErr: vErr}
}

func (c *coercer) amount(field, raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		c.violate(field, "must be a number")
		return decimal.Zero
	}
	if d.IsNegative() {
		c.violate(field, "must not be negative")
	}
	return d
}

func (c *coercer) optionalAmount(field, raw string) decimal.NullDecimal {
	if strings.TrimSpace(raw) == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: c.amount(field, raw), Valid: true}
}

func (c *coercer) count(field, raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		c.violate(field, "must be a whole number")
		return 0
	}
	if n < 0 {
		c.violate(field, "must not be negative")
	}
	return n
}

func (c *coercer) date(field, raw string) model.Date {
	d, err := model.ParseDate(raw)
	if err != nil {
		c.violate(field, err.Error())
	}
	return d
}

func (c *coercer) violate(field, msg string) {
	if c.vErr.Field(field) != "" {
		return
	}
	c.vErr.Violation(field, apperrors.NoIndex, field+" "+msg)
}

func cleanTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		cleaned = append(cleaned, t)
	}
	return cleaned
}

func amountString(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}
