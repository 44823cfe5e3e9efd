package segment

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/umalmyha/crmconsole/internal/model"
)

// Matches reports whether customer satisfies rule.
// Negated operators are exact complements of their positive counterparts.
func (r Rule) Matches(c model.Customer) bool {
	ok := r.matchPositive(c)
	if r.Operator.Negated() {
		return !ok
	}
	return ok
}

func (r Rule) matchPositive(c model.Customer) bool {
	op := r.Operator.positive()

	switch r.Value.kind {
	case KindNumber:
		n := numberOf(r.Field, c)
		if op == OpContains {
			return strings.Contains(n.String(), r.Value.text)
		}
		return compareNumber(op, n, r.Value.number)
	case KindDate:
		d := c.LastVisit
		if d.IsZero() {
			return false
		}
		if op == OpContains {
			return strings.Contains(d.String(), r.Value.text)
		}
		return compareInt(op, d.Compare(r.Value.date))
	case KindTags:
		if op == OpContains {
			return containsAll(c.Tags, r.Value.tags)
		}
		return sameTags(c.Tags, r.Value.tags)
	default:
		return false
	}
}

func numberOf(f Field, c model.Customer) decimal.Decimal {
	if f == FieldVisitCount {
		return decimal.NewFromInt(int64(c.VisitCount))
	}
	return c.TotalSpent
}

func compareNumber(op Operator, actual, expected decimal.Decimal) bool {
	return compareInt(op, actual.Cmp(expected))
}

func compareInt(op Operator, cmp int) bool {
	switch op {
	case OpEquals:
		return cmp == 0
	case OpGreaterThan:
		return cmp > 0
	case OpLessThan:
		return cmp < 0
	default:
		return false
	}
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[strings.TrimSpace(t)] = struct{}{}
	}
	return set
}

func containsAll(have, want []string) bool {
	set := tagSet(have)
	for _, t := range want {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}

func sameTags(have, want []string) bool {
	a, b := tagSet(have), tagSet(want)
	if len(a) != len(b) {
		return false
	}
	for t := range b {
		if _, ok := a[t]; !ok {
			return false
		}
	}
	return true
}

// Matches combines rules: AND requires every rule (no rules match everyone),
// OR requires at least one rule (no rules match nobody).
func (rs RuleSet) Matches(c model.Customer) bool {
	if rs.Logic == model.RuleLogicOr {
		for _, r := range rs.Rules {
			if r.Matches(c) {
				return true
			}
		}
		return false
	}

	for _, r := range rs.Rules {
		if !r.Matches(c) {
			return false
		}
	}
	return true
}

// EstimateSize counts customers of population matching rule set
func EstimateSize(rs RuleSet, population []model.Customer) int {
	n := 0
	for _, c := range population {
		if rs.Matches(c) {
			n++
		}
	}
	return n
}

// Select returns customers of population matching rule set preserving their order
func Select(rs RuleSet, population []model.Customer) []model.Customer {
	matched := make([]model.Customer, 0)
	for _, c := range population {
		if rs.Matches(c) {
			matched = append(matched, c)
		}
	}
	return matched
}
