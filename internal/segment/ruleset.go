package segment

import (
	"fmt"
	"strings"

	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/model"
)

// RuleSet is ordered rules combined with AND or OR
type RuleSet struct {
	Rules []Rule
	Logic model.RuleLogic
}

// ParseLogic validates logic, empty logic defaults to AND
func ParseLogic(raw string) (model.RuleLogic, error) {
	switch model.RuleLogic(strings.ToUpper(strings.TrimSpace(raw))) {
	case "", model.RuleLogicAnd:
		return model.RuleLogicAnd, nil
	case model.RuleLogicOr:
		return model.RuleLogicOr, nil
	default:
		return "", fmt.Errorf("unknown rule logic %q, expected AND or OR", raw)
	}
}

// Compile validates every rule and the logic. All violations are reported at once,
// each one carries index of the offending rule and its field.
func Compile(rules []model.Rule, logic string) (RuleSet, error) {
	vErr := &apperrors.ValidationErr{}

	l, err := ParseLogic(logic)
	if err != nil {
		vErr.Violation("ruleLogic", apperrors.NoIndex, err.Error())
	}

	compiled := make([]Rule, 0, len(rules))
	for i, raw := range rules {
		r, msg := compileRule(raw.Field, raw.Operator, string(raw.Value))
		if msg != "" {
			target := raw.Field
			if target == "" {
				target = "field"
			}
			vErr.Violation(target, i, msg)
			continue
		}
		compiled = append(compiled, r)
	}

	if err := vErr.OrNil(); err != nil {
		return RuleSet{}, err
	}
	return RuleSet{Rules: compiled, Logic: l}, nil
}

// MustCompile is like Compile but panics on invalid rules
func MustCompile(rules []model.Rule, logic string) RuleSet {
	rs, err := Compile(rules, logic)
	if err != nil {
		panic(err)
	}
	return rs
}

// Wire returns rules in their wire form
func (rs RuleSet) Wire() []model.Rule {
	rules := make([]model.Rule, len(rs.Rules))
	for i, r := range rs.Rules {
		rules[i] = r.Wire()
	}
	return rules
}

// String renders rule set as single readable line
func (rs RuleSet) String() string {
	if len(rs.Rules) == 0 {
		if rs.Logic == model.RuleLogicOr {
			return "no customers"
		}
		return "all customers"
	}

	parts := make([]string, len(rs.Rules))
	for i, r := range rs.Rules {
		parts[i] = r.String()
	}
	return strings.Join(parts, fmt.Sprintf(" %s ", rs.Logic))
}
