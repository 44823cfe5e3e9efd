package form

import (
	"errors"
	"strings"

	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/segment"
	"github.com/umalmyha/crmconsole/internal/validation"
)

// Segment is state of segment builder. Rules are submitted as parallel lists of fields,
// operators and values, one entry per rule row.
type Segment struct {
	ID            string
	Name          string   `form:"name" validate:"required"`
	Description   string   `form:"description" validate:"required"`
	RuleLogic     string   `form:"ruleLogic" validate:"omitempty,oneof=AND OR"`
	RuleFields    []string `form:"ruleField"`
	RuleOperators []string `form:"ruleOperator"`
	RuleValues    []string `form:"ruleValue"`
	CustomerCount int
}

// NewSegment is blank segment form with single blank rule
func NewSegment() Segment {
	f := Segment{RuleLogic: string(model.RuleLogicAnd)}
	f.AddRule()
	return f
}

// FromSegment fills form with segment being edited
func FromSegment(s model.Segment) Segment {
	f := Segment{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		RuleLogic:     string(s.RuleLogic),
		CustomerCount: s.CustomerCount,
	}
	if f.RuleLogic == "" {
		f.RuleLogic = string(model.RuleLogicAnd)
	}
	f.SetRules(s.Rules)
	return f
}

// Editing reports whether form edits existing segment
func (f Segment) Editing() bool {
	return f.ID != ""
}

// Rules zips submitted rule rows, rows with missing parts are kept with empty parts
func (f Segment) Rules() []model.Rule {
	n := len(f.RuleFields)
	if len(f.RuleOperators) > n {
		n = len(f.RuleOperators)
	}
	if len(f.RuleValues) > n {
		n = len(f.RuleValues)
	}

	rules := make([]model.Rule, n)
	for i := range rules {
		rules[i] = model.Rule{
			Field:    at(f.RuleFields, i),
			Operator: at(f.RuleOperators, i),
			Value:    model.Literal(at(f.RuleValues, i)),
		}
	}
	return rules
}

// SetRules replaces rule rows
func (f *Segment) SetRules(rules []model.Rule) {
	f.RuleFields = make([]string, len(rules))
	f.RuleOperators = make([]string, len(rules))
	f.RuleValues = make([]string, len(rules))
	for i, r := range rules {
		f.RuleFields[i] = r.Field
		f.RuleOperators[i] = r.Operator
		f.RuleValues[i] = string(r.Value)
	}
}

// AddRule appends blank "total spent greater than" rule row
func (f *Segment) AddRule() {
	f.SetRules(append(f.Rules(), model.Rule{
		Field:    string(segment.FieldTotalSpent),
		Operator: string(segment.OpGreaterThan),
	}))
}

// RemoveRule drops rule row by index, out of range index is ignored
func (f *Segment) RemoveRule(index int) {
	rules := f.Rules()
	if index < 0 || index >= len(rules) {
		return
	}
	f.SetRules(append(rules[:index], rules[index+1:]...))
}

// RuleSet compiles submitted rules, used by preview which doesn't need name and description
func (f Segment) RuleSet() (segment.RuleSet, error) {
	return segment.Compile(f.Rules(), f.RuleLogic)
}

// Model validates form, compiles its rules and converts it to segment entity.
// Returned error is *errors.ValidationErr, rule violations carry index of the rule row.
func (f Segment) Model(v *validation.Validator) (model.Segment, segment.RuleSet, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.RuleLogic = strings.ToUpper(strings.TrimSpace(f.RuleLogic))

	vErr := &apperrors.ValidationErr{}
	vErr.Merge(v.Collect(&f))

	rs, err := f.RuleSet()
	if err != nil {
		if !mergeViolations(vErr, err) {
			return model.Segment{}, segment.RuleSet{}, err
		}
	}

	if err := vErr.OrNil(); err != nil {
		return model.Segment{}, segment.RuleSet{}, err
	}

	return model.Segment{
		ID:            f.ID,
		Name:          f.Name,
		Description:   f.Description,
		Rules:         rs.Wire(),
		RuleLogic:     rs.Logic,
		CustomerCount: f.CustomerCount,
	}, rs, nil
}

func mergeViolations(vErr *apperrors.ValidationErr, err error) bool {
	var other *apperrors.ValidationErr
	if !errors.As(err, &other) {
		return false
	}
	for _, v := range other.Violations() {
		// logic is already reported by validator
		if v.Index == apperrors.NoIndex && vErr.Field(v.Target) != "" {
			continue
		}
		vErr.Violation(v.Target, v.Index, v.Message)
	}
	return true
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
