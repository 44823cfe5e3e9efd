// Package segment evaluates segment rules against customers.
//
// Rules are validated and coerced to the type of their field when compiled, so evaluation
// itself can't fail: a compiled RuleSet is a total predicate over customers.
package segment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/model"
)

// Field is customer attribute rule is applied to
type Field string

const (
	FieldTotalSpent Field = "totalSpent"
	FieldVisitCount Field = "visitCount"
	FieldLastVisit  Field = "lastVisit"
	FieldTags       Field = "tags"
)

// Fields lists supported fields in display order
var Fields = []Field{FieldTotalSpent, FieldVisitCount, FieldLastVisit, FieldTags}

// Kind is declared type of field
type Kind int

const (
	KindNumber Kind = iota + 1
	KindDate
	KindTags
)

var fieldKinds = map[Field]Kind{
	FieldTotalSpent: KindNumber,
	FieldVisitCount: KindNumber,
	FieldLastVisit:  KindDate,
	FieldTags:       KindTags,
}

// Kind returns declared type of field, zero for unknown fields
func (f Field) Kind() Kind {
	return fieldKinds[f]
}

// Label is human readable field name
func (f Field) Label() string {
	switch f {
	case FieldTotalSpent:
		return "Total Spent"
	case FieldVisitCount:
		return "Visit Count"
	case FieldLastVisit:
		return "Last Visit"
	case FieldTags:
		return "Tags"
	default:
		return string(f)
	}
}

// Operator compares field with rule value
type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "notEquals"
	OpGreaterThan Operator = "greaterThan"
	OpLessThan    Operator = "lessThan"
	OpContains    Operator = "contains"
	OpNotContains Operator = "notContains"
)

// Operators lists supported operators in display order
var Operators = []Operator{OpEquals, OpNotEquals, OpGreaterThan, OpLessThan, OpContains, OpNotContains}

func (o Operator) known() bool {
	switch o {
	case OpEquals, OpNotEquals, OpGreaterThan, OpLessThan, OpContains, OpNotContains:
		return true
	default:
		return false
	}
}

// Negated reports whether operator is complement of another one
func (o Operator) Negated() bool {
	return o == OpNotEquals || o == OpNotContains
}

// positive maps negated operator to its counterpart
func (o Operator) positive() Operator {
	switch o {
	case OpNotEquals:
		return OpEquals
	case OpNotContains:
		return OpContains
	default:
		return o
	}
}

func (o Operator) ordering() bool {
	return o == OpGreaterThan || o == OpLessThan
}

func (o Operator) substring() bool {
	return o == OpContains || o == OpNotContains
}

// Label is human readable operator name
func (o Operator) Label() string {
	switch o {
	case OpEquals:
		return "Equals"
	case OpNotEquals:
		return "Not Equals"
	case OpGreaterThan:
		return "Greater Than"
	case OpLessThan:
		return "Less Than"
	case OpContains:
		return "Contains"
	case OpNotContains:
		return "Not Contains"
	default:
		return string(o)
	}
}

// Value is rule literal coerced to the type of its field.
// Exactly one of number, date and tags is meaningful depending on kind, text is set for substring rules.
type Value struct {
	kind   Kind
	number decimal.Decimal
	date   model.Date
	tags   []string
	text   string
}

// String returns canonical form of the value
func (v Value) String() string {
	switch {
	case v.text != "":
		return v.text
	case v.kind == KindNumber:
		return v.number.String()
	case v.kind == KindDate:
		return v.date.String()
	case v.kind == KindTags:
		return strings.Join(v.tags, ",")
	default:
		return ""
	}
}

// Rule is compiled segment condition
type Rule struct {
	Field    Field
	Operator Operator
	Value    Value
}

func (r Rule) String() string {
	return fmt.Sprintf("%s %s %s", r.Field, r.Operator, r.Value)
}

// Wire returns rule in its wire form
func (r Rule) Wire() model.Rule {
	return model.Rule{Field: string(r.Field), Operator: string(r.Operator), Value: model.Literal(r.Value.String())}
}

// NewRule validates and compiles single rule
func NewRule(field, operator, literal string) (Rule, error) {
	r, msg := compileRule(field, operator, literal)
	if msg != "" {
		return Rule{}, apperrors.NewValidationErr(field, msg)
	}
	return r, nil
}

func compileRule(rawField, rawOperator, literal string) (Rule, string) {
	field := Field(strings.TrimSpace(rawField))
	op := Operator(strings.TrimSpace(rawOperator))
	literal = strings.TrimSpace(literal)

	kind := field.Kind()
	if kind == 0 {
		if field == "" {
			return Rule{}, "field is required"
		}
		return Rule{}, fmt.Sprintf("unknown field %q", field)
	}

	if !op.known() {
		if op == "" {
			return Rule{}, "operator is required"
		}
		return Rule{}, fmt.Sprintf("unknown operator %q", op)
	}

	if op.ordering() && kind == KindTags {
		return Rule{}, fmt.Sprintf("operator %s can't be applied to %s, it is not orderable", op, field)
	}

	if literal == "" {
		return Rule{}, "value is required"
	}

	r := Rule{Field: field, Operator: op, Value: Value{kind: kind}}

	if op.substring() && kind != KindTags {
		r.Value.text = literal
		return r, ""
	}

	switch kind {
	case KindNumber:
		n, msg := parseNumber(field, literal)
		if msg != "" {
			return Rule{}, msg
		}
		r.Value.number = n
	case KindDate:
		d, err := model.ParseDate(literal)
		if err != nil {
			return Rule{}, err.Error()
		}
		r.Value.date = d
	case KindTags:
		tags := splitTags(literal)
		if len(tags) == 0 {
			return Rule{}, "value is required"
		}
		r.Value.tags = tags
	}

	return r, ""
}

func parseNumber(field Field, literal string) (decimal.Decimal, string) {
	if field == FieldVisitCount {
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return decimal.Zero, fmt.Sprintf("%q is not a whole number", literal)
		}
		return decimal.NewFromInt(n), ""
	}

	n, err := decimal.NewFromString(literal)
	if err != nil {
		return decimal.Zero, fmt.Sprintf("%q is not a number", literal)
	}
	return n, ""
}

func splitTags(literal string) []string {
	parts := strings.Split(literal, ",")
	tags := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		tags = append(tags, p)
	}
	return tags
}
