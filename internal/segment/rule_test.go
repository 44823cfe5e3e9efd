package segment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/model"
)

func TestCompileReportsEveryMalformedRule(t *testing.T) {
	rules := []model.Rule{
		rule("totalSpent", "greaterThan", "1000"),
		rule("age", "equals", "30"),
		rule("tags", "greaterThan", "VIP"),
		rule("visitCount", "equals", "2.5"),
		rule("lastVisit", "lessThan", "yesterday"),
		rule("totalSpent", "between", "1"),
		rule("totalSpent", "equals", ""),
	}

	_, err := Compile(rules, "AND")
	require.Error(t, err, "malformed rules must be rejected")

	var vErr *apperrors.ValidationErr
	require.True(t, errors.As(err, &vErr), "error must be validation error")

	violations := vErr.Violations()
	require.Len(t, violations, 6, "every malformed rule must be reported")

	expected := []struct {
		index  int
		target string
	}{
		{1, "age"},
		{2, "tags"},
		{3, "visitCount"},
		{4, "lastVisit"},
		{5, "totalSpent"},
		{6, "totalSpent"},
	}
	for i, e := range expected {
		require.Equal(t, e.index, violations[i].Index, "violation %d must name rule index", i)
		require.Equal(t, e.target, violations[i].Target, "violation %d must name rule field", i)
	}
}

func TestCompileLogic(t *testing.T) {
	t.Log("empty logic defaults to AND")
	{
		rs, err := Compile(nil, "")
		require.NoError(t, err)
		require.Equal(t, model.RuleLogicAnd, rs.Logic)
	}

	t.Log("logic is case insensitive")
	{
		rs, err := Compile(nil, "or")
		require.NoError(t, err)
		require.Equal(t, model.RuleLogicOr, rs.Logic)
	}

	t.Log("unknown logic is violation of ruleLogic")
	{
		_, err := Compile(nil, "XOR")
		var vErr *apperrors.ValidationErr
		require.True(t, errors.As(err, &vErr), "error must be validation error")
		require.NotEmpty(t, vErr.Field("ruleLogic"))
	}
}

func TestNewRule(t *testing.T) {
	t.Log("substring rules on scalar fields keep literal as text")
	{
		r, err := NewRule("lastVisit", "contains", "2024-03")
		require.NoError(t, err)
		require.Equal(t, "2024-03", r.Value.String())
	}

	t.Log("tag lists are trimmed and deduplicated")
	{
		r, err := NewRule("tags", "equals", " VIP, New ,VIP,")
		require.NoError(t, err)
		require.Equal(t, model.Literal("VIP,New"), r.Wire().Value)
	}

	t.Log("missing field is reported")
	{
		_, err := NewRule("", "equals", "1")
		require.Error(t, err)
	}
}
