package view

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/form"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/segment"
)

func TestRenderer(t *testing.T) {
	r := MustNewRenderer()
	user := &model.User{ID: "u1", Name: "Jane"}

	t.Log("unknown template is an error")
	{
		err := r.Render(&bytes.Buffer{}, "missing", Page{}, nil)
		require.Error(t, err)
	}

	t.Log("placeholder rows have no actions and banner is shown")
	{
		var buff bytes.Buffer
		err := r.Render(&buff, "customers", Page{
			Title:   "Customers",
			Section: "customers",
			User:    user,
			Notice:  "showing sample data",
			Content: Customers{
				Customers: []model.Customer{{ID: "c1", Name: "John", TotalSpent: decimal.NewFromInt(1500)}},
				Tags:      model.KnownTags,
			},
		}, nil)
		require.NoError(t, err)
		require.Contains(t, buff.String(), "showing sample data")
		require.Contains(t, buff.String(), "$1500.00")
		require.NotContains(t, buff.String(), "/customers/c1/delete")
		require.Contains(t, buff.String(), "Jane")
	}

	t.Log("live rows offer actions")
	{
		var buff bytes.Buffer
		err := r.Render(&buff, "customers", Page{
			User:    user,
			Content: Customers{Customers: []model.Customer{{ID: "c1", Name: "John"}}, Actionable: true},
		}, nil)
		require.NoError(t, err)
		require.Contains(t, buff.String(), "/customers/c1/delete")
	}

	t.Log("segment builder shows estimate and rule violations")
	{
		f := form.NewSegment()
		f.AddRule()
		size := 42
		vErr := &apperrors.ValidationErr{}
		vErr.Violation("visitCount", 1, "value must be a number")

		var buff bytes.Buffer
		err := r.Render(&buff, "segment_form", Page{
			User:   user,
			Errors: vErr,
			Content: SegmentForm{
				Form:      f,
				Fields:    segment.Fields,
				Operators: segment.Operators,
				Estimate:  &size,
			},
		}, nil)
		require.NoError(t, err)
		require.Contains(t, buff.String(), "Estimated audience size: 42 customers")
		require.Contains(t, buff.String(), "value must be a number")
		require.Equal(t, 2, bytes.Count(buff.Bytes(), []byte(`name="ruleField"`)))
	}

	t.Log("login page is rendered without sidebar")
	{
		var buff bytes.Buffer
		err := r.Render(&buff, "login", Page{Title: "Sign in", Content: Login{}}, nil)
		require.NoError(t, err)
		require.NotContains(t, buff.String(), "/logout")
	}
}
