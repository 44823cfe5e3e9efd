package form

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/validation"
)

type formTestSuite struct {
	suite.Suite
	validator *validation.Validator
}

func (s *formTestSuite) SetupSuite() {
	s.validator = validation.MustNew()
}

func (s *formTestSuite) violations(err error) *apperrors.ValidationErr {
	var vErr *apperrors.ValidationErr
	s.Require().True(errors.As(err, &vErr), "error must be validation error, got %v", err)
	return vErr
}

func (s *formTestSuite) TestCustomerRequiredFields() {
	s.T().Log("blank customer form reports name, email and phone")
	{
		_, err := Customer{}.Model(s.validator)
		vErr := s.violations(err)
		s.Require().NotEmpty(vErr.Field("name"))
		s.Require().NotEmpty(vErr.Field("email"))
		s.Require().NotEmpty(vErr.Field("phone"))
	}

	s.T().Log("malformed email and negative spend are reported together")
	{
		f := Customer{Name: "John", Email: "john-at-mail", Phone: "123", TotalSpent: "-5", VisitCount: "x"}
		_, err := f.Model(s.validator)
		vErr := s.violations(err)
		s.Require().NotEmpty(vErr.Field("email"))
		s.Require().NotEmpty(vErr.Field("totalSpent"))
		s.Require().NotEmpty(vErr.Field("visitCount"))
		s.Require().Empty(vErr.Field("name"))
	}
}

func (s *formTestSuite) TestCustomerRoundTrip() {
	c := model.Customer{
		ID:         "c1",
		Name:       "John Doe",
		Email:      "john@somemail.com",
		Phone:      "+1 555 0100",
		TotalSpent: decimal.RequireFromString("1250.50"),
		VisitCount: 7,
		LastVisit:  model.NewDate(2024, 3, 15),
		Tags:       []string{"VIP", "Regular"},
	}

	s.T().Log("editing loaded customer without changes submits the same customer")
	{
		f := FromCustomer(c)
		s.Require().True(f.Editing())
		s.Require().True(f.HasTag("VIP"))

		got, err := f.Model(s.validator)
		s.Require().NoError(err)
		s.Require().True(c.TotalSpent.Equal(got.TotalSpent))
		got.TotalSpent = c.TotalSpent
		s.Require().Equal(c, got)
	}
}

func (s *formTestSuite) TestCustomerFilter() {
	s.T().Log("bounds are parsed and inverted bounds are rejected")
	{
		filter, err := CustomerFilter{MinSpent: "100", Tags: []string{"VIP", " VIP", ""}}.Model()
		s.Require().NoError(err)
		s.Require().True(filter.MinSpent.Valid)
		s.Require().False(filter.MaxSpent.Valid)
		s.Require().Equal([]string{"VIP"}, filter.Tags)

		_, err = CustomerFilter{MinSpent: "100", MaxSpent: "10"}.Model()
		s.Require().NotEmpty(s.violations(err).Field("maxSpent"))
	}
}

func (s *formTestSuite) TestCampaignDefaultsAndDates() {
	s.T().Log("blank campaign defaults to email draft")
	{
		f := NewCampaign()
		s.Require().Equal("email", f.Type)
		s.Require().Equal("draft", f.Status)
		s.Require().False(f.Editing())
	}

	s.T().Log("end date before start date is rejected")
	{
		f := NewCampaign()
		f.Name = "Spring sale"
		f.Description = "Discounts"
		f.StartDate = "2024-04-10"
		f.EndDate = "2024-04-01"
		f.TargetSegment = "s1"
		f.Budget = "100"

		_, err := f.Model(s.validator)
		vErr := s.violations(err)
		s.Require().NotEmpty(vErr.Field("endDate"))
		s.Require().Len(vErr.Violations(), 1)
	}

	s.T().Log("unknown type and status are rejected")
	{
		f := Campaign{Name: "n", Description: "d", Type: "fax", Status: "done", StartDate: "2024-01-01", EndDate: "2024-01-01", TargetSegment: "s1", Budget: "0"}
		_, err := f.Model(s.validator)
		vErr := s.violations(err)
		s.Require().NotEmpty(vErr.Field("type"))
		s.Require().NotEmpty(vErr.Field("status"))
	}
}

func (s *formTestSuite) TestCampaignKeepsMetrics() {
	c := model.Campaign{
		ID:            "k1",
		Name:          "Spring sale",
		Description:   "Discounts",
		Type:          model.CampaignTypeSMS,
		Status:        model.CampaignStatusActive,
		StartDate:     model.NewDate(2024, 4, 1),
		EndDate:       model.NewDate(2024, 4, 30),
		TargetSegment: model.SegmentRef{ID: "s1", Name: "VIPs"},
		Budget:        decimal.RequireFromString("500"),
		Metrics:       model.CampaignMetrics{Sent: 10, Delivered: 9},
	}

	got, err := FromCampaign(c).Model(s.validator)
	s.Require().NoError(err)
	s.Require().Equal(c.Metrics, got.Metrics)
	s.Require().Equal("s1", got.TargetSegment.ID)
	s.Require().True(c.Budget.Equal(got.Budget))
}

func (s *formTestSuite) TestSegmentBuilder() {
	s.T().Log("blank segment has single total spent rule")
	{
		f := NewSegment()
		s.Require().Equal([]model.Rule{{Field: "totalSpent", Operator: "greaterThan"}}, f.Rules())
	}

	s.T().Log("rules can be added and removed by index")
	{
		f := NewSegment()
		f.AddRule()
		f.RuleValues = []string{"100", "200"}
		f.RemoveRule(0)
		s.Require().Equal([]model.Rule{{Field: "totalSpent", Operator: "greaterThan", Value: "200"}}, f.Rules())

		f.RemoveRule(5)
		s.Require().Len(f.Rules(), 1)
	}

	s.T().Log("field violations and rule violations are reported together")
	{
		f := Segment{
			RuleLogic:     "AND",
			RuleFields:    []string{"totalSpent", "age"},
			RuleOperators: []string{"greaterThan", "equals"},
			RuleValues:    []string{"abc", "3"},
		}
		_, _, err := f.Model(s.validator)
		vErr := s.violations(err)
		s.Require().NotEmpty(vErr.Field("name"))
		s.Require().NotEmpty(vErr.Rule(0))
		s.Require().NotEmpty(vErr.Rule(1))
	}

	s.T().Log("valid segment compiles to canonical rules")
	{
		f := Segment{
			Name:          "Big spenders",
			Description:   "Spent over 1000",
			RuleLogic:     "or",
			RuleFields:    []string{"totalSpent", "tags"},
			RuleOperators: []string{"greaterThan", "contains"},
			RuleValues:    []string{"1000", "VIP , New"},
		}
		seg, rs, err := f.Model(s.validator)
		s.Require().NoError(err)
		s.Require().Equal(model.RuleLogicOr, seg.RuleLogic)
		s.Require().Len(rs.Rules, 2)
		s.Require().Equal(model.Literal("VIP,New"), seg.Rules[1].Value)
	}
}

func TestFormTestSuite(t *testing.T) {
	suite.Run(t, new(formTestSuite))
}
