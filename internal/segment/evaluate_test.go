package segment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/crmconsole/internal/model"
)

func customer(spent string, visits int, lastVisit string, tags ...string) model.Customer {
	d, err := model.ParseDate(lastVisit)
	if err != nil {
		panic(err)
	}
	return model.Customer{
		Name:       "customer " + spent,
		Email:      "customer@somemail.com",
		TotalSpent: decimal.RequireFromString(spent),
		VisitCount: visits,
		LastVisit:  d,
		Tags:       tags,
	}
}

func rule(field, operator, value string) model.Rule {
	return model.Rule{Field: field, Operator: operator, Value: model.Literal(value)}
}

type evaluateTestSuite struct {
	suite.Suite
	population []model.Customer
}

func (s *evaluateTestSuite) SetupTest() {
	s.population = []model.Customer{
		customer("500", 2, "2024-03-13", "Regular"),
		customer("1500", 10, "2024-03-15", "VIP", "Regular"),
		customer("2500", 1, "2024-03-14", "New"),
		customer("0", 0, ""),
	}
}

func (s *evaluateTestSuite) TestGreaterThanBoundary() {
	rs := MustCompile([]model.Rule{rule("totalSpent", "greaterThan", "1000")}, "AND")

	s.T().Log("greater than 1000 matches 1000.01 and excludes 1000.00")
	{
		s.Require().True(rs.Matches(customer("1000.01", 0, "")), "1000.01 must match")
		s.Require().False(rs.Matches(customer("1000.00", 0, "")), "1000.00 must not match")
	}
}

func (s *evaluateTestSuite) TestEstimateSizeSpendScenario() {
	rs := MustCompile([]model.Rule{rule("totalSpent", "greaterThan", "1000")}, "AND")
	population := []model.Customer{
		customer("500", 0, ""),
		customer("1500", 0, ""),
		customer("2500", 0, ""),
	}

	s.T().Log("two of three customers spent more than 1000")
	{
		s.Require().Equal(2, EstimateSize(rs, population))
	}
}

func (s *evaluateTestSuite) TestEstimateSizeOrScenario() {
	rs := MustCompile([]model.Rule{
		rule("tags", "contains", "VIP"),
		rule("totalSpent", "greaterThan", "5000"),
	}, "OR")

	vip := customer("100", 0, "", "VIP")
	bigSpender := customer("6000", 0, "")
	nobody := customer("10", 0, "")
	population := []model.Customer{vip, bigSpender, nobody}

	s.T().Log("VIP or spent more than 5000 matches first two customers")
	{
		s.Require().Equal(2, EstimateSize(rs, population))
		s.Require().Equal([]model.Customer{vip, bigSpender}, Select(rs, population))
	}
}

func (s *evaluateTestSuite) TestEmptyRuleSet() {
	and := MustCompile(nil, "AND")
	or := MustCompile(nil, "OR")

	s.T().Log("no rules: AND matches everyone, OR matches nobody")
	{
		s.Require().Equal(len(s.population), EstimateSize(and, s.population))
		s.Require().Equal(0, EstimateSize(or, s.population))
	}
}

func (s *evaluateTestSuite) TestCombinatorsAgreeWithSingleRules() {
	rules := []model.Rule{
		rule("totalSpent", "greaterThan", "400"),
		rule("visitCount", "lessThan", "5"),
		rule("tags", "notContains", "New"),
	}
	and := MustCompile(rules, "AND")
	or := MustCompile(rules, "OR")

	for _, c := range s.population {
		all, some := true, false
		for _, r := range and.Rules {
			ok := r.Matches(c)
			all = all && ok
			some = some || ok
		}

		s.Require().Equal(all, and.Matches(c), "AND must hold iff every rule holds for %s", c.Name)
		s.Require().Equal(some, or.Matches(c), "OR must hold iff some rule holds for %s", c.Name)
	}
}

func (s *evaluateTestSuite) TestNegatedOperatorsAreComplements() {
	pairs := [][2]model.Rule{
		{rule("totalSpent", "equals", "1500"), rule("totalSpent", "notEquals", "1500")},
		{rule("visitCount", "equals", "1"), rule("visitCount", "notEquals", "1")},
		{rule("lastVisit", "equals", "2024-03-15"), rule("lastVisit", "notEquals", "2024-03-15")},
		{rule("tags", "equals", "Regular,VIP"), rule("tags", "notEquals", "Regular,VIP")},
		{rule("tags", "contains", "VIP"), rule("tags", "notContains", "VIP")},
		{rule("totalSpent", "contains", "50"), rule("totalSpent", "notContains", "50")},
		{rule("lastVisit", "contains", "2024-03"), rule("lastVisit", "notContains", "2024-03")},
	}

	for _, p := range pairs {
		positive := MustCompile([]model.Rule{p[0]}, "AND")
		negative := MustCompile([]model.Rule{p[1]}, "AND")
		for _, c := range s.population {
			s.Require().NotEqual(positive.Matches(c), negative.Matches(c), "%s vs %s for %s", p[0], p[1], c.Name)
		}
	}
}

func (s *evaluateTestSuite) TestOperatorsPerField() {
	c := customer("1500", 10, "2024-03-15", "VIP", "Regular")

	cases := []struct {
		rule    model.Rule
		matches bool
	}{
		{rule("totalSpent", "equals", "1500.00"), true},
		{rule("totalSpent", "lessThan", "1500"), false},
		{rule("visitCount", "greaterThan", "9"), true},
		{rule("visitCount", "lessThan", "10"), false},
		{rule("lastVisit", "greaterThan", "2024-03-14"), true},
		{rule("lastVisit", "lessThan", "2024-03-15T23:00:00Z"), false},
		{rule("lastVisit", "equals", "2024-03-15T08:30:00Z"), true},
		{rule("lastVisit", "contains", "2024-03"), true},
		{rule("tags", "equals", "VIP, Regular"), true},
		{rule("tags", "equals", "VIP"), false},
		{rule("tags", "contains", "VIP"), true},
		{rule("tags", "contains", "VIP,New"), false},
		{rule("totalSpent", "contains", "50"), true},
	}

	for _, tc := range cases {
		rs := MustCompile([]model.Rule{tc.rule}, "AND")
		s.Require().Equal(tc.matches, rs.Matches(c), "rule %s", tc.rule)
	}
}

func (s *evaluateTestSuite) TestMissingLastVisit() {
	c := customer("10", 0, "")

	s.T().Log("customer without last visit never satisfies positive date rules")
	{
		for _, op := range []string{"equals", "greaterThan", "lessThan"} {
			rs := MustCompile([]model.Rule{rule("lastVisit", op, "2024-01-01")}, "AND")
			s.Require().False(rs.Matches(c), "operator %s", op)
		}
		rs := MustCompile([]model.Rule{rule("lastVisit", "notEquals", "2024-01-01")}, "AND")
		s.Require().True(rs.Matches(c))
	}
}

func (s *evaluateTestSuite) TestEstimateSizeIsOrderIndependent() {
	rules := []model.Rule{
		rule("tags", "contains", "Regular"),
		rule("totalSpent", "greaterThan", "100"),
		rule("lastVisit", "greaterThan", "2024-03-12"),
	}
	reversedRules := []model.Rule{rules[2], rules[1], rules[0]}

	reversedPopulation := make([]model.Customer, len(s.population))
	for i, c := range s.population {
		reversedPopulation[len(s.population)-1-i] = c
	}

	for _, logic := range []string{"AND", "OR"} {
		rs := MustCompile(rules, logic)
		expected := EstimateSize(rs, s.population)

		s.Require().Equal(expected, EstimateSize(rs, s.population), "estimate must be idempotent")
		s.Require().Equal(expected, EstimateSize(rs, reversedPopulation), "population order must not matter")
		s.Require().Equal(expected, EstimateSize(MustCompile(reversedRules, logic), s.population), "rule order must not matter")
	}
}

func TestEvaluateTestSuite(t *testing.T) {
	suite.Run(t, new(evaluateTestSuite))
}
