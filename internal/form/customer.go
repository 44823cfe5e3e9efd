package form

import (
	"strconv"
	"strings"

	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/validation"
)

// Customer is state of customer form
type Customer struct {
	ID         string
	Name       string   `form:"name" validate:"required"`
	Email      string   `form:"email" validate:"required,email"`
	Phone      string   `form:"phone" validate:"required"`
	TotalSpent string   `form:"totalSpent"`
	VisitCount string   `form:"visitCount"`
	LastVisit  string   `form:"lastVisit"`
	Tags       []string `form:"tags"`
}

// FromCustomer fills form with customer being edited
func FromCustomer(c model.Customer) Customer {
	f := Customer{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		TotalSpent: amountString(c.TotalSpent),
		LastVisit:  c.LastVisit.String(),
		Tags:       append([]string(nil), c.Tags...),
	}
	if c.VisitCount > 0 {
		f.VisitCount = strconv.Itoa(c.VisitCount)
	}
	return f
}

// Editing reports whether form edits existing customer
func (f Customer) Editing() bool {
	return f.ID != ""
}

// HasTag reports whether tag is checked
func (f Customer) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Model validates form and converts it to customer entity.
// Returned error is *errors.ValidationErr holding every invalid field.
func (f Customer) Model(v *validation.Validator) (model.Customer, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)

	vErr := &apperrors.ValidationErr{}
	vErr.Merge(v.Collect(&f))

	cr := newCoercer(vErr)
	c := model.Customer{
		ID:         f.ID,
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		TotalSpent: cr.amount("totalSpent", f.TotalSpent),
		VisitCount: cr.count("visitCount", f.VisitCount),
		LastVisit:  cr.date("lastVisit", f.LastVisit),
		Tags:       cleanTags(f.Tags),
	}

	if err := vErr.OrNil(); err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// CustomerFilter is state of customers list filter
type CustomerFilter struct {
	Search    string   `query:"search"`
	MinSpent  string   `query:"minSpent"`
	MaxSpent  string   `query:"maxSpent"`
	LastVisit string   `query:"lastVisit"`
	Tags      []string `query:"tags"`
}

// HasTag reports whether tag is selected
func (f CustomerFilter) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Model converts filter to its typed form, malformed bounds are reported as violations
func (f CustomerFilter) Model() (model.CustomerFilter, error) {
	vErr := &apperrors.ValidationErr{}
	cr := newCoercer(vErr)

	filter := model.CustomerFilter{
		Search:    strings.TrimSpace(f.Search),
		MinSpent:  cr.optionalAmount("minSpent", f.MinSpent),
		MaxSpent:  cr.optionalAmount("maxSpent", f.MaxSpent),
		LastVisit: cr.date("lastVisit", f.LastVisit),
		Tags:      cleanTags(f.Tags),
	}

	if filter.MinSpent.Valid && filter.MaxSpent.Valid && filter.MinSpent.Decimal.GreaterThan(filter.MaxSpent.Decimal) {
		cr.violate("maxSpent", "must not be less than minSpent")
	}

	if err := vErr.OrNil(); err != nil {
		return model.CustomerFilter{}, err
	}
	return filter, nil
}
