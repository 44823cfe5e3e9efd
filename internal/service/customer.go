package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/umalmyha/crmconsole/internal/form"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/validation"
)

// CustomerService drives customers list and customer form
type CustomerService interface {
	List(context.Context, model.CustomerFilter) (Result[[]model.Customer], error)
	Load(context.Context, string) (model.Customer, error)
	Submit(context.Context, form.Customer) (model.Customer, error)
	Delete(context.Context, string) error
}

type customerService struct {
	backend   CustomerBackend
	validator *validation.Validator
	offline   Offline
}

// NewCustomerService builds CustomerService
func NewCustomerService(backend CustomerBackend, validator *validation.Validator, offline Offline) CustomerService {
	return &customerService{backend: backend, validator: validator, offline: offline}
}

func (s *customerService) List(ctx context.Context, f model.CustomerFilter) (Result[[]model.Customer], error) {
	load := func(ctx context.Context) ([]model.Customer, error) {
		return s.backend.ListCustomers(ctx, f)
	}
	return fetch(ctx, s.offline, customerListName(f), load, sampleCustomers)
}

// customerGroups are remembered responses which include customers
var customerGroups = []string{"customers", "dashboard"}

// customerListName keys remembered responses by filter, so a filtered view never shows unfiltered data
func customerListName(f model.CustomerFilter) string {
	if f.Search == "" && !f.MinSpent.Valid && !f.MaxSpent.Valid && f.LastVisit.IsZero() && len(f.Tags) == 0 {
		return "customers"
	}
	return fmt.Sprintf("customers?search=%s&min=%s&max=%s&lastVisit=%s&tags=%s",
		f.Search, nullString(f.MinSpent.Valid, f.MinSpent.Decimal.String()), nullString(f.MaxSpent.Valid, f.MaxSpent.Decimal.String()),
		f.LastVisit, strings.Join(f.Tags, ","))
}

func nullString(valid bool, s string) string {
	if !valid {
		return ""
	}
	return s
}

func (s *customerService) Load(ctx context.Context, id string) (model.Customer, error) {
	if id == "" {
		return model.Customer{}, nil
	}
	return s.backend.GetCustomer(ctx, id)
}

func (s *customerService) Submit(ctx context.Context, f form.Customer) (model.Customer, error) {
	c, err := f.Model(s.validator)
	if err != nil {
		return model.Customer{}, err
	}

	if c.ID == "" {
		c, err = s.backend.CreateCustomer(ctx, c)
	} else {
		c, err = s.backend.UpdateCustomer(ctx, c)
	}
	if err != nil {
		return model.Customer{}, err
	}

	s.offline.forget(ctx, customerGroups...)
	return c, nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	s.offline.forget(ctx, customerGroups...)
	return nil
}
