package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crmconsole/internal/form"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/service"
	"github.com/umalmyha/crmconsole/internal/view"
)

// CustomerHandler serves customers list and customer form
type CustomerHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHandler builds new CustomerHandler
func NewCustomerHandler(customerSvc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

// List renders customers matching filter from query string
func (h *CustomerHandler) List(c echo.Context) error {
	var f form.CustomerFilter
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	content := view.Customers{Filter: f, Tags: model.KnownTags}
	filter, err := f.Model()
	if err != nil {
		return rejected(c, err, "customers", page(c, "Customers", "customers", content))
	}

	res, err := h.customerSvc.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	content.Customers = res.Data
	content.Actionable = res.Actionable()
	p := page(c, "Customers", "customers", content)
	p.Notice = res.Notice
	return c.Render(http.StatusOK, "customers", p)
}

func (h *CustomerHandler) New(c echo.Context) error {
	return h.render(c, http.StatusOK, form.Customer{})
}

func (h *CustomerHandler) Edit(c echo.Context) error {
	cust, err := h.customerSvc.Load(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, form.FromCustomer(cust))
}

// Submit creates customer or updates the one from path
func (h *CustomerHandler) Submit(c echo.Context) error {
	var f form.Customer
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f.ID = c.Param("id")

	if _, err := h.customerSvc.Submit(c.Request().Context(), f); err != nil {
		return rejected(c, err, "customer_form", h.page(c, f))
	}
	return redirect(c, "/customers")
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.customerSvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return redirect(c, "/customers")
}

func (h *CustomerHandler) render(c echo.Context, code int, f form.Customer) error {
	return c.Render(code, "customer_form", h.page(c, f))
}

func (h *CustomerHandler) page(c echo.Context, f form.Customer) view.Page {
	title := "New customer"
	if f.Editing() {
		title = "Edit customer"
	}
	return page(c, title, "customers", view.CustomerForm{Form: f, Tags: model.KnownTags})
}
