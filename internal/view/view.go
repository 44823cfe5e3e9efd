// Package view renders console pages from embedded html templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/model"
)

const layoutFile = "templates/layout.html"

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer implements echo.Renderer, every page is executed within shared layout
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses embedded templates
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates - %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, f := range files {
		if f == layoutFile {
			continue
		}

		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s - %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustNewRenderer is like NewRenderer but panics on error
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %s is not defined", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Page is data of every rendered page
type Page struct {
	Title   string
	Section string
	User    *model.User
	// Notice is non-blocking banner, e.g. stale data or expired session
	Notice string
	// Error is blocking message shown above the form, form state is preserved
	Error   string
	Errors  *apperrors.ValidationErr
	Content interface{}
}

// FieldError returns violation message of form field
func (p Page) FieldError(target string) string {
	if p.Errors == nil {
		return ""
	}
	return p.Errors.Field(target)
}

// RuleError returns violation message of rule row
func (p Page) RuleError(index int) string {
	if p.Errors == nil {
		return ""
	}
	return p.Errors.Rule(index)
}

// FormError returns violations not bound to any field
func (p Page) FormError() string {
	if p.Errors == nil {
		return ""
	}
	return p.Errors.Field("")
}

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return "$" + d.StringFixed(2)
	},
	"date": func(d model.Date) string {
		if d.IsZero() {
			return "Never"
		}
		return d.String()
	},
	"rate": func(part, total int) string {
		if total == 0 {
			return "0.0%"
		}
		return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
	},
	"summary": func(rules []model.Rule, logic model.RuleLogic) string {
		if len(rules) == 0 {
			return "No rules"
		}
		if logic == "" {
			logic = model.RuleLogicAnd
		}

		parts := make([]string, len(rules))
		for i, r := range rules {
			parts[i] = r.String()
		}
		return strings.Join(parts, " "+string(logic)+" ")
	},
	"join": strings.Join,
}
