package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
)

// Validator validates structs and reports violations with translated messages
type Validator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// New builds Validator with english translations, violations are named after form tags
func New() (*Validator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("missing en translations")
	}

	v := validator.New()
	v.RegisterTagNameFunc(fieldName)

	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register translations - %w", err)
	}

	return &Validator{validator: v, translator: trans}, nil
}

// MustNew is like New but panics on error
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// Struct validates i, returns *errors.ValidationErr if validation failed
func (v *Validator) Struct(i any) error {
	vErr := v.Collect(i)
	if vErr == nil {
		return nil
	}
	return vErr
}

// Collect validates i and returns violations to be merged with other checks.
// Nil is returned if there are no violations.
func (v *Validator) Collect(i any) *apperrors.ValidationErr {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperrors.NewValidationErr("", err.Error())
	}

	vErr := &apperrors.ValidationErr{}
	for _, e := range ve {
		vErr.Violation(e.Field(), apperrors.NoIndex, e.Translate(v.translator))
	}
	return vErr
}

// Validate implements echo.Validator
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}
