package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// NoIndex marks a violation which doesn't belong to a rule
const NoIndex = -1

// Violation describes single invalid field or rule
type Violation struct {
	Target  string `json:"target"`
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// ValidationErr is raised when client-side validation fails
type ValidationErr struct {
	violations []Violation
}

// NewValidationErr builds ValidationErr with single violation
func NewValidationErr(target string, msg string) *ValidationErr {
	e := &ValidationErr{}
	e.Violation(target, NoIndex, msg)
	return e
}

func (e *ValidationErr) Error() string {
	buff := bytes.NewBufferString("")

	for i, v := range e.violations {
		if i > 0 {
			buff.WriteString("\n")
		}
		if v.Index != NoIndex {
			buff.WriteString(fmt.Sprintf("rule #%d (%s): ", v.Index+1, v.Target))
		}
		buff.WriteString(v.Message)
	}

	return buff.String()
}

// Violation appends violation
func (e *ValidationErr) Violation(target string, index int, msg string) {
	e.violations = append(e.violations, Violation{Target: target, Index: index, Message: msg})
}

// Merge appends all violations of other error
func (e *ValidationErr) Merge(other *ValidationErr) {
	if other == nil {
		return
	}
	e.violations = append(e.violations, other.violations...)
}

// Violations returns copy of collected violations
func (e *ValidationErr) Violations() []Violation {
	v := make([]Violation, len(e.violations))
	copy(v, e.violations)
	return v
}

// Field returns first message for the target or empty string
func (e *ValidationErr) Field(target string) string {
	for _, v := range e.violations {
		if v.Target == target && v.Index == NoIndex {
			return v.Message
		}
	}
	return ""
}

// Rule returns first message for the rule with provided index or empty string
func (e *ValidationErr) Rule(index int) string {
	for _, v := range e.violations {
		if v.Index == index {
			return v.Message
		}
	}
	return ""
}

// Empty reports whether no violations were collected
func (e *ValidationErr) Empty() bool {
	return len(e.violations) == 0
}

// OrNil returns nil if there are no violations, so callers can return it as error
func (e *ValidationErr) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []Violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

// NotFoundErr is raised when entity can't be resolved by id
type NotFoundErr struct {
	message string
}

func (e *NotFoundErr) Error() string {
	return e.message
}

// NewNotFoundErr builds NotFoundErr
func NewNotFoundErr(msg string) *NotFoundErr {
	return &NotFoundErr{message: msg}
}

// AuthErr is raised when backend responded with 401
type AuthErr struct {
	Op string
}

func (e *AuthErr) Error() string {
	return fmt.Sprintf("%s - not authenticated", e.Op)
}

// NetworkErr is raised when request failed or no usable response was received
type NetworkErr struct {
	Op      string
	Status  int
	Timeout bool
	Err     error
}

func (e *NetworkErr) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("%s - request timed out", e.Op)
	case e.Status != 0:
		return fmt.Sprintf("%s - backend responded with %d %s", e.Op, e.Status, http.StatusText(e.Status))
	case e.Err != nil:
		return fmt.Sprintf("%s - %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s - request failed", e.Op)
	}
}

func (e *NetworkErr) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same request may succeed later
func (e *NetworkErr) Retryable() bool {
	return e.Timeout || e.Status >= http.StatusInternalServerError
}
