// Package api is HTTP client of the CRM backend.
//
// Every call attaches credentials of the session found in the request context and maps backend
// responses onto the error taxonomy: 401 clears the session and gives *errors.AuthErr, 404 gives
// *errors.NotFoundErr, rejected payloads give *errors.ValidationErr and anything else that didn't
// produce a usable response gives *errors.NetworkErr.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
)

const (
	defaultRequestTimeout = 10 * time.Second
	maxResponseBytes      = 8 << 20
)

// Authenticator attaches credentials of current session to outgoing requests and reacts to authentication failures
type Authenticator interface {
	// Attach sets bearer token and backend cookies of current session
	Attach(ctx context.Context, req *http.Request)
	// Remember keeps cookies issued by backend for current session
	Remember(ctx context.Context, res *http.Response)
	// Unauthorized clears current session, called on any 401
	Unauthorized(ctx context.Context)
}

type noAuth struct{}

func (noAuth) Attach(context.Context, *http.Request)    {}
func (noAuth) Remember(context.Context, *http.Response) {}
func (noAuth) Unauthorized(context.Context)             {}

// StaticToken authenticates every request with the same bearer token, used by command line tools
type StaticToken string

func (t StaticToken) Attach(_ context.Context, req *http.Request) {
	if t != "" {
		req.Header.Set("Authorization", "Bearer "+string(t))
	}
}

func (StaticToken) Remember(context.Context, *http.Response) {}
func (StaticToken) Unauthorized(context.Context)             {}

// Config configures Client
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the single gateway to the backend
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	auth    Authenticator
}

// NewClient builds Client, nil authenticator sends anonymous requests
func NewClient(cfg Config, auth Authenticator) *Client {
	if auth == nil {
		auth = noAuth{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
		auth:    auth,
	}
}

// URL resolves backend path, used for redirect based flows
func (c *Client) URL(path string) string {
	return c.url(path, nil)
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// call describes single backend round trip
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	out    any
}

func (c *Client) do(ctx context.Context, cl call) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if cl.body != nil {
		encoded, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s - failed to encode request body - %w", cl.op, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.url(cl.path, cl.query), body)
	if err != nil {
		return fmt.Errorf("%s - failed to build request - %w", cl.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.auth.Attach(ctx, req)

	start := time.Now()
	res, err := c.http.Do(req)
	requestDuration.WithLabelValues(cl.op).Observe(time.Since(start).Seconds())
	if err != nil {
		return c.transportFailure(cl.op, err)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return c.transportFailure(cl.op, err)
	}
	requestsTotal.WithLabelValues(cl.op, outcome(res.StatusCode, false)).Inc()

	if err := c.check(ctx, cl.op, res.StatusCode, payload); err != nil {
		return err
	}
	c.auth.Remember(ctx, res)

	if cl.out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, cl.out); err != nil {
		logrus.WithFields(logrus.Fields{"op": cl.op, "status": res.StatusCode}).Errorf("malformed backend response - %v", err)
		return &apperrors.NetworkErr{Op: cl.op, Err: fmt.Errorf("malformed response - %w", err)}
	}
	return nil
}

func (c *Client) transportFailure(op string, err error) error {
	timeout := isTimeout(err)
	requestsTotal.WithLabelValues(op, outcome(0, timeout)).Inc()
	logrus.WithFields(logrus.Fields{"op": op, "timeout": timeout}).Warnf("backend request failed - %v", err)
	return &apperrors.NetworkErr{Op: op, Timeout: timeout, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Client) check(ctx context.Context, op string, status int, payload []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		logrus.WithField("op", op).Info("backend rejected credentials, session is cleared")
		c.auth.Unauthorized(ctx)
		return &apperrors.AuthErr{Op: op}
	case status == http.StatusNotFound:
		msg := errorMessage(payload)
		if msg == "" {
			msg = "not found"
		}
		return apperrors.NewNotFoundErr(fmt.Sprintf("%s - %s", op, msg))
	case status == http.StatusBadRequest || status == http.StatusConflict || status == http.StatusUnprocessableEntity:
		return validationErr(payload)
	default:
		logrus.WithFields(logrus.Fields{"op": op, "status": status}).Warnf("backend responded with error - %s", errorMessage(payload))
		return &apperrors.NetworkErr{Op: op, Status: status}
	}
}

// errorBody covers error payloads produced by the backend and its validation middleware
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Param   string `json:"param"`
		Path    string `json:"path"`
		Msg     string `json:"msg"`
		Message string `json:"message"`
	} `json:"errors"`
}

func errorMessage(payload []byte) string {
	var body errorBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return strings.TrimSpace(string(payload))
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}

func validationErr(payload []byte) *apperrors.ValidationErr {
	vErr := &apperrors.ValidationErr{}

	var body errorBody
	if err := json.Unmarshal(payload, &body); err == nil {
		for _, e := range body.Errors {
			target := firstNonEmpty(e.Field, e.Param, e.Path)
			vErr.Violation(target, apperrors.NoIndex, firstNonEmpty(e.Msg, e.Message, "is invalid"))
		}
	}

	if vErr.Empty() {
		msg := errorMessage(payload)
		if msg == "" {
			msg = "request was rejected by backend"
		}
		vErr.Violation("", apperrors.NoIndex, msg)
	}
	return vErr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// list decodes either bare array or object holding the array under one of known keys
type list[T any] struct {
	key   string
	items []T
}

func (l *list[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, &l.items)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}
	for _, k := range []string{l.key, "data", "items"} {
		if raw, ok := envelope[k]; ok {
			return json.Unmarshal(raw, &l.items)
		}
	}
	return fmt.Errorf("list response has no %q field", l.key)
}

func (l *list[T]) result() []T {
	if l.items == nil {
		return make([]T, 0)
	}
	return l.items
}
