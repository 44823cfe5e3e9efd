package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/form"
	"github.com/umalmyha/crmconsole/internal/model"
	"github.com/umalmyha/crmconsole/internal/session"
	"github.com/umalmyha/crmconsole/internal/validation"
)

// AuthService signs operators in and out
type AuthService interface {
	Login(context.Context, form.Login) (model.User, error)
	Signup(context.Context, form.Signup) (model.User, error)
	Callback(context.Context, string) (model.User, error)
	Restore(context.Context) (bool, error)
	Logout(context.Context) error
	GoogleLoginURL() string
}

type authService struct {
	backend   AuthBackend
	keeper    SessionKeeper
	validator *validation.Validator
}

// NewAuthService builds AuthService
func NewAuthService(backend AuthBackend, keeper SessionKeeper, validator *validation.Validator) AuthService {
	return &authService{backend: backend, keeper: keeper, validator: validator}
}

func (s *authService) Login(ctx context.Context, f form.Login) (model.User, error) {
	if err := f.Validate(s.validator); err != nil {
		return model.User{}, err
	}

	cr, err := s.backend.Login(ctx, f.Email, f.Password)
	if err != nil {
		return model.User{}, rejected(err, "invalid email or password")
	}
	return s.establish(ctx, cr.Token, cr.User)
}

func (s *authService) Signup(ctx context.Context, f form.Signup) (model.User, error) {
	if err := f.Validate(s.validator); err != nil {
		return model.User{}, err
	}

	cr, err := s.backend.Signup(ctx, f.Name, f.Email, f.Password)
	if err != nil {
		return model.User{}, rejected(err, "account can't be created")
	}
	return s.establish(ctx, cr.Token, cr.User)
}

// Callback completes OAuth sign in, backend hands token back after successful consent
func (s *authService) Callback(ctx context.Context, token string) (model.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.User{}, apperrors.NewValidationErr("", "sign in was not completed")
	}
	return s.establish(ctx, token, nil)
}

// Restore probes backend session for requests carrying backend credentials without known user
func (s *authService) Restore(ctx context.Context) (bool, error) {
	u, err := s.backend.CurrentUser(ctx)
	if err != nil {
		var authErr *apperrors.AuthErr
		if errors.As(err, &authErr) {
			return false, nil
		}
		return false, err
	}

	if u.ID == "" && u.Email == "" {
		return false, nil
	}
	return true, s.keeper.Establish(ctx, "", u)
}

// Logout ends backend session, local session is cleared even if backend is unreachable
func (s *authService) Logout(ctx context.Context) error {
	if err := s.backend.Logout(ctx); err != nil {
		logrus.Warnf("backend logout failed, clearing local session anyway - %v", err)
	}
	return s.keeper.Clear(ctx, "")
}

func (s *authService) GoogleLoginURL() string {
	return s.backend.GoogleLoginURL()
}

// establish probes current session with fresh credentials and stores the user.
// User returned along with credentials is used only if backend is unreachable or probe yields nothing.
func (s *authService) establish(ctx context.Context, token string, fallback *model.User) (model.User, error) {
	s.keeper.Authorize(ctx, token)

	u, err := s.backend.CurrentUser(ctx)
	if err != nil {
		if fallback == nil || !isNetworkErr(err) {
			return model.User{}, rejected(err, "sign in failed, please try again")
		}
		logrus.Warnf("current session probe failed, using user returned on sign in - %v", err)
		u = *fallback
	}

	if u.ID == "" && u.Email == "" {
		if fallback == nil {
			return model.User{}, apperrors.NewValidationErr("", "sign in failed, please try again")
		}
		u = *fallback
	}

	if err := s.keeper.Establish(ctx, token, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func isNetworkErr(err error) bool {
	var netErr *apperrors.NetworkErr
	return errors.As(err, &netErr)
}

// rejected turns authentication failure into form violation, so it is shown on the form
func rejected(err error, msg string) error {
	var authErr *apperrors.AuthErr
	if errors.As(err, &authErr) {
		return apperrors.NewValidationErr("", msg)
	}
	return err
}

var _ SessionKeeper = (*session.Manager)(nil)
