package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"foodcourt/backend"
	"foodcourt/session"
	"foodcourt/storefront-svc/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// AuthService stores role markers in the session. Tokens from the backend are
// kept but never verified here.
type AuthService struct {
	backend        AuthBackend
	registerRemote bool
	logger         *zap.Logger
}

// NewAuthService registers signups with the backend only when registerRemote
// is set.
func NewAuthService(b AuthBackend, registerRemote bool, logger *zap.Logger) *AuthService {
	return &AuthService{backend: b, registerRemote: registerRemote, logger: logger}
}

func backendError(err error) error {
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) &&
		(statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusBadRequest) {
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, statusErr.Message)
	}
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}

func (s *AuthService) remember(ctx context.Context, sess Session, userType, userName string) error {
	if err := sess.Set(ctx, session.KeyUserType, userType); err != nil {
		return err
	}
	return sess.Set(ctx, session.KeyUserName, userName)
}

func (s *AuthService) Signup(ctx context.Context, sess Session, req domain.SignupRequest) (*domain.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.registerRemote {
		_, err := s.backend.Register(ctx, backend.RegisterRequest{
			Name:     req.DisplayName(),
			Email:    req.Email,
			Password: req.Password,
			PhoneNo:  req.Phone,
			Role:     req.UserType,
		})
		if err != nil {
			s.logger.Warn("registration failed", zap.String("email", req.Email), zap.Error(err))
			return nil, backendError(err)
		}
	}

	if err := s.remember(ctx, sess, req.UserType, req.DisplayName()); err != nil {
		return nil, err
	}
	s.logger.Info("user signed up", zap.String("user_type", req.UserType))
	return &domain.AuthResult{
		UserType: req.UserType,
		UserName: req.DisplayName(),
		Redirect: domain.RedirectFor(req.UserType),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, sess Session, req domain.LoginRequest) (*domain.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.backend.Login(ctx, backend.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		s.logger.Warn("login failed", zap.String("email", req.Email), zap.Error(err))
		return nil, backendError(err)
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return nil, err
	}
	if err := sess.Set(ctx, session.KeyAccessToken, resp.AccessToken); err != nil {
		return nil, err
	}
	if err := sess.Set(ctx, session.KeyUser, string(userJSON)); err != nil {
		return nil, err
	}

	userType := domain.UserTypeCustomer
	if session.ParseRole(resp.User.Role) == session.RoleOwner {
		userType = domain.UserTypeOwner
	}
	name := resp.User.Name
	if name == "" {
		name = resp.User.Email
	}
	if err := s.remember(ctx, sess, userType, name); err != nil {
		return nil, err
	}

	return &domain.AuthResult{
		UserType: userType,
		UserName: name,
		Redirect: domain.RedirectFor(userType),
	}, nil
}

// Logout forgets the signed-in user, their backend token and the cart. The
// dark-mode preference survives.
func (s *AuthService) Logout(ctx context.Context, sess Session) error {
	return sess.Delete(ctx,
		session.KeyUserType,
		session.KeyUserName,
		session.KeyCart,
		session.KeyAccessToken,
		session.KeyUser)
}

func (s *AuthService) DarkMode(ctx context.Context, sess Session) bool {
	v, _, _ := sess.Get(ctx, session.KeyDarkMode)
	return v == "true"
}

func (s *AuthService) ToggleDarkMode(ctx context.Context, sess Session) (bool, error) {
	next := !s.DarkMode(ctx, sess)
	value := "false"
	if next {
		value = "true"
	}
	if err := sess.Set(ctx, session.KeyDarkMode, value); err != nil {
		return false, err
	}
	return next, nil
}
