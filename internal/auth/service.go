package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JRGCaponde/peixaria-backend/internal/store"
	pkgAuth "github.com/JRGCaponde/peixaria-backend/pkg/auth"
	"github.com/JRGCaponde/peixaria-backend/pkg/config"
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
	"github.com/JRGCaponde/peixaria-backend/pkg/security"
)

// One message for every failure mode so the response never leaks whether
// the email or the password was wrong.
const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error)
	Logout(ctx context.Context)
}

type service struct {
	store       *store.Store
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Store          *store.Store
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &service{
		store:       params.Store,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	var ok bool
	switch req.Profile {
	case string(enums.ActorKindAdmin):
		ok = s.store.LoginAdmin(email, req.Password)
	case string(enums.ActorKindStaff):
		ok = s.store.LoginStaff(email, req.Password)
	case string(enums.ActorKindCustomer):
		ok = s.store.LoginCustomer(email, req.Password)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown login profile")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	return s.respond()
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if _, exists := s.store.FindCustomerByEmail(email); exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	s.store.AddCustomer(models.Customer{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Phone:        req.Phone,
		JoinDate:     time.Now(),
	})

	if !s.store.LoginCustomer(email, req.Password) {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "registered account failed verification")
	}

	return s.respond()
}

func (s *service) Logout(ctx context.Context) {
	s.store.Logout()
}

// respond mints a token for whatever identity the store now holds.
func (s *service) respond() (*LoginResponse, error) {
	sess := s.store.Session()

	payload := pkgAuth.AccessTokenPayload{ActorKind: sess.Kind}
	switch sess.Kind {
	case enums.ActorKindAdmin:
		payload.ActorID = sess.AdminEmail
		payload.Email = sess.AdminEmail
	case enums.ActorKindStaff:
		payload.ActorID = sess.Staff.ID.String()
		payload.Name = sess.Staff.Name
		payload.Email = sess.Staff.Email
	case enums.ActorKindCustomer:
		payload.ActorID = sess.Customer.ID.String()
		payload.Name = sess.Customer.Name
		payload.Email = sess.Customer.Email
	default:
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "no active identity after login")
	}

	token, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now(), payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	return &LoginResponse{AccessToken: token, Session: sess}, nil
}
