package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/auth"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/customer"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/domain"
	apperrors "github.com/Loccar-Locadora/Loccar-Auth-API/internal/errors"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/model"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/repository"
)

const bcryptCost = 10

// User-facing envelope messages. MsgUnauthorized covers both the
// unknown-email and wrong-password cases so responses never reveal whether
// an account exists.
const (
	MsgUnauthorized     = "Usuario nao autorizado"
	MsgLoginSuccess     = "Usuario logado com sucesso"
	MsgEmailTaken       = "Ja existe um usuario com esse email"
	MsgRegisterSuccess  = "Usuario cadastrado com sucesso!"
	MsgCustomerRejected = "Erro ao cadastrar locatario"
	MsgLogoutSuccess    = "Logout realizado com sucesso. Remova o token do armazenamento local."
	MsgLoggedOut        = "Usuario deslogado"
	msgUnexpectedPrefix = "Ocorreu um erro inesperado: "
	msgOperationPrefix  = "Erro de operação: "
	msgUpstreamPrefix   = "Erro de comunicação: "
)

// AuthService orchestrates credential verification, token issuance and the
// registration workflow. Every operation resolves to exactly one envelope;
// expected failures never surface as errors.
type AuthService interface {
	Login(ctx context.Context, req domain.LoginRequest) domain.BaseReturn[string]
	Register(ctx context.Context, req domain.RegisterRequest) domain.BaseReturn[*domain.UserData]
	Logout(ctx context.Context) domain.BaseReturn[string]
}

type authService struct {
	repo     repository.AuthRepository
	tokens   *auth.TokenService
	customer customer.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(repo repository.AuthRepository, tokens *auth.TokenService, customerClient customer.Client) AuthService {
	return &authService{
		repo:     repo,
		tokens:   tokens,
		customer: customerClient,
	}
}

// Login verifies the credentials and issues a one-hour bearer token carrying
// the user's role claims.
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) domain.BaseReturn[string] {
	user, err := s.repo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		logrus.WithError(err).Error("login: user lookup failed")
		return domain.Fail[string]("500", msgUnexpectedPrefix+err.Error())
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return domain.Fail[string]("401", MsgUnauthorized)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		logrus.WithError(err).Error("login: token generation failed")
		return domain.Fail[string]("500", msgOperationPrefix+err.Error())
	}

	return domain.OK("200", MsgLoginSuccess, token)
}

// Register creates the local user, attaches the platform default role and
// relays the external-facing profile to the customer-management API.
func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) domain.BaseReturn[*domain.UserData] {
	existing, err := s.repo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		logrus.WithError(err).Error("register: user lookup failed")
		return domain.Fail[*domain.UserData]("500", msgUnexpectedPrefix+err.Error())
	}
	if existing != nil {
		return domain.Fail[*domain.UserData]("400", MsgEmailTaken)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		logrus.WithError(err).Error("register: password hashing failed")
		return domain.Fail[*domain.UserData]("500", msgUnexpectedPrefix+err.Error())
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		// Id-only reference: the store attaches the existing role row.
		Roles: []model.Role{{ID: model.DefaultRoleID}},
	}

	if err := s.repo.RegisterUser(ctx, user); err != nil {
		// The unique index closes the window between the lookup above and
		// this insert when two registrations race on the same email.
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return domain.Fail[*domain.UserData]("400", MsgEmailTaken)
		}
		logrus.WithError(err).Error("register: persist failed")
		return domain.Fail[*domain.UserData]("500", msgUnexpectedPrefix+err.Error())
	}

	data := &domain.UserData{
		Username:      req.Username,
		Email:         req.Email,
		DriverLicense: req.DriverLicense,
		Cellphone:     req.Cellphone,
	}

	if err := s.customer.Register(ctx, data); err != nil {
		if errors.Is(err, customer.ErrRejected) {
			// The local row is already committed at this point; there is no
			// compensating rollback.
			logrus.WithError(err).Warn("register: customer registry rejected user")
			return domain.Fail[*domain.UserData]("400", MsgCustomerRejected)
		}
		logrus.WithError(err).Error("register: customer registry unreachable")
		return domain.Fail[*domain.UserData]("502", msgUpstreamPrefix+err.Error())
	}

	return domain.OK("201", MsgRegisterSuccess, data)
}

// Logout is a stateless acknowledgment; discarding the token is the
// caller's responsibility.
func (s *authService) Logout(ctx context.Context) domain.BaseReturn[string] {
	return domain.OK("200", MsgLogoutSuccess, MsgLoggedOut)
}
