package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/pkg/auth"
	"go.uber.org/zap"
)

const TokenTTL = 15 * time.Minute

var (
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrAdministratorCredentials = errors.New("administrator login is held by an account with other credentials")
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo      Repo
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
	administrator string
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	if s.administrator != "" && login == s.administrator {
		zap.L().Warn("registration of administrator login refused", zap.String("login", login))
		return nil, fmt.Errorf("%w: %s", domain.ErrLoginTaken, login)
	}
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("login", login))
		return nil, fmt.Errorf("%w: %s", domain.ErrLoginTaken, login)
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	newUser, err := s.userRepo.Create(ctx, &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

// ProvisionAdministrator reserves login for the vault administrator and
// makes sure its account exists with password. With an empty password the
// login is only reserved and nobody can sign in as the administrator.
func (s *Service) ProvisionAdministrator(ctx context.Context, login, password string) (*domain.User, error) {
	s.administrator = login
	if password == "" {
		zap.L().Warn("administrator password not configured, privileged calls are disabled", zap.String("login", login))
		return nil, nil
	}

	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user != nil {
		if !s.hashService.ComparePassword(user.PasswordHash, password) {
			zap.L().Error("administrator account credentials mismatch", zap.String("login", login))
			return nil, fmt.Errorf("%w: %s", ErrAdministratorCredentials, login)
		}
		return user, nil
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user, err = s.userRepo.Create(ctx, &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		zap.L().Error("can't create administrator: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("administrator account created", zap.String("login", login))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("login", login), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(user.ID, user.Login, time.Now().Add(TokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
