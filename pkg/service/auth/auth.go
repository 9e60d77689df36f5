// Package auth provides credential checking and token issuance behind a
// pluggable Strategy. The HTTP surface uses the JWT strategy; the CLI uses
// the basic one.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dfcarvalho/grana/pkg/config"
	"github.com/dfcarvalho/grana/pkg/domain/common"
	"github.com/dfcarvalho/grana/pkg/domain/user"
	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/repository"
	"github.com/dfcarvalho/grana/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "user"

// Strategy abstracts how credentials are verified and tokens produced.
type Strategy interface {
	Login(ctx context.Context, username, password string) (*dto.UserRead, error)
	GetCurrentUserID(ctx context.Context) (uuid.UUID, error)
	GenerateToken(ctx context.Context, u *dto.UserRead) (string, error)
}

// Service fronts a Strategy with logging.
type Service struct {
	uow      repository.UnitOfWork
	strategy Strategy
	logger   *slog.Logger
}

// New creates a Service around an explicit Strategy.
func New(
	uow repository.UnitOfWork,
	strategy Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, strategy: strategy, logger: logger}
}

// NewWithJWT creates a Service with the JWT strategy.
func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(uow, NewJWTStrategy(uow, cfg, logger), logger)
}

// NewWithBasic creates a Service with the basic password-only strategy.
func NewWithBasic(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return New(uow, NewBasicStrategy(uow, logger), logger)
}

// Login verifies credentials and returns the account on success.
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login", "username", username)
	u, err = s.strategy.Login(ctx, username, password)
	if err != nil {
		log.Warn("Login failed", "error", err)
		return
	}
	log.Info("Login successful", "userID", u.ID)
	return
}

// GenerateToken issues a token for the given account.
func (s *Service) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	return s.strategy.GenerateToken(ctx, u)
}

// GetCurrentUserID extracts the authenticated user ID from a parsed token.
func (s *Service) GetCurrentUserID(
	token *jwt.Token,
) (uuid.UUID, error) {
	return s.strategy.GetCurrentUserID(
		context.WithValue(context.Background(), userContextKey, token),
	)
}

// JWTStrategy verifies credentials against the store and signs HS256
// tokens carrying username and user_id claims.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

// NewJWTStrategy builds a JWTStrategy.
func NewJWTStrategy(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger}
}

func (s *JWTStrategy) Login(
	ctx context.Context,
	username, password string,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				_ = utils.CheckPasswordHash(password, utils.DummyHash)
				return user.ErrUserUnauthorized
			}
			return err
		}
		if !utils.CheckPasswordHash(password, u.HashedPassword) {
			return user.ErrUserUnauthorized
		}
		return nil
	})
	if err != nil {
		u = nil
	}
	return
}

func (s *JWTStrategy) GenerateToken(
	_ context.Context,
	u *dto.UserRead,
) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = u.Username
	claims["user_id"] = u.ID.String()
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func (s *JWTStrategy) GetCurrentUserID(
	ctx context.Context,
) (userID uuid.UUID, err error) {
	token, ok := ctx.Value(userContextKey).(*jwt.Token)
	if !ok || token == nil {
		err = user.ErrUserUnauthorized
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		err = user.ErrUserUnauthorized
		return
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		err = user.ErrUserUnauthorized
		return
	}
	userID, err = uuid.Parse(raw)
	if err != nil {
		err = user.ErrUserUnauthorized
	}
	return
}

// BasicStrategy checks passwords without issuing tokens. The CLI uses it.
type BasicStrategy struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewBasicStrategy builds a BasicStrategy.
func NewBasicStrategy(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *BasicStrategy {
	return &BasicStrategy{uow: uow, logger: logger}
}

func (s *BasicStrategy) Login(
	ctx context.Context,
	username, password string,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				_ = utils.CheckPasswordHash(password, utils.DummyHash)
				return user.ErrUserUnauthorized
			}
			return err
		}
		if !utils.CheckPasswordHash(password, u.HashedPassword) {
			return user.ErrUserUnauthorized
		}
		return nil
	})
	if err != nil {
		u = nil
	}
	return
}

func (s *BasicStrategy) GetCurrentUserID(context.Context) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (s *BasicStrategy) GenerateToken(context.Context, *dto.UserRead) (string, error) {
	return "", nil
}

var (
	_ Strategy = (*JWTStrategy)(nil)
	_ Strategy = (*BasicStrategy)(nil)
)
