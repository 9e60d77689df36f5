// Package user provides business logic for account management. All
// operations run inside a unit-of-work transaction boundary.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dfcarvalho/grana/pkg/domain/common"
	"github.com/dfcarvalho/grana/pkg/domain/user"
	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/repository"
	"github.com/dfcarvalho/grana/pkg/utils"
	"github.com/google/uuid"
)

// Service provides business logic for user operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// CreateUser registers a new account. A taken username fails with
// user.ErrUsernameTaken; the unique index is the arbiter, not a
// read-then-write check.
func (s *Service) CreateUser(
	ctx context.Context,
	username, password string,
) (u *user.User, err error) {
	log := s.logger.With("context", "CreateUser", "username", username)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = user.New(username, password)
		if err != nil {
			return err
		}
		return repo.Create(ctx, &dto.UserCreate{
			ID:             u.ID,
			Username:       u.Username,
			HashedPassword: u.HashedPassword,
		})
	})
	if err != nil {
		u = nil
		log.Error("CreateUser failed", "error", err)
		return
	}
	log.Info("CreateUser successful", "userID", u.ID)
	return
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(
	ctx context.Context,
	userID uuid.UUID,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, userID)
		return err
	})
	if err != nil {
		u = nil
	}
	return
}

// GetUserByUsername retrieves a user by username.
func (s *Service) GetUserByUsername(
	ctx context.Context,
	username string,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.GetByUsername(ctx, username)
		return err
	})
	if err != nil {
		u = nil
	}
	return
}

// ValidUser checks a username/password pair. A missing user and a wrong
// password are indistinguishable to the caller.
func (s *Service) ValidUser(
	ctx context.Context,
	username, password string,
) (valid bool, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := repo.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				// burn a hash comparison so the miss costs as much as a hit
				_ = utils.CheckPasswordHash(password, utils.DummyHash)
				return nil
			}
			return err
		}
		valid = utils.CheckPasswordHash(password, u.HashedPassword)
		return nil
	})
	if err != nil {
		valid = false
	}
	return
}

// UpdatePassword verifies the current password and stores a hash of the
// new one.
func (s *Service) UpdatePassword(
	ctx context.Context,
	userID uuid.UUID,
	currentPassword, newPassword string,
) (err error) {
	log := s.logger.With("context", "UpdatePassword", "userID", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if !utils.CheckPasswordHash(currentPassword, u.HashedPassword) {
			return user.ErrUserUnauthorized
		}
		hashed, err := utils.HashPassword(newPassword)
		if err != nil {
			return err
		}
		return repo.Update(ctx, userID, &dto.UserUpdate{HashedPassword: &hashed})
	})
	if err != nil {
		log.Error("UpdatePassword failed", "error", err)
		return
	}
	log.Info("UpdatePassword successful")
	return
}
