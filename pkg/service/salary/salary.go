// Package salary provides the net-salary calculator and the named profile
// snapshots that feed it.
package salary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dfcarvalho/grana/pkg/domain/common"
	"github.com/dfcarvalho/grana/pkg/domain/profile"
	"github.com/dfcarvalho/grana/pkg/domain/tax"
	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/repository"
	"github.com/google/uuid"
)

// Service provides business logic for salary profiles and calculations.
type Service struct {
	uow    repository.UnitOfWork
	engine *tax.Engine
	logger *slog.Logger
}

// New creates a new Service around a tax engine, a UnitOfWork and a logger.
func New(
	uow repository.UnitOfWork,
	engine *tax.Engine,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		engine: engine,
		logger: logger,
	}
}

// Calculate runs the tax engine over the given inputs without touching
// storage.
func (s *Service) Calculate(in tax.Input) (*tax.Result, error) {
	return s.engine.NetSalary(in)
}

// SaveProfile validates and stores a named snapshot. Saving an existing
// name overwrites it atomically.
func (s *Service) SaveProfile(
	ctx context.Context,
	p *profile.Profile,
) (err error) {
	log := s.logger.With("context", "SaveProfile", "userID", p.UserID, "name", p.Name)
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return profile.ErrNameRequired
	}
	// reject snapshots the calculator itself would refuse
	if _, err = s.engine.NetSalary(p.TaxInput()); err != nil {
		return err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ProfileRepository()
		if err != nil {
			return err
		}
		return repo.Upsert(ctx, &dto.ProfileSave{
			UserID:       p.UserID,
			Name:         p.Name,
			Salary:       p.Salary,
			Quinquenio:   p.Quinquenio,
			MealVoucher:  p.MealVoucher,
			HealthPlan:   p.HealthPlan,
			DentalPlan:   p.DentalPlan,
			Bonus:        p.Bonus,
			PensionMode:  string(p.Pension.Mode),
			PensionValue: p.Pension.Value,
		})
	})
	if err != nil {
		log.Error("SaveProfile failed", "error", err)
		return
	}
	log.Info("SaveProfile successful")
	return
}

// LoadProfile retrieves a snapshot by name. An empty name loads the most
// recently saved profile; when the user has none at all the result is
// common.ErrNotFound.
func (s *Service) LoadProfile(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (p *profile.Profile, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ProfileRepository()
		if err != nil {
			return err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name, err = repo.MostRecentName(ctx, userID)
			if err != nil {
				return err
			}
			if name == "" {
				return common.ErrNotFound
			}
		}
		read, err := repo.Get(ctx, userID, name)
		if err != nil {
			return err
		}
		p = profileFromRead(read)
		return nil
	})
	if err != nil {
		p = nil
	}
	return
}

// ListProfiles returns the user's profile names sorted lexicographically.
// A user without profiles gets an empty list.
func (s *Service) ListProfiles(
	ctx context.Context,
	userID uuid.UUID,
) (names []string, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ProfileRepository()
		if err != nil {
			return err
		}
		names, err = repo.ListNames(ctx, userID)
		return err
	})
	if err != nil {
		names = nil
	}
	return
}

// DeleteProfile removes a snapshot, reporting whether one existed.
func (s *Service) DeleteProfile(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (deleted bool, err error) {
	log := s.logger.With("context", "DeleteProfile", "userID", userID, "name", name)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ProfileRepository()
		if err != nil {
			return err
		}
		deleted, err = repo.Delete(ctx, userID, name)
		return err
	})
	if err != nil {
		log.Error("DeleteProfile failed", "error", err)
		return
	}
	log.Info("DeleteProfile finished", "deleted", deleted)
	return
}

// CalculateFromProfile loads a snapshot and runs the engine over it.
func (s *Service) CalculateFromProfile(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (*tax.Result, error) {
	p, err := s.LoadProfile(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	return s.engine.NetSalary(p.TaxInput())
}

func profileFromRead(read *dto.ProfileRead) *profile.Profile {
	return &profile.Profile{
		UserID:      read.UserID,
		Name:        read.Name,
		Salary:      read.Salary,
		Quinquenio:  read.Quinquenio,
		MealVoucher: read.MealVoucher,
		HealthPlan:  read.HealthPlan,
		DentalPlan:  read.DentalPlan,
		Bonus:       read.Bonus,
		Pension: tax.Pension{
			Mode:  tax.PensionMode(read.PensionMode),
			Value: read.PensionValue,
		},
		UpdatedAt: read.UpdatedAt,
	}
}
