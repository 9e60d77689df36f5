// Package investment provides business logic for fixed-income positions,
// the singleton current-yield figure and the derived portfolio view.
package investment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dfcarvalho/grana/pkg/domain/common"
	"github.com/dfcarvalho/grana/pkg/domain/investment"
	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/repository"
	"github.com/google/uuid"
)

// Service provides business logic for investments.
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

// Add validates and records a new position.
func (s *Service) Add(
	ctx context.Context,
	userID uuid.UUID,
	institution, product string,
	value float64,
	redemptionDate time.Time,
) (inv *investment.Investment, err error) {
	log := s.logger.With("context", "Add", "userID", userID)
	institution = strings.TrimSpace(institution)
	if institution == "" {
		return nil, fmt.Errorf("%w: institution is required", common.ErrValidation)
	}
	if value < 0 {
		return nil, fmt.Errorf("%w: invested value must be non-negative", common.ErrValidation)
	}
	inv = &investment.Investment{
		ID:             uuid.New(),
		UserID:         userID,
		Institution:    institution,
		Product:        strings.TrimSpace(product),
		Value:          value,
		RedemptionDate: redemptionDate,
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, &dto.InvestmentCreate{
			ID:             inv.ID,
			UserID:         inv.UserID,
			Institution:    inv.Institution,
			Product:        inv.Product,
			Value:          inv.Value,
			RedemptionDate: inv.RedemptionDate,
		})
	})
	if err != nil {
		inv = nil
		log.Error("Add failed", "error", err)
		return
	}
	log.Info("Add successful", "investmentID", inv.ID)
	return
}

// List returns the user's positions ordered by redemption date, soonest
// first.
func (s *Service) List(
	ctx context.Context,
	userID uuid.UUID,
) (investments []*investment.Investment, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		reads, err := repo.List(ctx, userID)
		if err != nil {
			return err
		}
		investments = make([]*investment.Investment, 0, len(reads))
		for _, r := range reads {
			investments = append(investments, investmentFromRead(r))
		}
		return nil
	})
	if err != nil {
		investments = nil
	}
	return
}

// Update edits a position. A missing or foreign position returns
// common.ErrNotFound.
func (s *Service) Update(
	ctx context.Context,
	id, userID uuid.UUID,
	update *dto.InvestmentUpdate,
) (err error) {
	log := s.logger.With("context", "Update", "userID", userID, "investmentID", id)
	if update.Institution == nil && update.Product == nil && update.Value == nil && update.RedemptionDate == nil {
		return fmt.Errorf("%w: no fields to update", common.ErrValidation)
	}
	if update.Value != nil && *update.Value < 0 {
		return fmt.Errorf("%w: invested value must be non-negative", common.ErrValidation)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		updated, err := repo.Update(ctx, id, userID, update)
		if err != nil {
			return err
		}
		if !updated {
			return common.ErrNotFound
		}
		return nil
	})
	if err != nil {
		log.Error("Update failed", "error", err)
		return
	}
	log.Info("Update successful")
	return
}

// Delete removes a position. A missing or foreign position returns
// common.ErrNotFound.
func (s *Service) Delete(
	ctx context.Context,
	id, userID uuid.UUID,
) (err error) {
	log := s.logger.With("context", "Delete", "userID", userID, "investmentID", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		deleted, err := repo.Delete(ctx, id, userID)
		if err != nil {
			return err
		}
		if !deleted {
			return common.ErrNotFound
		}
		return nil
	})
	if err != nil {
		log.Error("Delete failed", "error", err)
		return
	}
	log.Info("Delete successful")
	return
}

// CurrentYield returns the user's yield figure, 0 when never set.
func (s *Service) CurrentYield(
	ctx context.Context,
	userID uuid.UUID,
) (yield float64, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		yield, err = repo.CurrentYield(ctx, userID)
		return err
	})
	return
}

// SetCurrentYield replaces the user's yield figure. There is exactly one
// per user; writes overwrite.
func (s *Service) SetCurrentYield(
	ctx context.Context,
	userID uuid.UUID,
	value float64,
) (err error) {
	log := s.logger.With("context", "SetCurrentYield", "userID", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		return repo.SetCurrentYield(ctx, userID, value)
	})
	if err != nil {
		log.Error("SetCurrentYield failed", "error", err)
		return
	}
	log.Info("SetCurrentYield successful")
	return
}

// Portfolio derives the balance view from the positions and the current
// yield in one transaction.
func (s *Service) Portfolio(
	ctx context.Context,
	userID uuid.UUID,
) (p *investment.Portfolio, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvestmentRepository()
		if err != nil {
			return err
		}
		reads, err := repo.List(ctx, userID)
		if err != nil {
			return err
		}
		yield, err := repo.CurrentYield(ctx, userID)
		if err != nil {
			return err
		}
		investments := make([]*investment.Investment, 0, len(reads))
		for _, r := range reads {
			investments = append(investments, investmentFromRead(r))
		}
		built := investment.BuildPortfolio(investments, yield)
		p = &built
		return nil
	})
	if err != nil {
		p = nil
	}
	return
}

func investmentFromRead(r *dto.InvestmentRead) *investment.Investment {
	return &investment.Investment{
		ID:             r.ID,
		UserID:         r.UserID,
		Institution:    r.Institution,
		Product:        r.Product,
		Value:          r.Value,
		RedemptionDate: r.RedemptionDate,
	}
}
