// Package ledger provides business logic for the per-user transaction log.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dfcarvalho/grana/pkg/domain/common"
	"github.com/dfcarvalho/grana/pkg/domain/ledger"
	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/repository"
	"github.com/google/uuid"
)

// Service provides business logic for ledger entries.
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

// Add validates and records a new entry. A zero date is stamped with the
// current time; once stored the date never changes.
func (s *Service) Add(
	ctx context.Context,
	userID uuid.UUID,
	entryType, description, category string,
	value float64,
	date time.Time,
) (t *ledger.Transaction, err error) {
	log := s.logger.With("context", "Add", "userID", userID)
	parsed, err := ledger.ParseType(entryType)
	if err != nil {
		return nil, err
	}
	if value < 0 {
		return nil, fmt.Errorf("%w: entry value must be non-negative", common.ErrValidation)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: entry description is required", common.ErrValidation)
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	t = &ledger.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        parsed,
		Description: description,
		Category:    strings.TrimSpace(category),
		Value:       value,
		Date:        date,
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.LedgerRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, &dto.TransactionCreate{
			ID:          t.ID,
			UserID:      t.UserID,
			Type:        string(t.Type),
			Description: t.Description,
			Category:    t.Category,
			Value:       t.Value,
			Date:        t.Date,
		})
	})
	if err != nil {
		t = nil
		log.Error("Add failed", "error", err)
		return
	}
	log.Info("Add successful", "transactionID", t.ID)
	return
}

// List returns the user's entries newest first.
func (s *Service) List(
	ctx context.Context,
	userID uuid.UUID,
) (entries []*ledger.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.LedgerRepository()
		if err != nil {
			return err
		}
		reads, err := repo.List(ctx, userID)
		if err != nil {
			return err
		}
		entries = make([]*ledger.Transaction, 0, len(reads))
		for _, r := range reads {
			entries = append(entries, transactionFromRead(r))
		}
		return nil
	})
	if err != nil {
		entries = nil
	}
	return
}

// Summary derives the running totals over all of the user's entries.
func (s *Service) Summary(
	ctx context.Context,
	userID uuid.UUID,
) (*ledger.Summary, error) {
	entries, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := ledger.Summarize(entries)
	return &summary, nil
}

// Update edits an entry's type, description, category or value. The entry
// date is immutable. Editing a missing or foreign entry returns
// common.ErrNotFound.
func (s *Service) Update(
	ctx context.Context,
	id, userID uuid.UUID,
	update *dto.TransactionUpdate,
) (err error) {
	log := s.logger.With("context", "Update", "userID", userID, "transactionID", id)
	if update.Type == nil && update.Description == nil && update.Category == nil && update.Value == nil {
		return fmt.Errorf("%w: no fields to update", common.ErrValidation)
	}
	if update.Type != nil {
		if _, err = ledger.ParseType(*update.Type); err != nil {
			return err
		}
	}
	if update.Value != nil && *update.Value < 0 {
		return fmt.Errorf("%w: entry value must be non-negative", common.ErrValidation)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.LedgerRepository()
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

// Delete removes an entry. A missing or foreign entry returns
// common.ErrNotFound.
func (s *Service) Delete(
	ctx context.Context,
	id, userID uuid.UUID,
) (err error) {
	log := s.logger.With("context", "Delete", "userID", userID, "transactionID", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.LedgerRepository()
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

func transactionFromRead(r *dto.TransactionRead) *ledger.Transaction {
	return &ledger.Transaction{
		ID:          r.ID,
		UserID:      r.UserID,
		Type:        ledger.Type(r.Type),
		Description: r.Description,
		Category:    r.Category,
		Value:       r.Value,
		Date:        r.Date,
		CreatedAt:   r.CreatedAt,
	}
}
