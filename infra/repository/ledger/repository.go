package ledger

import (
	"context"

	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/repository/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a gorm-backed ledger repository.
func New(db *gorm.DB) ledger.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.TransactionCreate) error {
	record := &Transaction{
		ID:          create.ID,
		UserID:      create.UserID,
		Type:        create.Type,
		Description: create.Description,
		Category:    create.Category,
		Value:       create.Value,
		Date:        create.Date,
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) List(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error) {
	var records []Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(records))
	for i := range records {
		result = append(result, mapModelToDTO(&records[i]))
	}
	return result, nil
}

// Update never touches the date column; the entry date is immutable.
func (r *repository) Update(ctx context.Context, id, userID uuid.UUID, tu *dto.TransactionUpdate) (bool, error) {
	updates := make(map[string]any)
	if tu.Type != nil {
		updates["type"] = *tu.Type
	}
	if tu.Description != nil {
		updates["description"] = *tu.Description
	}
	if tu.Category != nil {
		updates["category"] = *tu.Category
	}
	if tu.Value != nil {
		updates["value"] = *tu.Value
	}
	if len(updates) == 0 {
		return false, nil
	}
	result := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Transaction{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func mapModelToDTO(record *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:          record.ID,
		UserID:      record.UserID,
		Type:        record.Type,
		Description: record.Description,
		Category:    record.Category,
		Value:       record.Value,
		Date:        record.Date,
		CreatedAt:   record.CreatedAt,
	}
}

var _ ledger.Repository = (*repository)(nil)
