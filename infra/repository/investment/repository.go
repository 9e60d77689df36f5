package investment

import (
	"context"
	"errors"
	"time"

	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/repository/investment"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// yieldKey is the fixed document key of the singleton current-yield figure.
const yieldKey = "current_yield"

type repository struct {
	db *gorm.DB
}

// New returns a gorm-backed investment repository.
func New(db *gorm.DB) investment.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.InvestmentCreate) error {
	record := &Investment{
		ID:             create.ID,
		UserID:         create.UserID,
		Institution:    create.Institution,
		Product:        create.Product,
		Value:          create.Value,
		RedemptionDate: create.RedemptionDate,
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) List(ctx context.Context, userID uuid.UUID) ([]*dto.InvestmentRead, error) {
	var records []Investment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("redemption_date asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.InvestmentRead, 0, len(records))
	for i := range records {
		result = append(result, mapModelToDTO(&records[i]))
	}
	return result, nil
}

func (r *repository) Update(ctx context.Context, id, userID uuid.UUID, iu *dto.InvestmentUpdate) (bool, error) {
	updates := make(map[string]any)
	if iu.Institution != nil {
		updates["institution"] = *iu.Institution
	}
	if iu.Product != nil {
		updates["product"] = *iu.Product
	}
	if iu.Value != nil {
		updates["value"] = *iu.Value
	}
	if iu.RedemptionDate != nil {
		updates["redemption_date"] = *iu.RedemptionDate
	}
	if len(updates) == 0 {
		return false, nil
	}
	result := r.db.WithContext(ctx).Model(&Investment{}).
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
		Delete(&Investment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) CurrentYield(ctx context.Context, userID uuid.UUID) (float64, error) {
	var record YieldFigure
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, yieldKey).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return record.Value, nil
}

// SetCurrentYield upserts the singleton figure in one conditional write.
func (r *repository) SetCurrentYield(ctx context.Context, userID uuid.UUID, value float64) error {
	record := &YieldFigure{
		UserID:    userID,
		Key:       yieldKey,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(record).Error
}

func mapModelToDTO(record *Investment) *dto.InvestmentRead {
	return &dto.InvestmentRead{
		ID:             record.ID,
		UserID:         record.UserID,
		Institution:    record.Institution,
		Product:        record.Product,
		Value:          record.Value,
		RedemptionDate: record.RedemptionDate,
	}
}

var _ investment.Repository = (*repository)(nil)
