package profile

import (
	"context"
	"errors"
	"time"

	"github.com/dfcarvalho/grana/pkg/domain/common"
	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/repository/profile"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New returns a gorm-backed profile repository.
func New(db *gorm.DB) profile.Repository {
	return &repository{db: db}
}

// Upsert performs a single conditional write keyed by (user_id, name).
// Concurrent saves of the same name resolve to one row with the last
// writer's fields.
func (r *repository) Upsert(ctx context.Context, save *dto.ProfileSave) error {
	record := &Profile{
		UserID:       save.UserID,
		Name:         save.Name,
		Salary:       save.Salary,
		Quinquenio:   save.Quinquenio,
		MealVoucher:  save.MealVoucher,
		HealthPlan:   save.HealthPlan,
		DentalPlan:   save.DentalPlan,
		Bonus:        save.Bonus,
		PensionMode:  save.PensionMode,
		PensionValue: save.PensionValue,
		UpdatedAt:    time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"salary", "quinquenio", "meal_voucher", "health_plan",
			"dental_plan", "bonus", "pension_mode", "pension_value",
			"updated_at",
		}),
	}).Create(record).Error
}

func (r *repository) Get(ctx context.Context, userID uuid.UUID, name string) (*dto.ProfileRead, error) {
	var record Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&record), nil
}

func (r *repository) ListNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&Profile{}).
		Where("user_id = ?", userID).
		Order("name asc").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *repository) MostRecentName(ctx context.Context, userID uuid.UUID) (string, error) {
	var record Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return record.Name, nil
}

func (r *repository) Delete(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		Delete(&Profile{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func mapModelToDTO(record *Profile) *dto.ProfileRead {
	return &dto.ProfileRead{
		UserID:       record.UserID,
		Name:         record.Name,
		Salary:       record.Salary,
		Quinquenio:   record.Quinquenio,
		MealVoucher:  record.MealVoucher,
		HealthPlan:   record.HealthPlan,
		DentalPlan:   record.DentalPlan,
		Bonus:        record.Bonus,
		PensionMode:  record.PensionMode,
		PensionValue: record.PensionValue,
		UpdatedAt:    record.UpdatedAt,
	}
}

var _ profile.Repository = (*repository)(nil)
