package user

import (
	"context"
	"errors"

	"github.com/dfcarvalho/grana/pkg/domain/common"
	domainuser "github.com/dfcarvalho/grana/pkg/domain/user"
	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a gorm-backed user repository.
func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.UserCreate) error {
	record := &User{
		ID:             create.ID,
		Username:       create.Username,
		HashedPassword: create.HashedPassword,
	}
	err := r.db.WithContext(ctx).Create(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainuser.ErrUsernameTaken
	}
	return err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, uu *dto.UserUpdate) error {
	updates := make(map[string]any)
	if uu.HashedPassword != nil {
		updates["hashed_password"] = *uu.HashedPassword
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	var record User
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&record), nil
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*dto.UserRead, error) {
	var record User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&record), nil
}

func (r *repository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func mapModelToDTO(record *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             record.ID,
		Username:       record.Username,
		HashedPassword: record.HashedPassword,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

var _ user.Repository = (*repository)(nil)
