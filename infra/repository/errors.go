package repository

import (
	"context"
	"errors"
	"net"

	"github.com/dfcarvalho/grana/pkg/domain/common"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors, keeping
// database concerns inside the infrastructure layer. The error chain is
// traversed because GORM wraps driver errors.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	current := err
	for current != nil {
		switch {
		case errors.Is(current, gorm.ErrRecordNotFound):
			return common.ErrNotFound
		case errors.Is(current, gorm.ErrInvalidDB), errors.Is(current, gorm.ErrInvalidTransaction):
			return common.ErrStorageUnavailable
		case errors.Is(current, context.DeadlineExceeded):
			return common.ErrStorageUnavailable
		}
		var netErr net.Error
		if errors.As(current, &netErr) {
			return common.ErrStorageUnavailable
		}
		current = errors.Unwrap(current)
	}

	return err
}
