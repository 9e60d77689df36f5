package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dfcarvalho/grana/pkg/domain/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMapGormErrorToDomain(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, common.ErrNotFound},
		{"wrapped record not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), common.ErrNotFound},
		{"invalid db", gorm.ErrInvalidDB, common.ErrStorageUnavailable},
		{"deadline exceeded", context.DeadlineExceeded, common.ErrStorageUnavailable},
		{"network failure", &net.OpError{Op: "dial", Err: errors.New("refused")}, common.ErrStorageUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want == nil {
				assert.NoError(t, MapGormErrorToDomain(tt.in))
				return
			}
			assert.ErrorIs(t, MapGormErrorToDomain(tt.in), tt.want)
		})
	}
}

func TestMapGormErrorToDomain_UnknownErrorKept(t *testing.T) {
	unknown := errors.New("constraint violated")
	assert.Equal(t, unknown, MapGormErrorToDomain(unknown))
}

func TestPing_BrokenConnection(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	mock.ExpectPing().WillReturnError(&net.OpError{Op: "dial", Err: errors.New("refused")})

	uow := NewUoW(db)
	assert.ErrorIs(t, uow.Ping(context.Background()), common.ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
