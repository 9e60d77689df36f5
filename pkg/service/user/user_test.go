package user_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dfcarvalho/grana/infra"
	infrarepo "github.com/dfcarvalho/grana/infra/repository"
	domainuser "github.com/dfcarvalho/grana/pkg/domain/user"
	"github.com/dfcarvalho/grana/pkg/service/user"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *user.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return user.New(infrarepo.NewUoW(db), log)
}

func TestCreateUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "joao", "secret123")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.NotEqual(t, "secret123", u.HashedPassword, "password is stored hashed")

	got, err := svc.GetUserByUsername(ctx, "joao")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "maria", "secret123")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "maria", "othersecret")
	require.ErrorIs(t, err, domainuser.ErrUsernameTaken)
}

func TestValidUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "joao", "secret123")
	require.NoError(t, err)

	valid, err := svc.ValidUser(ctx, "joao", "secret123")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = svc.ValidUser(ctx, "joao", "wrong")
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = svc.ValidUser(ctx, "ghost", "secret123")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestUpdatePassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "joao", "secret123")
	require.NoError(t, err)

	err = svc.UpdatePassword(ctx, u.ID, "wrong", "newsecret")
	require.ErrorIs(t, err, domainuser.ErrUserUnauthorized)

	require.NoError(t, svc.UpdatePassword(ctx, u.ID, "secret123", "newsecret"))

	valid, err := svc.ValidUser(ctx, "joao", "newsecret")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = svc.ValidUser(ctx, "joao", "secret123")
	require.NoError(t, err)
	assert.False(t, valid, "old password no longer works")
}
