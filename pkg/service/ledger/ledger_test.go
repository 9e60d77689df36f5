package ledger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dfcarvalho/grana/infra"
	infrarepo "github.com/dfcarvalho/grana/infra/repository"
	"github.com/dfcarvalho/grana/pkg/domain/common"
	domainledger "github.com/dfcarvalho/grana/pkg/domain/ledger"
	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/service/ledger"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *ledger.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ledger.New(infrarepo.NewUoW(db), log)
}

func TestAdd(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	entry, err := svc.Add(ctx, userID, "entrada", "salário", "renda", 5000, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, domainledger.TypeCredit, entry.Type)
	assert.False(t, entry.Date.IsZero(), "zero date gets stamped")
}

func TestAdd_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Add(ctx, userID, "transfer", "x", "", 10, time.Time{})
	require.ErrorIs(t, err, common.ErrValidation, "unknown entry type")

	_, err = svc.Add(ctx, userID, "entrada", "x", "", -10, time.Time{})
	require.ErrorIs(t, err, common.ErrValidation, "negative value")

	_, err = svc.Add(ctx, userID, "entrada", "   ", "", 10, time.Time{})
	require.ErrorIs(t, err, common.ErrValidation, "blank description")
}

func TestListAndSummary(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	mar1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	mar5 := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	_, err := svc.Add(ctx, userID, "saida", "mercado", "alimentação", 250.40, mar1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, "entrada", "salário", "renda", 5000, mar5)
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, "saida", "luz", "contas", 149.60, mar1)
	require.NoError(t, err)

	entries, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "salário", entries[0].Description, "newest first")

	summary, err := svc.Summary(ctx, userID)
	require.NoError(t, err)
	assert.InDelta(t, 5000.00, summary.TotalCredits, 0.005)
	assert.InDelta(t, 400.00, summary.TotalDebits, 0.005)
	assert.InDelta(t, 4600.00, summary.Balance, 0.005)
	assert.Equal(t, 1, summary.CreditCount)
	assert.Equal(t, 2, summary.DebitCount)
}

func TestUpdate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	entry, err := svc.Add(ctx, userID, "saida", "mercado", "alimentação", 250.40, date)
	require.NoError(t, err)

	newValue := 300.00
	require.NoError(t, svc.Update(ctx, entry.ID, userID, &dto.TransactionUpdate{Value: &newValue}))

	entries, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 300.00, entries[0].Value)
	assert.Equal(t, date, entries[0].Date.UTC(), "date is immutable")

	badType := "transfer"
	err = svc.Update(ctx, entry.ID, userID, &dto.TransactionUpdate{Type: &badType})
	require.ErrorIs(t, err, common.ErrValidation)

	err = svc.Update(ctx, uuid.New(), userID, &dto.TransactionUpdate{Value: &newValue})
	require.ErrorIs(t, err, common.ErrNotFound)

	err = svc.Update(ctx, entry.ID, userID, &dto.TransactionUpdate{})
	require.ErrorIs(t, err, common.ErrValidation, "empty update is rejected, not reported missing")
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	entry, err := svc.Add(ctx, userID, "entrada", "pix", "renda", 100, time.Time{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, entry.ID, userID))
	require.ErrorIs(t, svc.Delete(ctx, entry.ID, userID), common.ErrNotFound)

	other, err := svc.Add(ctx, userID, "entrada", "pix", "renda", 100, time.Time{})
	require.NoError(t, err)
	require.ErrorIs(t, svc.Delete(ctx, other.ID, uuid.New()), common.ErrNotFound,
		"foreign entries look missing")
}
