package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dfcarvalho/grana/infra"
	infrarepo "github.com/dfcarvalho/grana/infra/repository"
	"github.com/dfcarvalho/grana/pkg/domain/common"
	domainuser "github.com/dfcarvalho/grana/pkg/domain/user"
	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/repository"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestUoW(t *testing.T) *infrarepo.UoW {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	return infrarepo.NewUoW(db)
}

func profileSave(userID uuid.UUID, name string, salary float64) *dto.ProfileSave {
	return &dto.ProfileSave{
		UserID:       userID,
		Name:         name,
		Salary:       salary,
		Quinquenio:   150.10,
		MealVoucher:  880.00,
		HealthPlan:   420.37,
		DentalPlan:   35.90,
		Bonus:        0,
		PensionMode:  "percent",
		PensionValue: 5,
	}
}

func TestProfileRepository_UpsertIsIdempotent(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.ProfileRepository()
	require.NoError(t, err)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, profileSave(userID, "Main", 5000)))
	first, err := repo.Get(ctx, userID, "Main")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Upsert(ctx, profileSave(userID, "Main", 5000)))

	names, err := repo.ListNames(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Main"}, names, "two saves of one name keep one record")

	second, err := repo.Get(ctx, userID, "Main")
	require.NoError(t, err)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt), "updated_at advances")
	assert.Equal(t, first.Salary, second.Salary)
}

func TestProfileRepository_RoundTrip(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.ProfileRepository()
	require.NoError(t, err)
	ctx := context.Background()
	userID := uuid.New()

	saved := profileSave(userID, "Main", 5432.10)
	require.NoError(t, repo.Upsert(ctx, saved))

	got, err := repo.Get(ctx, userID, "Main")
	require.NoError(t, err)
	// floats survive the store untouched: no lossy transform in between
	assert.Equal(t, saved.Salary, got.Salary)
	assert.Equal(t, saved.Quinquenio, got.Quinquenio)
	assert.Equal(t, saved.MealVoucher, got.MealVoucher)
	assert.Equal(t, saved.HealthPlan, got.HealthPlan)
	assert.Equal(t, saved.DentalPlan, got.DentalPlan)
	assert.Equal(t, saved.Bonus, got.Bonus)
	assert.Equal(t, saved.PensionMode, got.PensionMode)
	assert.Equal(t, saved.PensionValue, got.PensionValue)
}

func TestProfileRepository_UpsertOverwrites(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.ProfileRepository()
	require.NoError(t, err)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, profileSave(userID, "Main", 5000)))
	require.NoError(t, repo.Upsert(ctx, profileSave(userID, "Main", 7000)))

	got, err := repo.Get(ctx, userID, "Main")
	require.NoError(t, err)
	assert.Equal(t, 7000.0, got.Salary)
}

func TestProfileRepository_GetMissing(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.ProfileRepository()
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), uuid.New(), "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestProfileRepository_ListNamesSorted(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.ProfileRepository()
	require.NoError(t, err)
	ctx := context.Background()
	userID := uuid.New()

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		require.NoError(t, repo.Upsert(ctx, profileSave(userID, name, 1000)))
	}
	// another user's profiles stay out of scope
	require.NoError(t, repo.Upsert(ctx, profileSave(uuid.New(), "Other", 1000)))

	names, err := repo.ListNames(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names)
}

func TestProfileRepository_MostRecentName(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.ProfileRepository()
	require.NoError(t, err)
	ctx := context.Background()
	userID := uuid.New()

	name, err := repo.MostRecentName(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, name, "no profiles yet")

	require.NoError(t, repo.Upsert(ctx, profileSave(userID, "A", 1000)))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Upsert(ctx, profileSave(userID, "B", 2000)))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Upsert(ctx, profileSave(userID, "A", 3000)))

	name, err = repo.MostRecentName(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "A", name, "re-saving A makes it most recent again")
}

func TestProfileRepository_Delete(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.ProfileRepository()
	require.NoError(t, err)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, profileSave(userID, "Main", 5000)))

	deleted, err := repo.Delete(ctx, userID, "Main")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, userID, "Main")
	require.NoError(t, err)
	assert.False(t, deleted, "deleting a missing profile is a no-op")

	deleted, err = repo.Delete(ctx, uuid.New(), "Main")
	require.NoError(t, err)
	assert.False(t, deleted, "foreign profiles are invisible to delete")
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.UserRepository()
	require.NoError(t, err)
	ctx := context.Background()

	u, err := domainuser.New("joao", "secret123")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &dto.UserCreate{
		ID:             u.ID,
		Username:       u.Username,
		HashedPassword: u.HashedPassword,
	}))

	got, err := repo.GetByUsername(ctx, "joao")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	exists, err := repo.ExistsByUsername(ctx, "joao")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.UserRepository()
	require.NoError(t, err)
	ctx := context.Background()

	create := func() error {
		u, err := domainuser.New("maria", "secret123")
		if err != nil {
			return err
		}
		return repo.Create(ctx, &dto.UserCreate{
			ID:             u.ID,
			Username:       u.Username,
			HashedPassword: u.HashedPassword,
		})
	}
	require.NoError(t, create())
	require.ErrorIs(t, create(), domainuser.ErrUsernameTaken)
}

func TestLedgerRepository_CRUD(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.LedgerRepository()
	require.NoError(t, err)
	ctx := context.Background()
	userID := uuid.New()

	older := &dto.TransactionCreate{
		ID: uuid.New(), UserID: userID, Type: "saida",
		Description: "mercado", Category: "alimentação",
		Value: 250.40, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &dto.TransactionCreate{
		ID: uuid.New(), UserID: userID, Type: "entrada",
		Description: "salário", Category: "renda",
		Value: 5000.00, Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID, "date descending")

	value := 300.00
	desc := "feira"
	updated, err := repo.Update(ctx, older.ID, userID, &dto.TransactionUpdate{
		Description: &desc, Value: &value,
	})
	require.NoError(t, err)
	assert.True(t, updated)

	list, err = repo.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, older.Date, list[1].Date.UTC(), "date survives edits")
	assert.Equal(t, "feira", list[1].Description)

	deleted, err := repo.Delete(ctx, older.ID, userID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, older.ID, userID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestLedgerRepository_UserScoping(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.LedgerRepository()
	require.NoError(t, err)
	ctx := context.Background()
	owner, intruder := uuid.New(), uuid.New()

	entry := &dto.TransactionCreate{
		ID: uuid.New(), UserID: owner, Type: "entrada",
		Description: "pix", Category: "renda",
		Value: 100, Date: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, entry))

	value := 999.0
	updated, err := repo.Update(ctx, entry.ID, intruder, &dto.TransactionUpdate{Value: &value})
	require.NoError(t, err)
	assert.False(t, updated)

	deleted, err := repo.Delete(ctx, entry.ID, intruder)
	require.NoError(t, err)
	assert.False(t, deleted)

	list, err := repo.List(ctx, intruder)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInvestmentRepository_CRUDAndYield(t *testing.T) {
	uow := newTestUoW(t)
	repo, err := uow.InvestmentRepository()
	require.NoError(t, err)
	ctx := context.Background()
	userID := uuid.New()

	late := &dto.InvestmentCreate{
		ID: uuid.New(), UserID: userID, Institution: "XP", Product: "CDB",
		Value: 10000, RedemptionDate: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	early := &dto.InvestmentCreate{
		ID: uuid.New(), UserID: userID, Institution: "Nubank", Product: "RDB",
		Value: 5000, RedemptionDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, late))
	require.NoError(t, repo.Create(ctx, early))

	list, err := repo.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, early.ID, list[0].ID, "redemption date ascending")

	yield, err := repo.CurrentYield(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, yield, "unset yield reads as 0")

	require.NoError(t, repo.SetCurrentYield(ctx, userID, 123.45))
	require.NoError(t, repo.SetCurrentYield(ctx, userID, 150.00))

	yield, err = repo.CurrentYield(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 150.00, yield, "yield upserts by its fixed key")

	institution := "BTG"
	updated, err := repo.Update(ctx, late.ID, userID, &dto.InvestmentUpdate{Institution: &institution})
	require.NoError(t, err)
	assert.True(t, updated)

	deleted, err := repo.Delete(ctx, early.ID, userID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	uow := newTestUoW(t)
	ctx := context.Background()
	userID := uuid.New()

	boom := errors.New("boom")
	err := uow.Do(ctx, func(tx repository.UnitOfWork) error {
		repo, err := tx.ProfileRepository()
		if err != nil {
			return err
		}
		if err := repo.Upsert(ctx, profileSave(userID, "Main", 5000)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	repo, err := uow.ProfileRepository()
	require.NoError(t, err)
	_, err = repo.Get(ctx, userID, "Main")
	require.ErrorIs(t, err, common.ErrNotFound, "failed transaction leaves no trace")
}

func TestUoW_DoCommits(t *testing.T) {
	uow := newTestUoW(t)
	ctx := context.Background()
	userID := uuid.New()

	err := uow.Do(ctx, func(tx repository.UnitOfWork) error {
		repo, err := tx.ProfileRepository()
		if err != nil {
			return err
		}
		return repo.Upsert(ctx, profileSave(userID, "Main", 5000))
	})
	require.NoError(t, err)

	repo, err := uow.ProfileRepository()
	require.NoError(t, err)
	got, err := repo.Get(ctx, userID, "Main")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, got.Salary)
}

func TestUoW_Ping(t *testing.T) {
	uow := newTestUoW(t)
	require.NoError(t, uow.Ping(context.Background()))
}
