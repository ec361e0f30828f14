package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/testsupport"
)

func TestAccountRepository_InsertAndFind(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := repositories.NewAccountRepository(db)
	ctx := context.Background()

	account := &dbm.Account{FirstName: "Asha", Email: "asha@x.in", PasswordHash: "h", Country: "India", Role: dbm.RoleUser}
	require.NoError(t, repo.InsertTx(account, ctx))
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.NotZero(t, account.CreatedAt)

	byEmail, err := repo.FindByEmail(ctx, "asha@x.in")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, account.ID, byEmail.ID)

	byID, err := repo.FindById(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Asha", byID.FirstName)

	missing, err := repo.FindByEmail(ctx, "nobody@x.in")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := repositories.NewAccountRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.InsertTx(&dbm.Account{FirstName: "A", Email: "dup@x.in", PasswordHash: "h"}, ctx))
	err := repo.InsertTx(&dbm.Account{FirstName: "B", Email: "dup@x.in", PasswordHash: "h"}, ctx)
	require.Error(t, err)
}

func TestAccountRepository_Update(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := repositories.NewAccountRepository(db)
	ctx := context.Background()

	account := testsupport.CreateAccount(t, db, "u@x.in")
	require.NoError(t, repo.Update(ctx, account.ID, map[string]interface{}{"city": "Pune"}))

	got, err := repo.FindById(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, got.City)
	assert.Equal(t, "Pune", *got.City)

	err = repo.Update(ctx, uuid.New(), map[string]interface{}{"city": "Pune"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAccountRepository_ListNewestFirst(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := repositories.NewAccountRepository(db)
	ctx := context.Background()

	testsupport.CreateAccount(t, db, "a@x.in")
	testsupport.CreateAccount(t, db, "b@x.in")
	testsupport.CreateAccount(t, db, "c@x.in")

	accounts, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "c@x.in", accounts[0].Email)
	assert.Equal(t, "b@x.in", accounts[1].Email)
	assert.Equal(t, "a@x.in", accounts[2].Email)

	page2, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "a@x.in", page2[0].Email)
}
