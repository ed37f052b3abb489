package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProductRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProduct("CRM", testutil.WithProductOwner("alice"))
	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.ID)

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "CRM", fetched.Code)
	assert.Equal(t, "alice", fetched.Owner)
	assert.Equal(t, domain.StatusActive, fetched.Status)
	assert.True(t, p.CreatedAt.Equal(fetched.CreatedAt))
}

func TestProductRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProductRepo(db)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductRepo_Exists(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProductRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProduct("ERP")
	require.NoError(t, repo.Create(ctx, p))

	ok, err := repo.Exists(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, p.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProductRepo_ListUpdateDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProductRepo(db)
	ctx := context.Background()

	p1 := testutil.NewTestProduct("A")
	p2 := testutil.NewTestProduct("B")
	require.NoError(t, repo.Create(ctx, p1))
	require.NoError(t, repo.Create(ctx, p2))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Code)

	p1.Name = "Renamed"
	p1.Status = "ARCHIVED"
	require.NoError(t, repo.Update(ctx, p1))
	fetched, err := repo.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fetched.Name)
	assert.Equal(t, "ARCHIVED", fetched.Status)

	require.NoError(t, repo.Delete(ctx, p2.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p2.ID), ErrNotFound)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProductRepo_Update_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProductRepo(db)

	p := testutil.NewTestProduct("GHOST")
	p.ID = 42
	assert.ErrorIs(t, repo.Update(context.Background(), p), ErrNotFound)
}
