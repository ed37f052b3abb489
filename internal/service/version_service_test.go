package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/rdmanage/internal/contract"
	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionService_DeleteGuardExample(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()
	p1 := mustProduct(t, svcs, "P1")
	m := mustModule(t, svcs, p1.ID, nil, 1, "M")
	v1 := mustVersion(t, svcs, p1.ID, m.ID, "V1")
	r1 := mustRequirement(t, svcs, p1.ID, m.ID, v1.ID, "R1")

	err := svcs.Versions.Delete(ctx, v1.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = svcs.Versions.GetByID(ctx, v1.ID)
	require.NoError(t, err, "version survives a blocked delete")

	require.NoError(t, svcs.Requirements.Delete(ctx, r1.ID))
	require.NoError(t, svcs.Versions.Delete(ctx, v1.ID))

	_, err = svcs.Versions.GetByID(ctx, v1.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestVersionService_DeleteMissingIsNotFound(t *testing.T) {
	_, svcs := setupServices(t)

	err := svcs.Versions.Delete(context.Background(), 31)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

func TestVersionService_CreateAndUpdate(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()
	p := mustProduct(t, svcs, "P")
	m := mustModule(t, svcs, p.ID, nil, 1, "M")
	v := mustVersion(t, svcs, p.ID, m.ID, "v1")
	assert.Equal(t, domain.VersionPlanned, v.Status)
	assert.False(t, v.Released())

	actual := domain.NewDate(2025, 6, 15)
	updated, err := svcs.Versions.Update(ctx, v.ID, contract.UpdateVersionRequest{
		ActualReleaseDate: &actual,
		Status:            str("RELEASED"),
	})
	require.NoError(t, err)
	assert.True(t, updated.Released())
	assert.Equal(t, "RELEASED", updated.Status)
	assert.Equal(t, "v1", updated.VersionCode)
	assert.Equal(t, "2025-06-01", updated.PlanReleaseDate.String())
}

func TestVersionService_CreateChecksModule(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()
	p1 := mustProduct(t, svcs, "P1")
	p2 := mustProduct(t, svcs, "P2")
	m2 := mustModule(t, svcs, p2.ID, nil, 1, "M2")
	plan := domain.NewDate(2025, 1, 1)

	_, err := svcs.Versions.Create(ctx, contract.CreateVersionRequest{
		ProductID: &p1.ID, ModuleID: &m2.ID, VersionCode: "v", Name: "v", Owner: "o", PlanReleaseDate: &plan,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	_, err = svcs.Versions.Update(ctx, 999, contract.UpdateVersionRequest{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestVersionService_UpdateKeepsScheduledVersionInProduct(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()
	p1 := mustProduct(t, svcs, "P1")
	p2 := mustProduct(t, svcs, "P2")
	m1 := mustModule(t, svcs, p1.ID, nil, 1, "M1")
	m2 := mustModule(t, svcs, p2.ID, nil, 1, "M2")
	v1 := mustVersion(t, svcs, p1.ID, m1.ID, "V1")
	r1 := mustRequirement(t, svcs, p1.ID, m1.ID, v1.ID, "R1")

	_, err := svcs.Versions.Update(ctx, v1.ID, contract.UpdateVersionRequest{ProductID: &p2.ID, ModuleID: &m2.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)

	fetched, err := svcs.Versions.GetByID(ctx, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, p1.ID, fetched.ProductID)
	assert.Equal(t, m1.ID, fetched.ModuleID)

	// Once nothing is scheduled into it, the version can move.
	require.NoError(t, svcs.Requirements.Delete(ctx, r1.ID))
	moved, err := svcs.Versions.Update(ctx, v1.ID, contract.UpdateVersionRequest{ProductID: &p2.ID, ModuleID: &m2.ID})
	require.NoError(t, err)
	assert.Equal(t, p2.ID, moved.ProductID)
	assert.Equal(t, m2.ID, moved.ModuleID)
}
