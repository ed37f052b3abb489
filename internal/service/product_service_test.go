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

func TestProductService_CreateDefaultsStatus(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()

	p, err := svcs.Products.Create(ctx, contract.CreateProductRequest{Code: "CRM", Name: "CRM", Status: "  "})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, domain.StatusActive, p.Status)
	assert.False(t, p.CreatedAt.IsZero())

	fetched, err := svcs.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, fetched.Status)
}

func TestProductService_CreateRejectsMissingFields(t *testing.T) {
	_, svcs := setupServices(t)

	_, err := svcs.Products.Create(context.Background(), contract.CreateProductRequest{Name: "no code"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductService_UpdateIsPartial(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()
	p := mustProduct(t, svcs, "ERP")

	updated, err := svcs.Products.Update(ctx, p.ID, contract.UpdateProductRequest{
		Owner:  str("carol"),
		Status: str(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "ERP", updated.Name, "name untouched")
	assert.Equal(t, "carol", updated.Owner)
	assert.Equal(t, domain.StatusActive, updated.Status, "blank status ignored")

	updated, err = svcs.Products.Update(ctx, p.ID, contract.UpdateProductRequest{Status: str("RETIRED")})
	require.NoError(t, err)
	assert.Equal(t, "RETIRED", updated.Status)
	assert.Equal(t, "carol", updated.Owner)
}

func TestProductService_UpdateAndDeleteMissing(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()

	_, err := svcs.Products.Update(ctx, 404, contract.UpdateProductRequest{Name: str("x")})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, svcs.Products.Delete(ctx, 404), repository.ErrNotFound)
}

func TestProductService_List(t *testing.T) {
	_, svcs := setupServices(t)
	mustProduct(t, svcs, "A")
	mustProduct(t, svcs, "B")

	list, err := svcs.Products.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
