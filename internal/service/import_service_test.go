package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/importer"
	"github.com/alexanderramin/rdmanage/internal/repository"
	"github.com/alexanderramin/rdmanage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portalFixture = "../importer/testdata/portal.json"

func TestImportFile_CreatesWholeProduct(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()

	res, err := svcs.Import.ImportFile(ctx, portalFixture)
	require.NoError(t, err)
	assert.Equal(t, 3, res.ModuleCount)
	assert.Equal(t, 1, res.VersionCount)
	assert.Equal(t, 1, res.RequirementCount)
	assert.Equal(t, 2, res.TaskCount)
	assert.Equal(t, 2, res.DictCount)
	require.NotZero(t, res.Product.ID)

	modules, err := svcs.Modules.List(ctx, repository.ModuleFilter{ProductID: &res.Product.ID})
	require.NoError(t, err)
	require.Len(t, modules, 3)
	byCode := make(map[string]*domain.ProductModule)
	for _, m := range modules {
		byCode[m.Code] = m
	}
	assert.Nil(t, byCode["M1"].ParentID)
	assert.Equal(t, byCode["M1"].ID, *byCode["M2"].ParentID)
	assert.Equal(t, byCode["M2"].ID, *byCode["M3"].ParentID)
	assert.Equal(t, 3, byCode["M3"].Level)

	reqs, err := svcs.Requirements.List(ctx, repository.ScopeFilter{ProductID: &res.Product.ID})
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, byCode["M2"].ID, reqs[0].ModuleID)

	tasks, err := svcs.Tasks.List(ctx, repository.ScopeFilter{ModuleID: &byCode["M3"].ID})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Reset mail", tasks[0].Title)
	assert.Equal(t, reqs[0].ID, tasks[0].RequirementID)

	// The imported version is guarded like any other.
	err = svcs.Versions.Delete(ctx, reqs[0].VersionID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestImport_ValidationErrors(t *testing.T) {
	_, svcs := setupServices(t)

	_, err := svcs.Import.Import(context.Background(), &importer.ImportSchema{
		Modules: []importer.ModuleImport{{Ref: "a", Code: "A", Name: "A"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "product.code is required")

	_, err = svcs.Import.ImportFile(context.Background(), "testdata/does-not-exist.json")
	assert.ErrorIs(t, err, domain.ErrValidation)

	products, err := svcs.Products.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestImport_RollbackOnMidwayFailure(t *testing.T) {
	database, svcs := setupServices(t)
	ctx := context.Background()

	schema, err := importer.LoadImportSchema(portalFixture)
	require.NoError(t, err)

	// Product and the first two modules insert, the third fails.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 4,
		Err:    fmt.Errorf("injected import failure"),
	}
	_, err = NewImportService(failUoW).Import(ctx, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected import failure")

	products, err := svcs.Products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
	modules, err := svcs.Modules.List(ctx, repository.ModuleFilter{})
	require.NoError(t, err)
	assert.Empty(t, modules)
}

func TestImport_ObservesUseCase(t *testing.T) {
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	svc := NewImportService(testutil.NewTestUoW(database), obs)

	_, err := svc.ImportFile(context.Background(), portalFixture)
	require.NoError(t, err)
	assert.Equal(t, []string{"import-product"}, obs.names())
}
