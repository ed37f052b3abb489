package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/rdmanage/internal/contract"
	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/testutil"
	"github.com/stretchr/testify/require"
)

// recordingObserver captures use-case events for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

func setupServices(t *testing.T) (*sql.DB, *Services) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, NewServices(database)
}

func i64(v int64) *int64 { return &v }
func intp(v int) *int    { return &v }
func str(v string) *string {
	return &v
}

func mustProduct(t *testing.T, svcs *Services, code string) *domain.Product {
	t.Helper()
	p, err := svcs.Products.Create(context.Background(), contract.CreateProductRequest{Code: code, Name: code})
	require.NoError(t, err)
	return p
}

func mustModule(t *testing.T, svcs *Services, productID int64, parentID *int64, level int, code string) *domain.ProductModule {
	t.Helper()
	m, err := svcs.Modules.Create(context.Background(), contract.CreateModuleRequest{
		ProductID: &productID,
		ParentID:  parentID,
		Level:     &level,
		Code:      code,
		Name:      code,
	})
	require.NoError(t, err)
	return m
}

func mustVersion(t *testing.T, svcs *Services, productID, moduleID int64, code string) *domain.VersionInfo {
	t.Helper()
	plan := domain.NewDate(2025, 6, 1)
	v, err := svcs.Versions.Create(context.Background(), contract.CreateVersionRequest{
		ProductID:       &productID,
		ModuleID:        &moduleID,
		VersionCode:     code,
		Name:            code,
		Owner:           "pm",
		PlanReleaseDate: &plan,
	})
	require.NoError(t, err)
	return v
}

func mustRequirement(t *testing.T, svcs *Services, productID, moduleID, versionID int64, code string) *domain.Requirement {
	t.Helper()
	r, err := svcs.Requirements.Create(context.Background(), contract.CreateRequirementRequest{
		ProductID: &productID,
		ModuleID:  &moduleID,
		VersionID: &versionID,
		Code:      code,
		Name:      code,
		Priority:  "HIGH",
		Owner:     "po",
	})
	require.NoError(t, err)
	return r
}
