package integrity

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	products     map[int64]bool
	modules      map[int64]*domain.ProductModule
	versions     map[int64]*domain.VersionInfo
	requirements map[int64]*domain.Requirement
	err          error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:     map[int64]bool{},
		modules:      map[int64]*domain.ProductModule{},
		versions:     map[int64]*domain.VersionInfo{},
		requirements: map[int64]*domain.Requirement{},
	}
}

type fakeProducts struct{ *fakeStore }

func (f fakeProducts) Exists(_ context.Context, id int64) (bool, error) {
	return f.products[id], f.err
}

type fakeModules struct{ *fakeStore }

func (f fakeModules) GetByID(_ context.Context, id int64) (*domain.ProductModule, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.modules[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return m, nil
}

type fakeVersions struct{ *fakeStore }

func (f fakeVersions) GetByID(_ context.Context, id int64) (*domain.VersionInfo, error) {
	v, ok := f.versions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return v, nil
}

type fakeRequirements struct{ *fakeStore }

func (f fakeRequirements) GetByID(_ context.Context, id int64) (*domain.Requirement, error) {
	r, ok := f.requirements[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r, nil
}

func (f fakeRequirements) ExistsByVersionID(_ context.Context, versionID int64) (bool, error) {
	for _, r := range f.requirements {
		if r.VersionID == versionID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) validator() *Validator {
	return NewValidator(fakeProducts{f}, fakeModules{f}, fakeVersions{f}, fakeRequirements{f})
}

func (f *fakeStore) addModule(id, productID int64, level int, parentID *int64) {
	f.modules[id] = &domain.ProductModule{ID: id, ProductID: productID, Level: level, ParentID: parentID}
}

func ptr[T any](v T) *T { return &v }

func TestCheckProductModule(t *testing.T) {
	store := newFakeStore()
	store.products[1] = true
	store.products[2] = true
	store.addModule(10, 1, 1, nil)
	v := store.validator()
	ctx := context.Background()

	tests := []struct {
		name      string
		productID *int64
		moduleID  *int64
		wantErr   bool
	}{
		{"valid pair", ptr(int64(1)), ptr(int64(10)), false},
		{"missing product id", nil, ptr(int64(10)), true},
		{"unknown product", ptr(int64(99)), ptr(int64(10)), true},
		{"missing module id", ptr(int64(1)), nil, true},
		{"unknown module", ptr(int64(1)), ptr(int64(11)), true},
		{"module of another product", ptr(int64(2)), ptr(int64(10)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.CheckProductModule(ctx, tt.productID, tt.moduleID)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidReference)
		})
	}
}

func TestCheckProductModule_PropagatesStoreErrors(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("disk on fire")
	v := store.validator()

	err := v.CheckProductModule(context.Background(), ptr(int64(1)), ptr(int64(1)))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidReference)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestCheckHierarchy(t *testing.T) {
	store := newFakeStore()
	store.addModule(1, 1, 1, nil)
	store.addModule(2, 1, 2, ptr(int64(1)))
	store.addModule(3, 2, 1, nil)
	v := store.validator()
	ctx := context.Background()

	tests := []struct {
		name     string
		product  int64
		parentID *int64
		level    *int
		wantErr  bool
	}{
		{"root module", 1, nil, ptr(1), false},
		{"level 2 under root", 1, ptr(int64(1)), ptr(2), false},
		{"level 3 under level 2", 1, ptr(int64(2)), ptr(3), false},
		{"level missing", 1, nil, nil, true},
		{"level zero", 1, nil, ptr(0), true},
		{"level four", 1, ptr(int64(2)), ptr(4), true},
		{"root with parent", 1, ptr(int64(1)), ptr(1), true},
		{"level 2 without parent", 1, nil, ptr(2), true},
		{"parent missing", 1, ptr(int64(42)), ptr(2), true},
		{"parent of another product", 1, ptr(int64(3)), ptr(2), true},
		{"level 3 under root", 1, ptr(int64(1)), ptr(3), true},
		{"level 2 under level 2", 1, ptr(int64(2)), ptr(2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.CheckHierarchy(ctx, tt.product, tt.parentID, tt.level)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidReference)
		})
	}
}

func TestCheckVersion(t *testing.T) {
	store := newFakeStore()
	store.versions[5] = &domain.VersionInfo{ID: 5, ProductID: 1}
	v := store.validator()
	ctx := context.Background()

	assert.NoError(t, v.CheckVersion(ctx, 1, ptr(int64(5))))
	assert.ErrorIs(t, v.CheckVersion(ctx, 2, ptr(int64(5))), domain.ErrInvalidReference)
	assert.ErrorIs(t, v.CheckVersion(ctx, 1, ptr(int64(6))), domain.ErrInvalidReference)
	assert.ErrorIs(t, v.CheckVersion(ctx, 1, nil), domain.ErrInvalidReference)
}

func TestCheckRequirement(t *testing.T) {
	store := newFakeStore()
	store.requirements[7] = &domain.Requirement{ID: 7, ProductID: 1, VersionID: 5}
	v := store.validator()
	ctx := context.Background()

	assert.NoError(t, v.CheckRequirement(ctx, 1, ptr(int64(7))))
	assert.ErrorIs(t, v.CheckRequirement(ctx, 3, ptr(int64(7))), domain.ErrInvalidReference)
	assert.ErrorIs(t, v.CheckRequirement(ctx, 1, ptr(int64(8))), domain.ErrInvalidReference)
	assert.ErrorIs(t, v.CheckRequirement(ctx, 1, nil), domain.ErrInvalidReference)
}

func TestGuardVersionDelete(t *testing.T) {
	store := newFakeStore()
	store.requirements[1] = &domain.Requirement{ID: 1, ProductID: 1, VersionID: 5}
	v := store.validator()
	ctx := context.Background()

	err := v.GuardVersionDelete(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.NoError(t, v.GuardVersionDelete(ctx, 6))

	delete(store.requirements, 1)
	assert.NoError(t, v.GuardVersionDelete(ctx, 5))
}
