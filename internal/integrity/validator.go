// Package integrity holds the cross-entity rules every write path runs
// before persisting: referential checks, module hierarchy checks and the
// version deletion guard.
package integrity

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/repository"
)

// ProductLookup reports whether a product exists.
type ProductLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ModuleLookup fetches a module. A missing row yields repository.ErrNotFound.
type ModuleLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.ProductModule, error)
}

// VersionLookup fetches a version. A missing row yields repository.ErrNotFound.
type VersionLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.VersionInfo, error)
}

// RequirementLookup fetches requirements and answers whether any
// requirement is scheduled into a version.
type RequirementLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Requirement, error)
	ExistsByVersionID(ctx context.Context, versionID int64) (bool, error)
}

// Validator checks references against the store it was built from. Build
// one per transaction so the checks read the same snapshot the write uses.
type Validator struct {
	products     ProductLookup
	modules      ModuleLookup
	versions     VersionLookup
	requirements RequirementLookup
}

func NewValidator(products ProductLookup, modules ModuleLookup, versions VersionLookup, requirements RequirementLookup) *Validator {
	return &Validator{
		products:     products,
		modules:      modules,
		versions:     versions,
		requirements: requirements,
	}
}

// CheckProduct fails with ErrInvalidReference when productID is absent or
// names no product.
func (v *Validator) CheckProduct(ctx context.Context, productID *int64) error {
	if productID == nil {
		return domain.InvalidReferencef("productId is required")
	}
	ok, err := v.products.Exists(ctx, *productID)
	if err != nil {
		return fmt.Errorf("checking product %d: %w", *productID, err)
	}
	if !ok {
		return domain.InvalidReferencef("product %d does not exist", *productID)
	}
	return nil
}

// CheckProductModule verifies that the product exists and that moduleID
// names a module of that product.
func (v *Validator) CheckProductModule(ctx context.Context, productID, moduleID *int64) error {
	if err := v.CheckProduct(ctx, productID); err != nil {
		return err
	}
	if moduleID == nil {
		return domain.InvalidReferencef("moduleId is required")
	}
	m, err := v.module(ctx, *moduleID, "module")
	if err != nil {
		return err
	}
	if m.ProductID != *productID {
		return domain.InvalidReferencef("module %d does not belong to product %d", *moduleID, *productID)
	}
	return nil
}

// CheckHierarchy enforces the module tree shape: level 1 modules are roots,
// level 2 and 3 modules hang off a parent of the same product whose level
// is exactly one less.
func (v *Validator) CheckHierarchy(ctx context.Context, productID int64, parentID *int64, level *int) error {
	if level == nil || !domain.ValidLevel(*level) {
		return domain.InvalidReferencef("level must be between %d and %d", domain.MinModuleLevel, domain.MaxModuleLevel)
	}
	if *level == domain.MinModuleLevel {
		if parentID != nil {
			return domain.InvalidReferencef("level %d module cannot have a parent", domain.MinModuleLevel)
		}
		return nil
	}
	if parentID == nil {
		return domain.InvalidReferencef("level %d module requires a parent", *level)
	}
	parent, err := v.module(ctx, *parentID, "parent module")
	if err != nil {
		return err
	}
	if parent.ProductID != productID {
		return domain.InvalidReferencef("parent module %d belongs to product %d, not %d", parent.ID, parent.ProductID, productID)
	}
	if parent.Level != *level-1 {
		return domain.InvalidReferencef("parent module %d is level %d, expected %d", parent.ID, parent.Level, *level-1)
	}
	return nil
}

// CheckVersion verifies that versionID names a version of productID.
func (v *Validator) CheckVersion(ctx context.Context, productID int64, versionID *int64) error {
	if versionID == nil {
		return domain.InvalidReferencef("versionId is required")
	}
	ver, err := v.versions.GetByID(ctx, *versionID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.InvalidReferencef("version %d does not exist", *versionID)
	}
	if err != nil {
		return fmt.Errorf("loading version %d: %w", *versionID, err)
	}
	if ver.ProductID != productID {
		return domain.InvalidReferencef("version %d does not belong to product %d", *versionID, productID)
	}
	return nil
}

// CheckRequirement verifies that requirementID names a requirement of productID.
func (v *Validator) CheckRequirement(ctx context.Context, productID int64, requirementID *int64) error {
	if requirementID == nil {
		return domain.InvalidReferencef("requirementId is required")
	}
	req, err := v.requirements.GetByID(ctx, *requirementID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.InvalidReferencef("requirement %d does not exist", *requirementID)
	}
	if err != nil {
		return fmt.Errorf("loading requirement %d: %w", *requirementID, err)
	}
	if req.ProductID != productID {
		return domain.InvalidReferencef("requirement %d does not belong to product %d", *requirementID, productID)
	}
	return nil
}

// GuardVersionDelete fails with ErrConflict while any requirement still
// references the version.
func (v *Validator) GuardVersionDelete(ctx context.Context, versionID int64) error {
	referenced, err := v.requirements.ExistsByVersionID(ctx, versionID)
	if err != nil {
		return fmt.Errorf("checking requirements of version %d: %w", versionID, err)
	}
	if referenced {
		return domain.Conflictf("version %d is referenced by requirements", versionID)
	}
	return nil
}

func (v *Validator) module(ctx context.Context, id int64, what string) (*domain.ProductModule, error) {
	m, err := v.modules.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.InvalidReferencef("%s %d does not exist", what, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s %d: %w", what, id, err)
	}
	return m, nil
}
