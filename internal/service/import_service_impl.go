package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/importer"
)

// ImportResult summarizes what an import created.
type ImportResult struct {
	Product          *domain.Product `json:"product"`
	ModuleCount      int             `json:"moduleCount"`
	VersionCount     int             `json:"versionCount"`
	RequirementCount int             `json:"requirementCount"`
	TaskCount        int             `json:"taskCount"`
	DictCount        int             `json:"dictCount"`
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	Import(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("%w: loading import file: %w", domain.ErrValidation, err)
	}
	return s.Import(ctx, schema)
}

// Import persists a whole product in one transaction. Every record passes
// the same reference checks as the single-entity write paths, so a failure
// anywhere leaves nothing behind.
func (s *importService) Import(ctx context.Context, schema *importer.ImportSchema) (res *ImportResult, err error) {
	defer observe(ctx, s.observer, "import-product", time.Now(), map[string]any{"code": schema.Product.Code}, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("%w: import validation failed (%d errors): %w", domain.ErrValidation, len(errs), errors.Join(errs...))
	}
	plan, err := importer.Convert(schema, timestamp())
	if err != nil {
		return nil, fmt.Errorf("%w: converting import schema: %w", domain.ErrValidation, err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sc := newTxScope(tx)
		return persistPlan(ctx, sc, plan)
	})
	if err != nil {
		return nil, err
	}
	return &ImportResult{
		Product:          plan.Product,
		ModuleCount:      len(plan.Modules),
		VersionCount:     len(plan.Versions),
		RequirementCount: len(plan.Requirements),
		TaskCount:        len(plan.Tasks),
		DictCount:        len(plan.Dicts),
	}, nil
}

func persistPlan(ctx context.Context, sc *txScope, plan *importer.Plan) error {
	if err := sc.products.Create(ctx, plan.Product); err != nil {
		return fmt.Errorf("creating product %q: %w", plan.Product.Code, err)
	}
	productID := plan.Product.ID

	for _, pm := range plan.Modules {
		m := pm.Module
		m.ProductID = productID
		if pm.Parent >= 0 {
			parentID := plan.Modules[pm.Parent].Module.ID
			m.ParentID = &parentID
		}
		if err := sc.validator.CheckHierarchy(ctx, productID, m.ParentID, &m.Level); err != nil {
			return fmt.Errorf("module %q: %w", m.Code, err)
		}
		if err := sc.modules.Create(ctx, m); err != nil {
			return fmt.Errorf("creating module %q: %w", m.Code, err)
		}
	}

	for _, pv := range plan.Versions {
		v := pv.Version
		v.ProductID = productID
		v.ModuleID = plan.Modules[pv.Module].Module.ID
		if err := sc.validator.CheckProductModule(ctx, &v.ProductID, &v.ModuleID); err != nil {
			return fmt.Errorf("version %q: %w", v.VersionCode, err)
		}
		if err := sc.versions.Create(ctx, v); err != nil {
			return fmt.Errorf("creating version %q: %w", v.VersionCode, err)
		}
	}

	for _, pr := range plan.Requirements {
		r := pr.Requirement
		r.ProductID = productID
		r.ModuleID = plan.Modules[pr.Module].Module.ID
		r.VersionID = plan.Versions[pr.Version].Version.ID
		if err := sc.validator.CheckProductModule(ctx, &r.ProductID, &r.ModuleID); err != nil {
			return fmt.Errorf("requirement %q: %w", r.Code, err)
		}
		if err := sc.validator.CheckVersion(ctx, productID, &r.VersionID); err != nil {
			return fmt.Errorf("requirement %q: %w", r.Code, err)
		}
		if err := sc.requirements.Create(ctx, r); err != nil {
			return fmt.Errorf("creating requirement %q: %w", r.Code, err)
		}
	}

	for _, pt := range plan.Tasks {
		t := pt.Task
		t.ProductID = productID
		t.ModuleID = plan.Modules[pt.Module].Module.ID
		t.RequirementID = plan.Requirements[pt.Requirement].Requirement.ID
		if err := sc.validator.CheckProductModule(ctx, &t.ProductID, &t.ModuleID); err != nil {
			return fmt.Errorf("task %q: %w", t.Title, err)
		}
		if err := sc.validator.CheckRequirement(ctx, productID, &t.RequirementID); err != nil {
			return fmt.Errorf("task %q: %w", t.Title, err)
		}
		if err := sc.tasks.Create(ctx, t); err != nil {
			return fmt.Errorf("creating task %q: %w", t.Title, err)
		}
	}

	for _, d := range plan.Dicts {
		if err := sc.dicts.Create(ctx, d); err != nil {
			return fmt.Errorf("creating dict item %s/%s: %w", d.DictType, d.DictCode, err)
		}
	}
	return nil
}
