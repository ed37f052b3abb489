package service

import (
	"context"
	"time"

	"github.com/alexanderramin/rdmanage/internal/contract"
	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/repository"
)

type moduleService struct {
	modules  repository.ModuleRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewModuleService(modules repository.ModuleRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ModuleService {
	return &moduleService{modules: modules, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *moduleService) Create(ctx context.Context, req contract.CreateModuleRequest) (m *domain.ProductModule, err error) {
	defer observe(ctx, s.observer, "create-module", time.Now(), map[string]any{"code": req.Code}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sc := newTxScope(tx)
		if err := sc.validator.CheckProduct(ctx, req.ProductID); err != nil {
			return err
		}
		if err := sc.validator.CheckHierarchy(ctx, *req.ProductID, req.ParentID, req.Level); err != nil {
			return err
		}

		now := timestamp()
		created := &domain.ProductModule{
			ProductID:   *req.ProductID,
			ParentID:    req.ParentID,
			Level:       *req.Level,
			Code:        req.Code,
			Name:        req.Name,
			Owner:       req.Owner,
			SortOrder:   domain.IntFromPtrWithDefault(domain.DefaultSortOrder, req.SortOrder),
			Status:      domain.CoalesceStr(req.Status, domain.StatusActive),
			Description: req.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := sc.modules.Create(ctx, created); err != nil {
			return err
		}
		m = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *moduleService) GetByID(ctx context.Context, id int64) (*domain.ProductModule, error) {
	return s.modules.GetByID(ctx, id)
}

func (s *moduleService) List(ctx context.Context, f repository.ModuleFilter) ([]*domain.ProductModule, error) {
	return s.modules.List(ctx, f)
}

// Update merges the non-nil request fields into the stored module and
// re-validates the merged result. Setting level 1 without a parentId
// detaches the module from its parent. A module that has children keeps its
// product and level, and a module referenced by versions, requirements or
// tasks keeps its product.
func (s *moduleService) Update(ctx context.Context, id int64, req contract.UpdateModuleRequest) (m *domain.ProductModule, err error) {
	defer observe(ctx, s.observer, "update-module", time.Now(), map[string]any{"id": id}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sc := newTxScope(tx)

		existing, err := sc.modules.GetByID(ctx, id)
		if err != nil {
			return err
		}
		origProduct, origLevel := existing.ProductID, existing.Level

		domain.Patch(&existing.ProductID, req.ProductID)
		switch {
		case req.ParentID != nil:
			domain.PatchPtr(&existing.ParentID, req.ParentID)
		case req.Level != nil && *req.Level == domain.MinModuleLevel:
			existing.ParentID = nil
		}
		domain.Patch(&existing.Level, req.Level)
		domain.Patch(&existing.Code, req.Code)
		domain.Patch(&existing.Name, req.Name)
		domain.Patch(&existing.Owner, req.Owner)
		domain.Patch(&existing.SortOrder, req.SortOrder)
		domain.PatchNonBlank(&existing.Status, req.Status)
		domain.Patch(&existing.Description, req.Description)

		if existing.ParentID != nil && *existing.ParentID == existing.ID {
			return domain.InvalidReferencef("module %d cannot be its own parent", existing.ID)
		}
		if err := sc.validator.CheckProduct(ctx, &existing.ProductID); err != nil {
			return err
		}
		if err := sc.validator.CheckHierarchy(ctx, existing.ProductID, existing.ParentID, &existing.Level); err != nil {
			return err
		}
		if existing.ProductID != origProduct || existing.Level != origLevel {
			hasChildren, err := sc.modules.HasChildren(ctx, existing.ID)
			if err != nil {
				return err
			}
			if hasChildren {
				return domain.Conflictf("module %d has child modules; its product and level cannot change", existing.ID)
			}
		}
		if existing.ProductID != origProduct {
			referenced, err := moduleReferenced(ctx, sc, existing.ID)
			if err != nil {
				return err
			}
			if referenced {
				return domain.Conflictf("module %d is referenced by versions, requirements or tasks; its product cannot change", existing.ID)
			}
		}

		existing.UpdatedAt = timestamp()
		if err := sc.modules.Update(ctx, existing); err != nil {
			return err
		}
		m = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *moduleService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "delete-module", time.Now(), map[string]any{"id": id}, &err)
	return s.modules.Delete(ctx, id)
}

func moduleReferenced(ctx context.Context, sc *txScope, moduleID int64) (bool, error) {
	checks := []func(context.Context, int64) (bool, error){
		sc.versions.ExistsByModuleID,
		sc.requirements.ExistsByModuleID,
		sc.tasks.ExistsByModuleID,
	}
	for _, check := range checks {
		found, err := check(ctx, moduleID)
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}
