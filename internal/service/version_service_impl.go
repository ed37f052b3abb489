package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rdmanage/internal/contract"
	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/repository"
)

type versionService struct {
	versions repository.VersionRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewVersionService(versions repository.VersionRepo, uow db.UnitOfWork, observers ...UseCaseObserver) VersionService {
	return &versionService{versions: versions, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *versionService) Create(ctx context.Context, req contract.CreateVersionRequest) (v *domain.VersionInfo, err error) {
	defer observe(ctx, s.observer, "create-version", time.Now(), map[string]any{"version_code": req.VersionCode}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sc := newTxScope(tx)
		if err := sc.validator.CheckProductModule(ctx, req.ProductID, req.ModuleID); err != nil {
			return err
		}

		now := timestamp()
		created := &domain.VersionInfo{
			ProductID:       *req.ProductID,
			ModuleID:        *req.ModuleID,
			VersionCode:     req.VersionCode,
			Name:            req.Name,
			Owner:           req.Owner,
			PlanReleaseDate: *req.PlanReleaseDate,
			Status:          domain.VersionPlanned,
			Description:     req.Description,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := sc.versions.Create(ctx, created); err != nil {
			return err
		}
		v = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *versionService) GetByID(ctx context.Context, id int64) (*domain.VersionInfo, error) {
	return s.versions.GetByID(ctx, id)
}

func (s *versionService) List(ctx context.Context, f repository.ScopeFilter) ([]*domain.VersionInfo, error) {
	return s.versions.List(ctx, f)
}

// Update validates the effective product/module pair. A version that
// requirements are scheduled into keeps its product.
func (s *versionService) Update(ctx context.Context, id int64, req contract.UpdateVersionRequest) (v *domain.VersionInfo, err error) {
	defer observe(ctx, s.observer, "update-version", time.Now(), map[string]any{"id": id}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sc := newTxScope(tx)

		existing, err := sc.versions.GetByID(ctx, id)
		if err != nil {
			return err
		}
		productID := domain.Int64FromPtrWithDefault(existing.ProductID, req.ProductID)
		moduleID := domain.Int64FromPtrWithDefault(existing.ModuleID, req.ModuleID)
		if err := sc.validator.CheckProductModule(ctx, &productID, &moduleID); err != nil {
			return err
		}
		if productID != existing.ProductID {
			referenced, err := sc.requirements.ExistsByVersionID(ctx, existing.ID)
			if err != nil {
				return err
			}
			if referenced {
				return domain.Conflictf("version %d is referenced by requirements; its product cannot change", existing.ID)
			}
		}

		existing.ProductID = productID
		existing.ModuleID = moduleID
		domain.Patch(&existing.Name, req.Name)
		domain.Patch(&existing.Owner, req.Owner)
		domain.Patch(&existing.PlanReleaseDate, req.PlanReleaseDate)
		domain.PatchPtr(&existing.ActualReleaseDate, req.ActualReleaseDate)
		domain.PatchNonBlank(&existing.Status, req.Status)
		domain.Patch(&existing.Description, req.Description)
		existing.UpdatedAt = timestamp()

		if err := sc.versions.Update(ctx, existing); err != nil {
			return err
		}
		v = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Delete checks existence first so a missing version reports not found
// rather than a conflict.
func (s *versionService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "delete-version", time.Now(), map[string]any{"id": id}, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sc := newTxScope(tx)

		found, err := sc.versions.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("version %d: %w", id, repository.ErrNotFound)
		}
		if err := sc.validator.GuardVersionDelete(ctx, id); err != nil {
			return err
		}
		return sc.versions.Delete(ctx, id)
	})
}
