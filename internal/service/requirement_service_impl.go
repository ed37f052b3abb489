package service

import (
	"context"
	"time"

	"github.com/alexanderramin/rdmanage/internal/contract"
	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/repository"
)

type requirementService struct {
	requirements repository.RequirementRepo
	uow          db.UnitOfWork
	observer     UseCaseObserver
}

func NewRequirementService(requirements repository.RequirementRepo, uow db.UnitOfWork, observers ...UseCaseObserver) RequirementService {
	return &requirementService{requirements: requirements, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *requirementService) Create(ctx context.Context, req contract.CreateRequirementRequest) (r *domain.Requirement, err error) {
	defer observe(ctx, s.observer, "create-requirement", time.Now(), map[string]any{"code": req.Code}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sc := newTxScope(tx)
		if err := sc.validator.CheckProductModule(ctx, req.ProductID, req.ModuleID); err != nil {
			return err
		}
		if err := sc.validator.CheckVersion(ctx, *req.ProductID, req.VersionID); err != nil {
			return err
		}

		now := timestamp()
		created := &domain.Requirement{
			ProductID:           *req.ProductID,
			ModuleID:            *req.ModuleID,
			Code:                req.Code,
			Name:                req.Name,
			Description:         req.Description,
			Priority:            req.Priority,
			Status:              domain.RequirementDraft,
			VersionID:           *req.VersionID,
			Owner:               req.Owner,
			DueDate:             req.DueDate,
			EstimateStoryPoints: req.EstimateStoryPoints,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if err := sc.requirements.Create(ctx, created); err != nil {
			return err
		}
		r = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *requirementService) GetByID(ctx context.Context, id int64) (*domain.Requirement, error) {
	return s.requirements.GetByID(ctx, id)
}

func (s *requirementService) List(ctx context.Context, f repository.ScopeFilter) ([]*domain.Requirement, error) {
	return s.requirements.List(ctx, f)
}

// Update validates the effective product/module pair before applying any
// field. The version is re-checked only when the product or version changes,
// and a requirement with tasks keeps its product.
func (s *requirementService) Update(ctx context.Context, id int64, req contract.UpdateRequirementRequest) (r *domain.Requirement, err error) {
	defer observe(ctx, s.observer, "update-requirement", time.Now(), map[string]any{"id": id}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sc := newTxScope(tx)

		existing, err := sc.requirements.GetByID(ctx, id)
		if err != nil {
			return err
		}
		productID := domain.Int64FromPtrWithDefault(existing.ProductID, req.ProductID)
		moduleID := domain.Int64FromPtrWithDefault(existing.ModuleID, req.ModuleID)
		if err := sc.validator.CheckProductModule(ctx, &productID, &moduleID); err != nil {
			return err
		}
		if productID != existing.ProductID {
			hasTasks, err := sc.tasks.ExistsByRequirementID(ctx, existing.ID)
			if err != nil {
				return err
			}
			if hasTasks {
				return domain.Conflictf("requirement %d has tasks; its product cannot change", existing.ID)
			}
		}
		if req.ProductID != nil || req.VersionID != nil {
			versionID := domain.Int64FromPtrWithDefault(existing.VersionID, req.VersionID)
			if err := sc.validator.CheckVersion(ctx, productID, &versionID); err != nil {
				return err
			}
		}

		existing.ProductID = productID
		existing.ModuleID = moduleID
		domain.Patch(&existing.Name, req.Name)
		domain.Patch(&existing.Description, req.Description)
		domain.PatchNonBlank(&existing.Priority, req.Priority)
		domain.PatchNonBlank(&existing.Status, req.Status)
		domain.Patch(&existing.VersionID, req.VersionID)
		domain.Patch(&existing.Owner, req.Owner)
		domain.PatchPtr(&existing.DueDate, req.DueDate)
		domain.PatchPtr(&existing.EstimateStoryPoints, req.EstimateStoryPoints)
		existing.UpdatedAt = timestamp()

		if err := sc.requirements.Update(ctx, existing); err != nil {
			return err
		}
		r = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *requirementService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "delete-requirement", time.Now(), map[string]any{"id": id}, &err)
	return s.requirements.Delete(ctx, id)
}
