package service

import (
	"context"
	"time"

	"github.com/alexanderramin/rdmanage/internal/contract"
	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/repository"
)

type taskService struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	return &taskService{tasks: tasks, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *taskService) Create(ctx context.Context, req contract.CreateTaskRequest) (t *domain.TaskItem, err error) {
	defer observe(ctx, s.observer, "create-task", time.Now(), map[string]any{"title": req.Title}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sc := newTxScope(tx)
		if err := sc.validator.CheckProductModule(ctx, req.ProductID, req.ModuleID); err != nil {
			return err
		}
		if err := sc.validator.CheckRequirement(ctx, *req.ProductID, req.RequirementID); err != nil {
			return err
		}

		now := timestamp()
		created := &domain.TaskItem{
			ProductID:     *req.ProductID,
			ModuleID:      *req.ModuleID,
			RequirementID: *req.RequirementID,
			Title:         req.Title,
			Description:   req.Description,
			Assignee:      req.Assignee,
			Status:        domain.TaskTodo,
			DueDate:       req.DueDate,
			EstimateHours: req.EstimateHours,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := sc.tasks.Create(ctx, created); err != nil {
			return err
		}
		t = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*domain.TaskItem, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, f repository.ScopeFilter) ([]*domain.TaskItem, error) {
	return s.tasks.List(ctx, f)
}

func (s *taskService) Update(ctx context.Context, id int64, req contract.UpdateTaskRequest) (t *domain.TaskItem, err error) {
	defer observe(ctx, s.observer, "update-task", time.Now(), map[string]any{"id": id}, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sc := newTxScope(tx)

		existing, err := sc.tasks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		productID := domain.Int64FromPtrWithDefault(existing.ProductID, req.ProductID)
		moduleID := domain.Int64FromPtrWithDefault(existing.ModuleID, req.ModuleID)
		if err := sc.validator.CheckProductModule(ctx, &productID, &moduleID); err != nil {
			return err
		}
		if productID != existing.ProductID {
			if err := sc.validator.CheckRequirement(ctx, productID, &existing.RequirementID); err != nil {
				return err
			}
		}

		existing.ProductID = productID
		existing.ModuleID = moduleID
		domain.Patch(&existing.Title, req.Title)
		domain.Patch(&existing.Description, req.Description)
		domain.Patch(&existing.Assignee, req.Assignee)
		domain.PatchNonBlank(&existing.Status, req.Status)
		domain.PatchPtr(&existing.DueDate, req.DueDate)
		domain.PatchPtr(&existing.EstimateHours, req.EstimateHours)
		existing.UpdatedAt = timestamp()

		if err := sc.tasks.Update(ctx, existing); err != nil {
			return err
		}
		t = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "delete-task", time.Now(), map[string]any{"id": id}, &err)
	return s.tasks.Delete(ctx, id)
}
