package service

import (
	"context"

	"github.com/alexanderramin/rdmanage/internal/contract"
	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/repository"
)

type ProductService interface {
	Create(ctx context.Context, req contract.CreateProductRequest) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id int64, req contract.UpdateProductRequest) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type ModuleService interface {
	Create(ctx context.Context, req contract.CreateModuleRequest) (*domain.ProductModule, error)
	GetByID(ctx context.Context, id int64) (*domain.ProductModule, error)
	List(ctx context.Context, f repository.ModuleFilter) ([]*domain.ProductModule, error)
	Update(ctx context.Context, id int64, req contract.UpdateModuleRequest) (*domain.ProductModule, error)
	Delete(ctx context.Context, id int64) error
}

type RequirementService interface {
	Create(ctx context.Context, req contract.CreateRequirementRequest) (*domain.Requirement, error)
	GetByID(ctx context.Context, id int64) (*domain.Requirement, error)
	List(ctx context.Context, f repository.ScopeFilter) ([]*domain.Requirement, error)
	Update(ctx context.Context, id int64, req contract.UpdateRequirementRequest) (*domain.Requirement, error)
	Delete(ctx context.Context, id int64) error
}

type TaskService interface {
	Create(ctx context.Context, req contract.CreateTaskRequest) (*domain.TaskItem, error)
	GetByID(ctx context.Context, id int64) (*domain.TaskItem, error)
	List(ctx context.Context, f repository.ScopeFilter) ([]*domain.TaskItem, error)
	Update(ctx context.Context, id int64, req contract.UpdateTaskRequest) (*domain.TaskItem, error)
	Delete(ctx context.Context, id int64) error
}

type VersionService interface {
	Create(ctx context.Context, req contract.CreateVersionRequest) (*domain.VersionInfo, error)
	GetByID(ctx context.Context, id int64) (*domain.VersionInfo, error)
	List(ctx context.Context, f repository.ScopeFilter) ([]*domain.VersionInfo, error)
	Update(ctx context.Context, id int64, req contract.UpdateVersionRequest) (*domain.VersionInfo, error)
	// Delete refuses with domain.ErrConflict while requirements reference the version.
	Delete(ctx context.Context, id int64) error
}

type DictService interface {
	Create(ctx context.Context, req contract.DictItemRequest) (*domain.DictItem, error)
	GetByID(ctx context.Context, id int64) (*domain.DictItem, error)
	List(ctx context.Context, dictType string) ([]*domain.DictItem, error)
	Update(ctx context.Context, id int64, req contract.DictItemRequest) (*domain.DictItem, error)
	Delete(ctx context.Context, id int64) error
}

// Services bundles every use-case service the transports depend on.
type Services struct {
	Products     ProductService
	Modules      ModuleService
	Requirements RequirementService
	Tasks        TaskService
	Versions     VersionService
	Dicts        DictService
	Import       ImportService
}
