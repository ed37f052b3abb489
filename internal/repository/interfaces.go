package repository

import (
	"context"

	"github.com/alexanderramin/rdmanage/internal/domain"
)

// ModuleFilter narrows a module listing. Nil fields are not filtered on.
type ModuleFilter struct {
	ProductID *int64
	ParentID  *int64
}

// ScopeFilter narrows requirement, task and version listings by owning
// product and module. Nil fields are not filtered on.
type ScopeFilter struct {
	ProductID *int64
	ModuleID  *int64
}

type ProductRepo interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error
}

type ModuleRepo interface {
	Create(ctx context.Context, m *domain.ProductModule) error
	GetByID(ctx context.Context, id int64) (*domain.ProductModule, error)
	List(ctx context.Context, f ModuleFilter) ([]*domain.ProductModule, error)
	HasChildren(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, m *domain.ProductModule) error
	Delete(ctx context.Context, id int64) error
}

type VersionRepo interface {
	Create(ctx context.Context, v *domain.VersionInfo) error
	GetByID(ctx context.Context, id int64) (*domain.VersionInfo, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, f ScopeFilter) ([]*domain.VersionInfo, error)
	ExistsByModuleID(ctx context.Context, moduleID int64) (bool, error)
	Update(ctx context.Context, v *domain.VersionInfo) error
	Delete(ctx context.Context, id int64) error
}

type RequirementRepo interface {
	Create(ctx context.Context, r *domain.Requirement) error
	GetByID(ctx context.Context, id int64) (*domain.Requirement, error)
	List(ctx context.Context, f ScopeFilter) ([]*domain.Requirement, error)
	ExistsByVersionID(ctx context.Context, versionID int64) (bool, error)
	ExistsByModuleID(ctx context.Context, moduleID int64) (bool, error)
	Update(ctx context.Context, r *domain.Requirement) error
	Delete(ctx context.Context, id int64) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.TaskItem) error
	GetByID(ctx context.Context, id int64) (*domain.TaskItem, error)
	List(ctx context.Context, f ScopeFilter) ([]*domain.TaskItem, error)
	ExistsByModuleID(ctx context.Context, moduleID int64) (bool, error)
	ExistsByRequirementID(ctx context.Context, requirementID int64) (bool, error)
	Update(ctx context.Context, t *domain.TaskItem) error
	Delete(ctx context.Context, id int64) error
}

type DictRepo interface {
	Create(ctx context.Context, d *domain.DictItem) error
	GetByID(ctx context.Context, id int64) (*domain.DictItem, error)
	List(ctx context.Context, dictType string) ([]*domain.DictItem, error)
	Update(ctx context.Context, d *domain.DictItem) error
	Delete(ctx context.Context, id int64) error
}
