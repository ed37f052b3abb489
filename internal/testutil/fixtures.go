package testutil

import (
	"time"

	"github.com/alexanderramin/rdmanage/internal/domain"
)

// Product options
type ProductOption func(*domain.Product)

func WithProductStatus(s string) ProductOption {
	return func(p *domain.Product) {
		p.Status = s
	}
}

func WithProductOwner(o string) ProductOption {
	return func(p *domain.Product) {
		p.Owner = o
	}
}

func NewTestProduct(code string, opts ...ProductOption) *domain.Product {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Product{
		Code:      code,
		Name:      code + " product",
		Owner:     "owner",
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProductModule options
type ModuleOption func(*domain.ProductModule)

// WithParent places the module under parent, one level deeper.
func WithParent(parent *domain.ProductModule) ModuleOption {
	return func(m *domain.ProductModule) {
		id := parent.ID
		m.ParentID = &id
		m.Level = parent.Level + 1
	}
}

func WithParentID(id int64) ModuleOption {
	return func(m *domain.ProductModule) {
		m.ParentID = &id
	}
}

func WithLevel(level int) ModuleOption {
	return func(m *domain.ProductModule) {
		m.Level = level
	}
}

func WithSortOrder(n int) ModuleOption {
	return func(m *domain.ProductModule) {
		m.SortOrder = n
	}
}

func NewTestModule(productID int64, code string, opts ...ModuleOption) *domain.ProductModule {
	now := time.Now().UTC().Truncate(time.Second)
	m := &domain.ProductModule{
		ProductID: productID,
		Level:     domain.MinModuleLevel,
		Code:      code,
		Name:      code + " module",
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// VersionInfo options
type VersionOption func(*domain.VersionInfo)

func WithPlanReleaseDate(d domain.Date) VersionOption {
	return func(v *domain.VersionInfo) {
		v.PlanReleaseDate = d
	}
}

func WithActualReleaseDate(d domain.Date) VersionOption {
	return func(v *domain.VersionInfo) {
		v.ActualReleaseDate = &d
	}
}

func NewTestVersion(productID, moduleID int64, code string, opts ...VersionOption) *domain.VersionInfo {
	now := time.Now().UTC().Truncate(time.Second)
	v := &domain.VersionInfo{
		ProductID:       productID,
		ModuleID:        moduleID,
		VersionCode:     code,
		Name:            "Release " + code,
		Owner:           "owner",
		PlanReleaseDate: domain.NewDate(2025, time.March, 1),
		Status:          domain.VersionPlanned,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Requirement options
type RequirementOption func(*domain.Requirement)

func WithRequirementStatus(s string) RequirementOption {
	return func(r *domain.Requirement) {
		r.Status = s
	}
}

func WithRequirementDueDate(d domain.Date) RequirementOption {
	return func(r *domain.Requirement) {
		r.DueDate = &d
	}
}

func WithStoryPoints(n int) RequirementOption {
	return func(r *domain.Requirement) {
		r.EstimateStoryPoints = &n
	}
}

func NewTestRequirement(productID, moduleID, versionID int64, code string, opts ...RequirementOption) *domain.Requirement {
	now := time.Now().UTC().Truncate(time.Second)
	r := &domain.Requirement{
		ProductID: productID,
		ModuleID:  moduleID,
		VersionID: versionID,
		Code:      code,
		Name:      code + " requirement",
		Priority:  "HIGH",
		Status:    domain.RequirementDraft,
		Owner:     "owner",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TaskItem options
type TaskOption func(*domain.TaskItem)

func WithTaskStatus(s string) TaskOption {
	return func(t *domain.TaskItem) {
		t.Status = s
	}
}

func WithEstimateHours(h int) TaskOption {
	return func(t *domain.TaskItem) {
		t.EstimateHours = &h
	}
}

func WithTaskDueDate(d domain.Date) TaskOption {
	return func(t *domain.TaskItem) {
		t.DueDate = &d
	}
}

func NewTestTask(productID, moduleID, requirementID int64, title string, opts ...TaskOption) *domain.TaskItem {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.TaskItem{
		ProductID:     productID,
		ModuleID:      moduleID,
		RequirementID: requirementID,
		Title:         title,
		Assignee:      "dev",
		Status:        domain.TaskTodo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// DictItem options
type DictOption func(*domain.DictItem)

func WithDictSortOrder(n int) DictOption {
	return func(d *domain.DictItem) {
		d.SortOrder = n
	}
}

func WithDictInactive() DictOption {
	return func(d *domain.DictItem) {
		d.IsActive = 0
	}
}

func NewTestDict(dictType, code string, opts ...DictOption) *domain.DictItem {
	now := time.Now().UTC().Truncate(time.Second)
	d := &domain.DictItem{
		DictType:  dictType,
		DictCode:  code,
		DictLabel: code,
		SortOrder: domain.DefaultSortOrder,
		IsActive:  domain.DictActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
