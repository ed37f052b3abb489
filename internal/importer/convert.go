package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/rdmanage/internal/domain"
)

// Plan is a converted import, ordered for insertion. IDs are assigned by the
// store, so cross-record links are kept as indexes into the plan's slices
// and resolved while persisting.
type Plan struct {
	Product      *domain.Product
	Modules      []PlannedModule
	Versions     []PlannedVersion
	Requirements []PlannedRequirement
	Tasks        []PlannedTask
	Dicts        []*domain.DictItem
}

// PlannedModule links a module to its parent; Parent is -1 for roots.
type PlannedModule struct {
	Module *domain.ProductModule
	Parent int
}

type PlannedVersion struct {
	Version *domain.VersionInfo
	Module  int
}

type PlannedRequirement struct {
	Requirement *domain.Requirement
	Module      int
	Version     int
}

type PlannedTask struct {
	Task        *domain.TaskItem
	Module      int
	Requirement int
}

// Convert transforms a validated ImportSchema into domain objects ready for persistence.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema, now time.Time) (*Plan, error) {
	p := schema.Product
	plan := &Plan{
		Product: &domain.Product{
			Code:        p.Code,
			Name:        p.Name,
			Owner:       p.Owner,
			Status:      domain.CoalesceStr(p.Status, domain.StatusActive),
			Description: p.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	moduleIdx := make(map[string]int, len(schema.Modules))
	for i, m := range schema.Modules {
		parent, level := -1, domain.MinModuleLevel
		if m.ParentRef != nil && *m.ParentRef != "" {
			parent = moduleIdx[*m.ParentRef]
			level = plan.Modules[parent].Module.Level + 1
		}
		moduleIdx[m.Ref] = i
		plan.Modules = append(plan.Modules, PlannedModule{
			Parent: parent,
			Module: &domain.ProductModule{
				Level:       level,
				Code:        m.Code,
				Name:        m.Name,
				Owner:       m.Owner,
				SortOrder:   m.SortOrder,
				Status:      domain.CoalesceStr(m.Status, domain.StatusActive),
				Description: m.Description,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		})
	}

	versionIdx := make(map[string]int, len(schema.Versions))
	for i, v := range schema.Versions {
		planned, err := domain.ParseDate(v.PlanReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("versions[%d]: %w", i, err)
		}
		actual, err := parseOptionalDate(v.ActualReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("versions[%d]: %w", i, err)
		}
		versionIdx[v.Ref] = i
		plan.Versions = append(plan.Versions, PlannedVersion{
			Module: moduleIdx[v.ModuleRef],
			Version: &domain.VersionInfo{
				VersionCode:       v.VersionCode,
				Name:              v.Name,
				Owner:             v.Owner,
				PlanReleaseDate:   planned,
				ActualReleaseDate: actual,
				Status:            domain.CoalesceStr(v.Status, domain.VersionPlanned),
				Description:       v.Description,
				CreatedAt:         now,
				UpdatedAt:         now,
			},
		})
	}

	reqIdx := make(map[string]int, len(schema.Requirements))
	for i, r := range schema.Requirements {
		due, err := parseOptionalDate(r.DueDate)
		if err != nil {
			return nil, fmt.Errorf("requirements[%d]: %w", i, err)
		}
		reqIdx[r.Ref] = i
		plan.Requirements = append(plan.Requirements, PlannedRequirement{
			Module:  moduleIdx[r.ModuleRef],
			Version: versionIdx[r.VersionRef],
			Requirement: &domain.Requirement{
				Code:                r.Code,
				Name:                r.Name,
				Description:         r.Description,
				Priority:            r.Priority,
				Status:              domain.CoalesceStr(r.Status, domain.RequirementDraft),
				Owner:               r.Owner,
				DueDate:             due,
				EstimateStoryPoints: r.EstimateStoryPoints,
				CreatedAt:           now,
				UpdatedAt:           now,
			},
		})
	}

	for i, t := range schema.Tasks {
		due, err := parseOptionalDate(t.DueDate)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		req := reqIdx[t.RequirementRef]
		module := plan.Requirements[req].Module
		if t.ModuleRef != "" {
			module = moduleIdx[t.ModuleRef]
		}
		plan.Tasks = append(plan.Tasks, PlannedTask{
			Module:      module,
			Requirement: req,
			Task: &domain.TaskItem{
				Title:         t.Title,
				Description:   t.Description,
				Assignee:      t.Assignee,
				Status:        domain.CoalesceStr(t.Status, domain.TaskTodo),
				DueDate:       due,
				EstimateHours: t.EstimateHours,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		})
	}

	for _, d := range schema.Dicts {
		plan.Dicts = append(plan.Dicts, &domain.DictItem{
			DictType:  d.DictType,
			DictCode:  d.DictCode,
			DictLabel: d.DictLabel,
			SortOrder: d.SortOrder,
			IsActive:  domain.IntFromPtrWithDefault(domain.DictActive, d.IsActive),
			Remark:    d.Remark,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return plan, nil
}

func parseOptionalDate(s *string) (*domain.Date, error) {
	if s == nil {
		return nil, nil
	}
	d, err := domain.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
