package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rdmanage/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateProduct(&schema.Product)...)

	depth := make(map[string]int)
	errs = append(errs, validateModules(schema.Modules, depth)...)

	versionRefs := make(map[string]bool)
	errs = append(errs, validateVersions(schema.Versions, depth, versionRefs)...)

	reqRefs := make(map[string]bool)
	errs = append(errs, validateRequirements(schema.Requirements, depth, versionRefs, reqRefs)...)

	errs = append(errs, validateTasks(schema.Tasks, depth, reqRefs)...)
	errs = append(errs, validateDicts(schema.Dicts)...)

	return errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateProduct(p *ProductImport) []error {
	var errs []error
	if blank(p.Code) {
		errs = append(errs, fmt.Errorf("product.code is required"))
	}
	if blank(p.Name) {
		errs = append(errs, fmt.Errorf("product.name is required"))
	}
	return errs
}

// validateModules records the level of every valid module ref in depth.
func validateModules(modules []ModuleImport, depth map[string]int) []error {
	var errs []error
	codes := make(map[string]bool)

	for i, m := range modules {
		prefix := fmt.Sprintf("modules[%d]", i)

		level := domain.MinModuleLevel
		if m.ParentRef != nil && *m.ParentRef != "" {
			parentLevel, ok := depth[*m.ParentRef]
			if !ok {
				errs = append(errs, fmt.Errorf("%s.parent_ref: ref %q not found (must appear earlier in modules list)", prefix, *m.ParentRef))
			}
			level = parentLevel + 1
			if ok && !domain.ValidLevel(level) {
				errs = append(errs, fmt.Errorf("%s: module tree is at most %d levels deep", prefix, domain.MaxModuleLevel))
			}
		}

		switch {
		case m.Ref == "":
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		case depth[m.Ref] != 0:
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, m.Ref))
		default:
			depth[m.Ref] = level
		}

		if blank(m.Code) {
			errs = append(errs, fmt.Errorf("%s.code is required", prefix))
		} else if codes[m.Code] {
			errs = append(errs, fmt.Errorf("%s.code: duplicate code %q", prefix, m.Code))
		} else {
			codes[m.Code] = true
		}
		if blank(m.Name) {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if m.SortOrder < 0 {
			errs = append(errs, fmt.Errorf("%s.sort_order must not be negative", prefix))
		}
	}

	return errs
}

func validateModuleRef(prefix, ref string, depth map[string]int) []error {
	if ref == "" {
		return []error{fmt.Errorf("%s.module_ref is required", prefix)}
	}
	if depth[ref] == 0 {
		return []error{fmt.Errorf("%s.module_ref: ref %q not found in modules", prefix, ref)}
	}
	return nil
}

func validateVersions(versions []VersionImport, depth map[string]int, refs map[string]bool) []error {
	var errs []error

	for i, v := range versions {
		prefix := fmt.Sprintf("versions[%d]", i)

		if v.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[v.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, v.Ref))
		} else {
			refs[v.Ref] = true
		}

		errs = append(errs, validateModuleRef(prefix, v.ModuleRef, depth)...)
		errs = append(errs, requireFields(prefix, []field{
			{"version_code", v.VersionCode},
			{"name", v.Name},
			{"owner", v.Owner},
		})...)

		if v.PlanReleaseDate == "" {
			errs = append(errs, fmt.Errorf("%s.plan_release_date is required", prefix))
		} else {
			errs = append(errs, validateOptionalDate(prefix+".plan_release_date", &v.PlanReleaseDate)...)
		}
		errs = append(errs, validateOptionalDate(prefix+".actual_release_date", v.ActualReleaseDate)...)
	}

	return errs
}

func validateRequirements(reqs []RequirementImport, depth map[string]int, versionRefs, refs map[string]bool) []error {
	var errs []error

	for i, r := range reqs {
		prefix := fmt.Sprintf("requirements[%d]", i)

		if r.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[r.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, r.Ref))
		} else {
			refs[r.Ref] = true
		}

		errs = append(errs, validateModuleRef(prefix, r.ModuleRef, depth)...)
		if r.VersionRef == "" {
			errs = append(errs, fmt.Errorf("%s.version_ref is required", prefix))
		} else if !versionRefs[r.VersionRef] {
			errs = append(errs, fmt.Errorf("%s.version_ref: ref %q not found in versions", prefix, r.VersionRef))
		}

		errs = append(errs, requireFields(prefix, []field{
			{"code", r.Code},
			{"name", r.Name},
			{"priority", r.Priority},
			{"owner", r.Owner},
		})...)
		errs = append(errs, validateOptionalDate(prefix+".due_date", r.DueDate)...)
		if r.EstimateStoryPoints != nil && *r.EstimateStoryPoints < 0 {
			errs = append(errs, fmt.Errorf("%s.estimate_story_points must not be negative", prefix))
		}
	}

	return errs
}

func validateTasks(tasks []TaskImport, depth map[string]int, reqRefs map[string]bool) []error {
	var errs []error

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.RequirementRef == "" {
			errs = append(errs, fmt.Errorf("%s.requirement_ref is required", prefix))
		} else if !reqRefs[t.RequirementRef] {
			errs = append(errs, fmt.Errorf("%s.requirement_ref: ref %q not found in requirements", prefix, t.RequirementRef))
		}
		if t.ModuleRef != "" {
			errs = append(errs, validateModuleRef(prefix, t.ModuleRef, depth)...)
		}

		errs = append(errs, requireFields(prefix, []field{
			{"title", t.Title},
			{"assignee", t.Assignee},
		})...)
		errs = append(errs, validateOptionalDate(prefix+".due_date", t.DueDate)...)
		if t.EstimateHours != nil && *t.EstimateHours < 0 {
			errs = append(errs, fmt.Errorf("%s.estimate_hours must not be negative", prefix))
		}
	}

	return errs
}

func validateDicts(items []DictImport) []error {
	var errs []error

	for i, d := range items {
		prefix := fmt.Sprintf("dicts[%d]", i)
		errs = append(errs, requireFields(prefix, []field{
			{"dict_type", d.DictType},
			{"dict_code", d.DictCode},
			{"dict_label", d.DictLabel},
		})...)
		if d.IsActive != nil && *d.IsActive != 0 && *d.IsActive != 1 {
			errs = append(errs, fmt.Errorf("%s.is_active must be 0 or 1", prefix))
		}
	}

	return errs
}

type field struct {
	name  string
	value string
}

func requireFields(prefix string, fields []field) []error {
	var errs []error
	for _, f := range fields {
		if blank(f.value) {
			errs = append(errs, fmt.Errorf("%s.%s is required", prefix, f.name))
		}
	}
	return errs
}

func validateOptionalDate(field string, s *string) []error {
	if s == nil {
		return nil
	}
	if _, err := domain.ParseDate(*s); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *s)}
	}
	return nil
}
