package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a product import file: one
// product with its module tree and the records hanging off it. Records
// refer to each other by file-local refs.
type ImportSchema struct {
	Product      ProductImport       `json:"product" yaml:"product"`
	Modules      []ModuleImport      `json:"modules" yaml:"modules"`
	Versions     []VersionImport     `json:"versions,omitempty" yaml:"versions,omitempty"`
	Requirements []RequirementImport `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Tasks        []TaskImport        `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Dicts        []DictImport        `json:"dicts,omitempty" yaml:"dicts,omitempty"`
}

type ProductImport struct {
	Code        string `json:"code" yaml:"code"`
	Name        string `json:"name" yaml:"name"`
	Owner       string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Status      string `json:"status,omitempty" yaml:"status,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ModuleImport is one module. Its level is implied by the depth of the
// parent_ref chain; parents must appear earlier in the list.
type ModuleImport struct {
	Ref         string  `json:"ref" yaml:"ref"`
	ParentRef   *string `json:"parent_ref,omitempty" yaml:"parent_ref,omitempty"`
	Code        string  `json:"code" yaml:"code"`
	Name        string  `json:"name" yaml:"name"`
	Owner       string  `json:"owner,omitempty" yaml:"owner,omitempty"`
	SortOrder   int     `json:"sort_order,omitempty" yaml:"sort_order,omitempty"`
	Status      string  `json:"status,omitempty" yaml:"status,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

type VersionImport struct {
	Ref               string  `json:"ref" yaml:"ref"`
	ModuleRef         string  `json:"module_ref" yaml:"module_ref"`
	VersionCode       string  `json:"version_code" yaml:"version_code"`
	Name              string  `json:"name" yaml:"name"`
	Owner             string  `json:"owner" yaml:"owner"`
	PlanReleaseDate   string  `json:"plan_release_date" yaml:"plan_release_date"`
	ActualReleaseDate *string `json:"actual_release_date,omitempty" yaml:"actual_release_date,omitempty"`
	Status            string  `json:"status,omitempty" yaml:"status,omitempty"`
	Description       string  `json:"description,omitempty" yaml:"description,omitempty"`
}

type RequirementImport struct {
	Ref                 string  `json:"ref" yaml:"ref"`
	ModuleRef           string  `json:"module_ref" yaml:"module_ref"`
	VersionRef          string  `json:"version_ref" yaml:"version_ref"`
	Code                string  `json:"code" yaml:"code"`
	Name                string  `json:"name" yaml:"name"`
	Description         string  `json:"description,omitempty" yaml:"description,omitempty"`
	Priority            string  `json:"priority" yaml:"priority"`
	Status              string  `json:"status,omitempty" yaml:"status,omitempty"`
	Owner               string  `json:"owner" yaml:"owner"`
	DueDate             *string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	EstimateStoryPoints *int    `json:"estimate_story_points,omitempty" yaml:"estimate_story_points,omitempty"`
}

// TaskImport is one task. It belongs to its requirement's module unless
// module_ref says otherwise.
type TaskImport struct {
	RequirementRef string  `json:"requirement_ref" yaml:"requirement_ref"`
	ModuleRef      string  `json:"module_ref,omitempty" yaml:"module_ref,omitempty"`
	Title          string  `json:"title" yaml:"title"`
	Description    string  `json:"description,omitempty" yaml:"description,omitempty"`
	Assignee       string  `json:"assignee" yaml:"assignee"`
	Status         string  `json:"status,omitempty" yaml:"status,omitempty"`
	DueDate        *string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	EstimateHours  *int    `json:"estimate_hours,omitempty" yaml:"estimate_hours,omitempty"`
}

type DictImport struct {
	DictType  string `json:"dict_type" yaml:"dict_type"`
	DictCode  string `json:"dict_code" yaml:"dict_code"`
	DictLabel string `json:"dict_label" yaml:"dict_label"`
	SortOrder int    `json:"sort_order,omitempty" yaml:"sort_order,omitempty"`
	IsActive  *int   `json:"is_active,omitempty" yaml:"is_active,omitempty"`
	Remark    string `json:"remark,omitempty" yaml:"remark,omitempty"`
}

// LoadImportSchema reads an import file. Files ending in .yaml or .yml are
// parsed as YAML, anything else as JSON.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &schema)
	default:
		err = json.Unmarshal(data, &schema)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
