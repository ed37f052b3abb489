package domain

// Default values assigned on create. Status fields are free text; any
// non-blank value is accepted on update.
const (
	StatusActive     = "ACTIVE"
	RequirementDraft = "DRAFT"
	TaskTodo         = "TODO"
	VersionPlanned   = "PLANNED"

	DictActive       = 1
	DefaultSortOrder = 0
)

// Module hierarchy depth bounds.
const (
	MinModuleLevel = 1
	MaxModuleLevel = 3
)
