package domain

import "time"

// ProductModule is a node in a product's three-level module tree.
// Level 1 modules have no parent; level 2 and 3 modules hang off a parent
// of the same product whose level is exactly one less.
type ProductModule struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"productId"`
	ParentID    *int64    `json:"parentId,omitempty"`
	Level       int       `json:"level"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Owner       string    `json:"owner,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsRoot reports whether the module sits at the top of its product tree.
func (m *ProductModule) IsRoot() bool {
	return m.ParentID == nil
}

// ValidLevel reports whether level lies within the supported depth.
func ValidLevel(level int) bool {
	return level >= MinModuleLevel && level <= MaxModuleLevel
}
