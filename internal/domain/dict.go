package domain

import "time"

// DictItem is one entry of a typed lookup list (priorities, statuses, ...).
type DictItem struct {
	ID        int64     `json:"id"`
	DictType  string    `json:"dictType"`
	DictCode  string    `json:"dictCode"`
	DictLabel string    `json:"dictLabel"`
	SortOrder int       `json:"sortOrder"`
	IsActive  int       `json:"isActive"`
	Remark    string    `json:"remark,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
