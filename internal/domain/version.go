package domain

import "time"

// VersionInfo is a planned release of a product module. It cannot be
// deleted while requirements still reference it.
type VersionInfo struct {
	ID                int64     `json:"id"`
	ProductID         int64     `json:"productId"`
	ModuleID          int64     `json:"moduleId"`
	VersionCode       string    `json:"versionCode"`
	Name              string    `json:"name"`
	Owner             string    `json:"owner"`
	PlanReleaseDate   Date      `json:"planReleaseDate"`
	ActualReleaseDate *Date     `json:"actualReleaseDate,omitempty"`
	Status            string    `json:"status"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Released reports whether an actual release date has been recorded.
func (v *VersionInfo) Released() bool {
	return v.ActualReleaseDate != nil
}
