package domain

import "time"

type Requirement struct {
	ID                  int64     `json:"id"`
	ProductID           int64     `json:"productId"`
	ModuleID            int64     `json:"moduleId"`
	Code                string    `json:"code"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	Priority            string    `json:"priority"`
	Status              string    `json:"status"`
	VersionID           int64     `json:"versionId"`
	Owner               string    `json:"owner"`
	DueDate             *Date     `json:"dueDate,omitempty"`
	EstimateStoryPoints *int      `json:"estimateStoryPoints,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
