package domain

import "time"

type TaskItem struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"productId"`
	ModuleID      int64     `json:"moduleId"`
	RequirementID int64     `json:"requirementId"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Assignee      string    `json:"assignee"`
	Status        string    `json:"status"`
	DueDate       *Date     `json:"dueDate,omitempty"`
	EstimateHours *int      `json:"estimateHours,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
