package contract

import "github.com/alexanderramin/rdmanage/internal/domain"

type CreateTaskRequest struct {
	ProductID     *int64       `json:"productId"`
	ModuleID      *int64       `json:"moduleId"`
	RequirementID *int64       `json:"requirementId"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Assignee      string       `json:"assignee"`
	DueDate       *domain.Date `json:"dueDate"`
	EstimateHours *int         `json:"estimateHours"`
}

func (r *CreateTaskRequest) Validate() error {
	var fe fieldErrors
	fe.required("title", r.Title)
	fe.required("assignee", r.Assignee)
	fe.nonNegative("estimateHours", r.EstimateHours)
	return fe.err()
}

// UpdateTaskRequest carries a partial update. A task stays attached to the
// requirement it was created for.
type UpdateTaskRequest struct {
	ProductID     *int64       `json:"productId"`
	ModuleID      *int64       `json:"moduleId"`
	Title         *string      `json:"title"`
	Description   *string      `json:"description"`
	Assignee      *string      `json:"assignee"`
	Status        *string      `json:"status"`
	DueDate       *domain.Date `json:"dueDate"`
	EstimateHours *int         `json:"estimateHours"`
}

func (r *UpdateTaskRequest) Validate() error {
	var fe fieldErrors
	fe.notBlank("title", r.Title)
	fe.nonNegative("estimateHours", r.EstimateHours)
	return fe.err()
}
