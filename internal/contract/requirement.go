package contract

import "github.com/alexanderramin/rdmanage/internal/domain"

type CreateRequirementRequest struct {
	ProductID           *int64       `json:"productId"`
	ModuleID            *int64       `json:"moduleId"`
	Code                string       `json:"code"`
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	Priority            string       `json:"priority"`
	VersionID           *int64       `json:"versionId"`
	Owner               string       `json:"owner"`
	DueDate             *domain.Date `json:"dueDate"`
	EstimateStoryPoints *int         `json:"estimateStoryPoints"`
}

func (r *CreateRequirementRequest) Validate() error {
	var fe fieldErrors
	fe.required("code", r.Code)
	fe.required("name", r.Name)
	fe.required("priority", r.Priority)
	fe.required("owner", r.Owner)
	fe.nonNegative("estimateStoryPoints", r.EstimateStoryPoints)
	return fe.err()
}

// UpdateRequirementRequest carries a partial update. Blank priority and
// status values are ignored. The requirement code is fixed at create.
type UpdateRequirementRequest struct {
	ProductID           *int64       `json:"productId"`
	ModuleID            *int64       `json:"moduleId"`
	Name                *string      `json:"name"`
	Description         *string      `json:"description"`
	Priority            *string      `json:"priority"`
	Status              *string      `json:"status"`
	VersionID           *int64       `json:"versionId"`
	Owner               *string      `json:"owner"`
	DueDate             *domain.Date `json:"dueDate"`
	EstimateStoryPoints *int         `json:"estimateStoryPoints"`
}

func (r *UpdateRequirementRequest) Validate() error {
	var fe fieldErrors
	fe.notBlank("name", r.Name)
	fe.nonNegative("estimateStoryPoints", r.EstimateStoryPoints)
	return fe.err()
}
