package contract

// CreateModuleRequest creates a product module. ProductID, ParentID and
// Level are checked against the stored hierarchy by the service, so their
// absence surfaces as an invalid reference rather than a validation error.
type CreateModuleRequest struct {
	ProductID   *int64 `json:"productId"`
	ParentID    *int64 `json:"parentId"`
	Level       *int   `json:"level"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	SortOrder   *int   `json:"sortOrder"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

func (r *CreateModuleRequest) Validate() error {
	var fe fieldErrors
	fe.required("code", r.Code)
	fe.required("name", r.Name)
	return fe.err()
}

// UpdateModuleRequest carries a partial update. The merged module is
// re-validated against the hierarchy before it is saved.
type UpdateModuleRequest struct {
	ProductID   *int64  `json:"productId"`
	ParentID    *int64  `json:"parentId"`
	Level       *int    `json:"level"`
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Owner       *string `json:"owner"`
	SortOrder   *int    `json:"sortOrder"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

func (r *UpdateModuleRequest) Validate() error {
	var fe fieldErrors
	fe.notBlank("code", r.Code)
	fe.notBlank("name", r.Name)
	return fe.err()
}
