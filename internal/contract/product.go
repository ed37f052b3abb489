package contract

type CreateProductRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

func (r *CreateProductRequest) Validate() error {
	var fe fieldErrors
	fe.required("code", r.Code)
	fe.required("name", r.Name)
	return fe.err()
}

// UpdateProductRequest carries a partial update. Nil fields are left
// unchanged; a blank status is ignored. The product code is fixed at create.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Owner       *string `json:"owner"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

func (r *UpdateProductRequest) Validate() error {
	var fe fieldErrors
	fe.notBlank("name", r.Name)
	return fe.err()
}
