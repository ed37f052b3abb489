package contract

import "fmt"

// DictItemRequest is used for both create and update; an update replaces
// every field.
type DictItemRequest struct {
	DictType  string `json:"dictType"`
	DictCode  string `json:"dictCode"`
	DictLabel string `json:"dictLabel"`
	SortOrder *int   `json:"sortOrder"`
	IsActive  *int   `json:"isActive"`
	Remark    string `json:"remark"`
}

func (r *DictItemRequest) Validate() error {
	var fe fieldErrors
	fe.required("dictType", r.DictType)
	fe.required("dictCode", r.DictCode)
	fe.required("dictLabel", r.DictLabel)
	if r.IsActive != nil && *r.IsActive != 0 && *r.IsActive != 1 {
		fe = append(fe, fmt.Errorf("isActive must be 0 or 1"))
	}
	return fe.err()
}
