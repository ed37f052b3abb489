package contract

import "github.com/alexanderramin/rdmanage/internal/domain"

type CreateVersionRequest struct {
	ProductID       *int64       `json:"productId"`
	ModuleID        *int64       `json:"moduleId"`
	VersionCode     string       `json:"versionCode"`
	Name            string       `json:"name"`
	Owner           string       `json:"owner"`
	PlanReleaseDate *domain.Date `json:"planReleaseDate"`
	Description     string       `json:"description"`
}

func (r *CreateVersionRequest) Validate() error {
	var fe fieldErrors
	fe.required("versionCode", r.VersionCode)
	fe.required("name", r.Name)
	fe.required("owner", r.Owner)
	if r.PlanReleaseDate == nil {
		fe = append(fe, errRequired("planReleaseDate"))
	}
	return fe.err()
}

// UpdateVersionRequest carries a partial update. The version code is fixed
// at create.
type UpdateVersionRequest struct {
	ProductID         *int64       `json:"productId"`
	ModuleID          *int64       `json:"moduleId"`
	Name              *string      `json:"name"`
	Owner             *string      `json:"owner"`
	PlanReleaseDate   *domain.Date `json:"planReleaseDate"`
	ActualReleaseDate *domain.Date `json:"actualReleaseDate"`
	Status            *string      `json:"status"`
	Description       *string      `json:"description"`
}

func (r *UpdateVersionRequest) Validate() error {
	var fe fieldErrors
	fe.notBlank("name", r.Name)
	return fe.err()
}
