package httpapi

import (
	"net/http"

	"github.com/alexanderramin/rdmanage/internal/repository"
)

// scopeFilter reads the productId and moduleId query parameters shared by
// requirement, task and version listings.
func scopeFilter(r *http.Request) (repository.ScopeFilter, error) {
	productID, err := queryInt64(r, "productId")
	if err != nil {
		return repository.ScopeFilter{}, err
	}
	moduleID, err := queryInt64(r, "moduleId")
	if err != nil {
		return repository.ScopeFilter{}, err
	}
	return repository.ScopeFilter{ProductID: productID, ModuleID: moduleID}, nil
}
