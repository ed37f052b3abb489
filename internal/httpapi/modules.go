package httpapi

import (
	"net/http"

	"github.com/alexanderramin/rdmanage/internal/contract"
	"github.com/alexanderramin/rdmanage/internal/repository"
)

// listModules accepts optional productId and parentId filters.
func (a *api) listModules(w http.ResponseWriter, r *http.Request) {
	productID, err := queryInt64(r, "productId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	parentID, err := queryInt64(r, "parentId")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	modules, err := a.svcs.Modules.List(r.Context(), repository.ModuleFilter{ProductID: productID, ParentID: parentID})
	a.respond(w, r, http.StatusOK, listOrEmpty(modules), err)
}

func (a *api) getModule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	m, err := a.svcs.Modules.GetByID(r.Context(), id)
	a.respond(w, r, http.StatusOK, m, err)
}

func (a *api) createModule(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateModuleRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	m, err := a.svcs.Modules.Create(r.Context(), req)
	a.respond(w, r, http.StatusCreated, m, err)
}

func (a *api) updateModule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req contract.UpdateModuleRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	m, err := a.svcs.Modules.Update(r.Context(), id, req)
	a.respond(w, r, http.StatusOK, m, err)
}

func (a *api) deleteModule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusNoContent, nil, a.svcs.Modules.Delete(r.Context(), id))
}
