package httpapi

import (
	"net/http"

	"github.com/alexanderramin/rdmanage/internal/contract"
)

func (a *api) listRequirements(w http.ResponseWriter, r *http.Request) {
	f, err := scopeFilter(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	items, err := a.svcs.Requirements.List(r.Context(), f)
	a.respond(w, r, http.StatusOK, listOrEmpty(items), err)
}

func (a *api) getRequirement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	item, err := a.svcs.Requirements.GetByID(r.Context(), id)
	a.respond(w, r, http.StatusOK, item, err)
}

func (a *api) createRequirement(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateRequirementRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	item, err := a.svcs.Requirements.Create(r.Context(), req)
	a.respond(w, r, http.StatusCreated, item, err)
}

func (a *api) updateRequirement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req contract.UpdateRequirementRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	item, err := a.svcs.Requirements.Update(r.Context(), id, req)
	a.respond(w, r, http.StatusOK, item, err)
}

func (a *api) deleteRequirement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusNoContent, nil, a.svcs.Requirements.Delete(r.Context(), id))
}
