package httpapi

import (
	"net/http"

	"github.com/alexanderramin/rdmanage/internal/contract"
)

func (a *api) listVersions(w http.ResponseWriter, r *http.Request) {
	f, err := scopeFilter(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	items, err := a.svcs.Versions.List(r.Context(), f)
	a.respond(w, r, http.StatusOK, listOrEmpty(items), err)
}

func (a *api) getVersion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	ver, err := a.svcs.Versions.GetByID(r.Context(), id)
	a.respond(w, r, http.StatusOK, ver, err)
}

func (a *api) createVersion(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateVersionRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	ver, err := a.svcs.Versions.Create(r.Context(), req)
	a.respond(w, r, http.StatusCreated, ver, err)
}

func (a *api) updateVersion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req contract.UpdateVersionRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	ver, err := a.svcs.Versions.Update(r.Context(), id, req)
	a.respond(w, r, http.StatusOK, ver, err)
}

// deleteVersion answers 409 while requirements still reference the version.
func (a *api) deleteVersion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusNoContent, nil, a.svcs.Versions.Delete(r.Context(), id))
}
