package httpapi

import (
	"net/http"

	"github.com/alexanderramin/rdmanage/internal/contract"
)

func (a *api) listDicts(w http.ResponseWriter, r *http.Request) {
	items, err := a.svcs.Dicts.List(r.Context(), r.URL.Query().Get("dictType"))
	a.respond(w, r, http.StatusOK, listOrEmpty(items), err)
}

func (a *api) getDict(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	d, err := a.svcs.Dicts.GetByID(r.Context(), id)
	a.respond(w, r, http.StatusOK, d, err)
}

func (a *api) createDict(w http.ResponseWriter, r *http.Request) {
	var req contract.DictItemRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	d, err := a.svcs.Dicts.Create(r.Context(), req)
	a.respond(w, r, http.StatusCreated, d, err)
}

func (a *api) updateDict(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req contract.DictItemRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	d, err := a.svcs.Dicts.Update(r.Context(), id, req)
	a.respond(w, r, http.StatusOK, d, err)
}

func (a *api) deleteDict(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusNoContent, nil, a.svcs.Dicts.Delete(r.Context(), id))
}
