package httpapi

import (
	"net/http"

	"github.com/alexanderramin/rdmanage/internal/contract"
)

func (a *api) listTasks(w http.ResponseWriter, r *http.Request) {
	f, err := scopeFilter(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	items, err := a.svcs.Tasks.List(r.Context(), f)
	a.respond(w, r, http.StatusOK, listOrEmpty(items), err)
}

func (a *api) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	t, err := a.svcs.Tasks.GetByID(r.Context(), id)
	a.respond(w, r, http.StatusOK, t, err)
}

func (a *api) createTask(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	t, err := a.svcs.Tasks.Create(r.Context(), req)
	a.respond(w, r, http.StatusCreated, t, err)
}

func (a *api) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req contract.UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	t, err := a.svcs.Tasks.Update(r.Context(), id, req)
	a.respond(w, r, http.StatusOK, t, err)
}

func (a *api) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusNoContent, nil, a.svcs.Tasks.Delete(r.Context(), id))
}
