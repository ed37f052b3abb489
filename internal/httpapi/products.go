package httpapi

import (
	"net/http"

	"github.com/alexanderramin/rdmanage/internal/contract"
)

func (a *api) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.svcs.Products.List(r.Context())
	a.respond(w, r, http.StatusOK, listOrEmpty(products), err)
}

func (a *api) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	p, err := a.svcs.Products.GetByID(r.Context(), id)
	a.respond(w, r, http.StatusOK, p, err)
}

func (a *api) createProduct(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	p, err := a.svcs.Products.Create(r.Context(), req)
	a.respond(w, r, http.StatusCreated, p, err)
}

func (a *api) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req contract.UpdateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	p, err := a.svcs.Products.Update(r.Context(), id, req)
	a.respond(w, r, http.StatusOK, p, err)
}

func (a *api) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusNoContent, nil, a.svcs.Products.Delete(r.Context(), id))
}
