package httpapi

import (
	"net/http"

	"github.com/alexanderramin/rdmanage/internal/importer"
)

// importProduct creates a product and everything under it from one
// import document, atomically.
func (a *api) importProduct(w http.ResponseWriter, r *http.Request) {
	var schema importer.ImportSchema
	if err := decodeJSON(r, &schema); err != nil {
		a.writeError(w, r, err)
		return
	}
	res, err := a.svcs.Import.Import(r.Context(), &schema)
	a.respond(w, r, http.StatusCreated, res, err)
}
