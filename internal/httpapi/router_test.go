package httpapi

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/service"
	"github.com/alexanderramin/rdmanage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	t       *testing.T
	db      *sql.DB
	handler http.Handler
	metrics *Metrics
	logs    *bytes.Buffer
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	database := testutil.NewTestDB(t)
	metrics := NewMetrics()
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	svcs := service.NewServices(database, metrics, service.NewSlogUseCaseObserver(logger))
	return &testAPI{
		t:       t,
		db:      database,
		handler: NewRouter(svcs, Options{Logger: logger, Metrics: metrics}),
		metrics: metrics,
		logs:    logs,
	}
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// create posts body and decodes the created entity's id.
func (a *testAPI) create(path string, body any) int64 {
	a.t.Helper()
	rec := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	var out struct {
		ID int64 `json:"id"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotZero(a.t, out.ID)
	return out.ID
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func moduleBody(productID int64, parentID *int64, level int, code string) map[string]any {
	body := map[string]any{"productId": productID, "level": level, "code": code, "name": code}
	if parentID != nil {
		body["parentId"] = *parentID
	}
	return body
}

func TestProductLifecycle(t *testing.T) {
	a := newTestAPI(t)

	id := a.create("/api/products", map[string]any{"code": "P1", "name": "Portal"})
	path := fmt.Sprintf("/api/products/%d", id)

	rec := a.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "P1", p.Code)
	assert.Equal(t, domain.StatusActive, p.Status)

	rec = a.do(http.MethodPut, path, map[string]any{"name": "Portal v2", "status": ""})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Portal v2", p.Name)
	assert.Equal(t, domain.StatusActive, p.Status, "blank status is ignored")

	rec = a.do(http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = a.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = a.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, KindNotFound, decodeError(t, rec).Error)

	rec = a.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmptyListsEncodeAsArrays(t *testing.T) {
	a := newTestAPI(t)
	for _, path := range []string{
		"/api/products", "/api/modules", "/api/requirements",
		"/api/tasks", "/api/versions", "/api/dicts",
	} {
		rec := a.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, "[]", rec.Body.String(), path)
	}
}

func TestModuleHierarchyOverHTTP(t *testing.T) {
	a := newTestAPI(t)
	p1 := a.create("/api/products", map[string]any{"code": "P1", "name": "P1"})
	m1 := a.create("/api/modules", moduleBody(p1, nil, 1, "M1"))
	m2 := a.create("/api/modules", moduleBody(p1, &m1, 2, "M2"))

	// Level 3 under a level 1 parent skips a level.
	rec := a.do(http.MethodPost, "/api/modules", moduleBody(p1, &m1, 3, "M3"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, KindInvalidReference, decodeError(t, rec).Error)

	a.create("/api/modules", moduleBody(p1, &m2, 3, "M3"))

	rec = a.do(http.MethodPost, "/api/modules", moduleBody(p1, nil, 4, "M4"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, KindInvalidReference, decodeError(t, rec).Error)

	rec = a.do(http.MethodGet, fmt.Sprintf("/api/modules?productId=%d&parentId=%d", p1, m1), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var children []domain.ProductModule
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &children))
	require.Len(t, children, 1)
	assert.Equal(t, m2, children[0].ID)
}

func TestVersionDeleteGuardOverHTTP(t *testing.T) {
	a := newTestAPI(t)
	p1 := a.create("/api/products", map[string]any{"code": "P1", "name": "P1"})
	m1 := a.create("/api/modules", moduleBody(p1, nil, 1, "M1"))
	v1 := a.create("/api/versions", map[string]any{
		"productId": p1, "moduleId": m1, "versionCode": "V1", "name": "V1",
		"owner": "pm", "planReleaseDate": "2025-06-01",
	})
	r1 := a.create("/api/requirements", map[string]any{
		"productId": p1, "moduleId": m1, "versionId": v1, "code": "R1",
		"name": "R1", "priority": "HIGH", "owner": "pm",
	})

	rec := a.do(http.MethodDelete, fmt.Sprintf("/api/versions/%d", v1), nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, KindConflict, decodeError(t, rec).Error)

	rec = a.do(http.MethodGet, fmt.Sprintf("/api/versions/%d", v1), nil)
	assert.Equal(t, http.StatusOK, rec.Code, "version survives the refused delete")

	rec = a.do(http.MethodDelete, fmt.Sprintf("/api/requirements/%d", r1), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(http.MethodDelete, fmt.Sprintf("/api/versions/%d", v1), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTaskReferencesOverHTTP(t *testing.T) {
	a := newTestAPI(t)
	p1 := a.create("/api/products", map[string]any{"code": "P1", "name": "P1"})
	p2 := a.create("/api/products", map[string]any{"code": "P2", "name": "P2"})
	m1 := a.create("/api/modules", moduleBody(p1, nil, 1, "M1"))
	v1 := a.create("/api/versions", map[string]any{
		"productId": p1, "moduleId": m1, "versionCode": "V1", "name": "V1",
		"owner": "pm", "planReleaseDate": "2025-06-01",
	})
	r1 := a.create("/api/requirements", map[string]any{
		"productId": p1, "moduleId": m1, "versionId": v1, "code": "R1",
		"name": "R1", "priority": "HIGH", "owner": "pm",
	})

	rec := a.do(http.MethodPost, "/api/tasks", map[string]any{
		"productId": p2, "moduleId": m1, "requirementId": r1, "title": "t", "assignee": "dev",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, KindInvalidReference, decodeError(t, rec).Error)

	tk := a.create("/api/tasks", map[string]any{
		"productId": p1, "moduleId": m1, "requirementId": r1, "title": "t",
		"assignee": "dev", "estimateHours": 4,
	})
	rec = a.do(http.MethodGet, fmt.Sprintf("/api/tasks?productId=%d&moduleId=%d", p1, m1), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []domain.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, tk, tasks[0].ID)
	assert.Equal(t, domain.TaskTodo, tasks[0].Status)
}

func TestDictCRUDOverHTTP(t *testing.T) {
	a := newTestAPI(t)
	id := a.create("/api/dicts", map[string]any{"dictType": "priority", "dictCode": "HIGH", "dictLabel": "High"})
	a.create("/api/dicts", map[string]any{"dictType": "status", "dictCode": "DONE", "dictLabel": "Done"})

	rec := a.do(http.MethodGet, "/api/dicts?dictType=priority", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []domain.DictItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)

	rec = a.do(http.MethodPut, fmt.Sprintf("/api/dicts/%d", id), map[string]any{
		"dictType": "priority", "dictCode": "HIGH", "dictLabel": "Urgent", "isActive": 0,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(http.MethodDelete, fmt.Sprintf("/api/dicts/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestErrors(t *testing.T) {
	a := newTestAPI(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		kind   string
	}{
		{"malformed body", http.MethodPost, "/api/products", "{not json", http.StatusBadRequest, KindValidation},
		{"missing required field", http.MethodPost, "/api/products", map[string]any{"code": "P1"}, http.StatusBadRequest, KindValidation},
		{"non numeric id", http.MethodGet, "/api/products/abc", nil, http.StatusBadRequest, KindValidation},
		{"bad filter", http.MethodGet, "/api/modules?productId=x", nil, http.StatusBadRequest, KindValidation},
		{"missing product reference", http.MethodPost, "/api/modules", moduleBody(999, nil, 1, "M1"), http.StatusBadRequest, KindInvalidReference},
		{"unknown route", http.MethodGet, "/api/nope", nil, http.StatusNotFound, KindNotFound},
		{"method not allowed", http.MethodPatch, "/api/products", nil, http.StatusMethodNotAllowed, KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(tt.method, tt.path, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.kind, decodeError(t, rec).Error)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestInternalErrorsAreMaskedAndLogged(t *testing.T) {
	a := newTestAPI(t)
	require.NoError(t, a.db.Close())

	rec := a.do(http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, KindInternal, body.Error)
	assert.Equal(t, "internal server error", body.Message)
	assert.Contains(t, a.logs.String(), "request failed")
	assert.Contains(t, a.logs.String(), "database is closed")
}

func TestRequestIDHeader(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Contains(t, a.logs.String(), "request_id=abc-123")
}

func TestMetricsEndpoint(t *testing.T) {
	a := newTestAPI(t)
	a.create("/api/products", map[string]any{"code": "P1", "name": "P1"})
	a.do(http.MethodGet, "/api/products/1", nil)

	rec := a.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Regexp(t, `rdmanage_http_requests_total\{method="POST",route="/api/products/?",status="201"\} 1`, out)
	assert.Contains(t, out, `rdmanage_http_requests_total{method="GET",route="/api/products/{id}",status="200"} 1`)
	assert.Contains(t, out, `rdmanage_service_use_cases_total{success="true",use_case="create-product"} 1`)
	assert.Contains(t, out, "go_goroutines")
}

func TestRouterWithoutMetrics(t *testing.T) {
	database := testutil.NewTestDB(t)
	handler := NewRouter(service.NewServices(database), Options{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImportOverHTTP(t *testing.T) {
	a := newTestAPI(t)
	raw, err := os.ReadFile("../importer/testdata/portal.json")
	require.NoError(t, err)

	rec := a.do(http.MethodPost, "/api/import", string(raw))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var res service.ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 3, res.ModuleCount)
	assert.Equal(t, "P1", res.Product.Code)

	rec = a.do(http.MethodPost, "/api/import", map[string]any{"product": map[string]any{"code": "X"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, KindValidation, decodeError(t, rec).Error)
}
