package contract

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// --- Create requests ---

func TestCreateProductRequest_RequiresCodeAndName(t *testing.T) {
	req := CreateProductRequest{Code: "  ", Owner: "alice"}
	err := req.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "code is required")
	assert.Contains(t, err.Error(), "name is required")

	req = CreateProductRequest{Code: "CRM", Name: "CRM"}
	assert.NoError(t, req.Validate())
}

func TestCreateModuleRequest_LeavesReferencesToService(t *testing.T) {
	// Missing productId and level are reference problems, not field errors.
	req := CreateModuleRequest{Code: "M1", Name: "Module"}
	assert.NoError(t, req.Validate())
}

func TestCreateRequirementRequest_RequiredFields(t *testing.T) {
	req := CreateRequirementRequest{Code: "R1", Name: "Login", EstimateStoryPoints: intPtr(-1)}
	err := req.Validate()
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "priority is required")
	assert.Contains(t, err.Error(), "owner is required")
	assert.Contains(t, err.Error(), "estimateStoryPoints must be >= 0")
}

func TestCreateTaskRequest_RequiredFields(t *testing.T) {
	req := CreateTaskRequest{}
	err := req.Validate()
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "assignee is required")
}

func TestCreateVersionRequest_RequiresPlanReleaseDate(t *testing.T) {
	req := CreateVersionRequest{VersionCode: "v1", Name: "First", Owner: "pm"}
	err := req.Validate()
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "planReleaseDate is required")
}

func TestDictItemRequest_Validate(t *testing.T) {
	req := DictItemRequest{DictType: "priority", DictCode: "HIGH", DictLabel: "High", IsActive: intPtr(2)}
	err := req.Validate()
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "isActive must be 0 or 1")

	req.IsActive = intPtr(0)
	assert.NoError(t, req.Validate())
}

// --- Update requests ---

func TestUpdateRequests_RejectBlankNames(t *testing.T) {
	assert.ErrorIs(t, (&UpdateProductRequest{Name: strPtr("")}).Validate(), domain.ErrValidation)
	assert.ErrorIs(t, (&UpdateModuleRequest{Code: strPtr(" ")}).Validate(), domain.ErrValidation)
	assert.ErrorIs(t, (&UpdateRequirementRequest{Name: strPtr("")}).Validate(), domain.ErrValidation)
	assert.ErrorIs(t, (&UpdateTaskRequest{Title: strPtr("")}).Validate(), domain.ErrValidation)
	assert.ErrorIs(t, (&UpdateVersionRequest{Name: strPtr("")}).Validate(), domain.ErrValidation)
}

func TestUpdateRequests_EmptyIsValid(t *testing.T) {
	assert.NoError(t, (&UpdateProductRequest{}).Validate())
	assert.NoError(t, (&UpdateModuleRequest{}).Validate())
	assert.NoError(t, (&UpdateRequirementRequest{}).Validate())
	assert.NoError(t, (&UpdateTaskRequest{}).Validate())
	assert.NoError(t, (&UpdateVersionRequest{}).Validate())
}

// --- JSON decoding ---

func TestCreateRequirementRequest_DecodesCamelCase(t *testing.T) {
	body := `{"productId":1,"moduleId":2,"code":"R1","name":"Login","priority":"HIGH",
		"versionId":3,"owner":"bob","dueDate":"2025-04-01","estimateStoryPoints":8}`
	var req CreateRequirementRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.NotNil(t, req.ProductID)
	assert.Equal(t, int64(1), *req.ProductID)
	require.NotNil(t, req.VersionID)
	assert.Equal(t, int64(3), *req.VersionID)
	require.NotNil(t, req.DueDate)
	assert.Equal(t, "2025-04-01", req.DueDate.String())
	require.NotNil(t, req.EstimateStoryPoints)
	assert.Equal(t, 8, *req.EstimateStoryPoints)
	assert.NoError(t, req.Validate())
}

func TestUpdateVersionRequest_RejectsMalformedDate(t *testing.T) {
	var req UpdateVersionRequest
	err := json.Unmarshal([]byte(`{"actualReleaseDate":"04/01/2025"}`), &req)
	assert.Error(t, err)
}
