package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garrison/internal/application/asset/dto"
	"garrison/internal/application/asset/usecases"
	"garrison/internal/interfaces/http/handlers/testutil"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/errors"
)

type mockCreateAssetUC struct {
	result *dto.AssetDTO
	err    error
}

func (m *mockCreateAssetUC) Execute(ctx context.Context, cmd usecases.CreateAssetCommand) (*dto.AssetDTO, error) {
	return m.result, m.err
}

type mockGetAssetUC struct {
	result *dto.AssetDTO
	err    error
}

func (m *mockGetAssetUC) Execute(ctx context.Context, query usecases.GetAssetQuery) (*dto.AssetDTO, error) {
	return m.result, m.err
}

type mockUpdateAssetUC struct {
	result *dto.AssetDTO
	err    error
}

func (m *mockUpdateAssetUC) Execute(ctx context.Context, cmd usecases.UpdateAssetCommand) (*dto.AssetDTO, error) {
	return m.result, m.err
}

type mockDeleteAssetUC struct {
	err error
}

func (m *mockDeleteAssetUC) Execute(ctx context.Context, cmd usecases.DeleteAssetCommand) error {
	return m.err
}

type mockListAssetsUC struct {
	result  *usecases.ListAssetsResult
	err     error
	gotPage int
}

func (m *mockListAssetsUC) Execute(ctx context.Context, query usecases.ListAssetsQuery) (*usecases.ListAssetsResult, error) {
	m.gotPage = query.Page
	return m.result, m.err
}

func newTestAssetHandler(
	createUC usecases.CreateAssetExecutor,
	getUC usecases.GetAssetExecutor,
	updateUC usecases.UpdateAssetExecutor,
	deleteUC usecases.DeleteAssetExecutor,
	listUC usecases.ListAssetsExecutor,
) *AssetHandler {
	return NewAssetHandler(createUC, getUC, updateUC, deleteUC, listUC, testutil.NewMockLogger())
}

func adminTestIdentity() authorization.Identity {
	return authorization.Identity{UserID: 1, Email: "hq@garrison.mil", Role: authorization.RoleAdmin}
}

func TestAssetHandler_Create_Success(t *testing.T) {
	mockUC := &mockCreateAssetUC{result: &dto.AssetDTO{ID: 7, Name: "Radio Set", Type: "radio"}}
	handler := newTestAssetHandler(mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/assets", CreateAssetRequest{
		Name: "Radio Set",
		Type: "radio",
	})
	testutil.SetIdentity(c, adminTestIdentity())

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string       `json:"message"`
		Asset   dto.AssetDTO `json:"asset"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Asset created successfully", resp.Message)
	assert.Equal(t, uint(7), resp.Asset.ID)
}

func TestAssetHandler_Create_InvalidBody(t *testing.T) {
	handler := newTestAssetHandler(&mockCreateAssetUC{}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/assets", map[string]string{"name": "no type"})
	testutil.SetIdentity(c, adminTestIdentity())

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssetHandler_Create_Unauthenticated(t *testing.T) {
	handler := newTestAssetHandler(&mockCreateAssetUC{}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/assets", CreateAssetRequest{Name: "x", Type: "radio"})

	handler.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAssetHandler_Get_NotFound(t *testing.T) {
	mockUC := &mockGetAssetUC{err: errors.NewNotFoundError("Asset not found")}
	handler := newTestAssetHandler(nil, mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/assets/42", nil)
	testutil.SetIdentity(c, adminTestIdentity())
	testutil.SetURLParam(c, "id", "42")

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssetHandler_Get_InvalidID(t *testing.T) {
	handler := newTestAssetHandler(nil, &mockGetAssetUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/assets/abc", nil)
	testutil.SetIdentity(c, adminTestIdentity())
	testutil.SetURLParam(c, "id", "abc")

	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssetHandler_Delete_Forbidden(t *testing.T) {
	mockUC := &mockDeleteAssetUC{err: errors.NewForbiddenError("Access denied")}
	handler := newTestAssetHandler(nil, nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/assets/3", nil)
	testutil.SetIdentity(c, adminTestIdentity())
	testutil.SetURLParam(c, "id", "3")

	handler.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Access denied", resp.Message)
}

func TestAssetHandler_List_PassesFilters(t *testing.T) {
	mockUC := &mockListAssetsUC{result: &usecases.ListAssetsResult{
		Assets:     []*dto.AssetDTO{{ID: 1, Name: "Radio Set"}},
		Total:      1,
		Page:       2,
		TotalPages: 1,
	}}
	handler := newTestAssetHandler(nil, nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/assets", nil)
	testutil.SetIdentity(c, adminTestIdentity())
	testutil.SetQueryParams(c, map[string]string{"page": "2", "type": "radio"})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, mockUC.gotPage)

	var resp struct {
		Assets []json.RawMessage `json:"assets"`
		Total  int64             `json:"total"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Len(t, resp.Assets, 1)
	assert.Equal(t, int64(1), resp.Total)
}
