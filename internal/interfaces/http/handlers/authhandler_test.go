package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garrison/internal/application/auth/dto"
	"garrison/internal/application/auth/usecases"
	"garrison/internal/interfaces/http/handlers/testutil"
	"garrison/internal/shared/errors"
)

type mockRegisterUC struct {
	result *usecases.RegisterResult
	err    error
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error) {
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.result, m.err
}

type mockGetProfileUC struct {
	result *dto.UserDTO
	err    error
}

func (m *mockGetProfileUC) Execute(ctx context.Context, query usecases.GetProfileQuery) (*dto.UserDTO, error) {
	return m.result, m.err
}

func newTestAuthHandler(registerUC usecases.RegisterExecutor, loginUC usecases.LoginExecutor, getProfileUC usecases.GetProfileExecutor) *AuthHandler {
	return NewAuthHandler(registerUC, loginUC, getProfileUC, nil, nil, testutil.NewMockLogger())
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockUC := &mockRegisterUC{result: &usecases.RegisterResult{
		Token: "signed.jwt.token",
		User:  &dto.UserDTO{ID: 5, Name: "Maj. Okonkwo", Email: "okonkwo@garrison.mil", Role: "base_commander"},
	}}
	handler := newTestAuthHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
		Name:     "Maj. Okonkwo",
		Email:    "okonkwo@garrison.mil",
		Password: "fieldglass9",
		Role:     "base_commander",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string      `json:"message"`
		Token   string      `json:"token"`
		User    dto.UserDTO `json:"user"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, uint(5), resp.User.ID)
}

func TestAuthHandler_Register_MissingEmail(t *testing.T) {
	handler := newTestAuthHandler(&mockRegisterUC{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
		"name":     "No Email",
		"password": "fieldglass9",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewInvalidCredentialsError()}
	handler := newTestAuthHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{
		Email:    "okonkwo@garrison.mil",
		Password: "wrong",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Invalid credentials", resp.Message)
}

func TestAuthHandler_GetProfile_Success(t *testing.T) {
	mockUC := &mockGetProfileUC{result: &dto.UserDTO{ID: 1, Name: "HQ Admin", Role: "admin"}}
	handler := newTestAuthHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/profile", nil)
	testutil.SetIdentity(c, adminTestIdentity())

	handler.GetProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User dto.UserDTO `json:"user"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "HQ Admin", resp.User.Name)
}

func TestAuthHandler_GetProfile_Unauthenticated(t *testing.T) {
	handler := newTestAuthHandler(nil, nil, &mockGetProfileUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/profile", nil)

	handler.GetProfile(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
