package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/domain"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req domain.LoginRequest) domain.BaseReturn[string] {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.BaseReturn[string])
}

func (m *MockAuthService) Register(ctx context.Context, req domain.RegisterRequest) domain.BaseReturn[*domain.UserData] {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.BaseReturn[*domain.UserData])
}

func (m *MockAuthService) Logout(ctx context.Context) domain.BaseReturn[string] {
	args := m.Called(ctx)
	return args.Get(0).(domain.BaseReturn[string])
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Login", mock.Anything, domain.LoginRequest{Email: "a@b.com", Password: "123456"}).
		Return(domain.OK("200", "Usuario logado com sucesso", "some.jwt.token"))

	h := NewAuthHandler(mockService)
	c, rec := newContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"123456"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var ret domain.BaseReturn[string]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ret))
	assert.Equal(t, "200", ret.Code)
	assert.Equal(t, "some.jwt.token", ret.Data)
	mockService.AssertExpectations(t)
}

func TestAuthHandler_LoginEnvelopeCodeDrivesStatus(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Login", mock.Anything, mock.Anything).
		Return(domain.Fail[string]("401", "Usuario nao autorizado"))

	h := NewAuthHandler(mockService)
	c, rec := newContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"wrong"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_LoginRejectsInvalidBody(t *testing.T) {
	mockService := new(MockAuthService)
	h := NewAuthHandler(mockService)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"email":`},
		{name: "missing password", body: `{"email":"a@b.com"}`},
		{name: "not an email", body: `{"email":"not-an-email","password":"123456"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(t, http.MethodPost, "/api/auth/login", tt.body)
			require.NoError(t, h.Login(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var ret domain.BaseReturn[string]
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ret))
			assert.Equal(t, "400", ret.Code)
			assert.Contains(t, ret.Message, "Dados inválidos")
		})
	}

	mockService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register(t *testing.T) {
	data := &domain.UserData{Username: "A", Email: "a@b.com", DriverLicense: "123", Cellphone: "119"}

	mockService := new(MockAuthService)
	mockService.On("Register", mock.Anything, mock.AnythingOfType("domain.RegisterRequest")).
		Return(domain.OK("201", "Usuario cadastrado com sucesso!", data))

	h := NewAuthHandler(mockService)
	c, rec := newContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"A","email":"a@b.com","password":"123456","driverLicense":"123","cellphone":"119"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var ret domain.BaseReturn[*domain.UserData]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ret))
	assert.Equal(t, "201", ret.Code)
	require.NotNil(t, ret.Data)
	assert.Equal(t, "A", ret.Data.Username)
}

func TestAuthHandler_RegisterGatewayFailure(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Register", mock.Anything, mock.Anything).
		Return(domain.Fail[*domain.UserData]("502", "Erro de comunicação: dial tcp"))

	h := NewAuthHandler(mockService)
	c, rec := newContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"A","email":"a@b.com","password":"123456","driverLicense":"123","cellphone":"119"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Logout", mock.Anything).
		Return(domain.OK("200", "Logout realizado com sucesso. Remova o token do armazenamento local.", "Usuario deslogado"))

	h := NewAuthHandler(mockService)
	c, rec := newContext(t, http.MethodPost, "/api/auth/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var ret domain.BaseReturn[string]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ret))
	assert.Equal(t, "Usuario deslogado", ret.Data)
}

func TestStatusFromCode(t *testing.T) {
	assert.Equal(t, http.StatusOK, statusFromCode("200"))
	assert.Equal(t, http.StatusCreated, statusFromCode("201"))
	assert.Equal(t, http.StatusBadGateway, statusFromCode("502"))
	assert.Equal(t, http.StatusInternalServerError, statusFromCode("not-a-code"))
}
