package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
	usecaseMocks "github.com/allisson/caconnectors/internal/policy/usecase/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func setupTestHandler(t *testing.T) (*PolicyHandler, *usecaseMocks.MockPolicyUseCase, *gin.Engine) {
	t.Helper()

	uc := &usecaseMocks.MockPolicyUseCase{}
	handler := NewPolicyHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := gin.New()
	router.POST("/policy/:name", handler.SetHandler)
	router.GET("/policy/", handler.ListHandler)
	router.GET("/policy/:name", handler.GetHandler)
	router.DELETE("/policy/:name", handler.DeleteHandler)

	return handler, uc, router
}

func TestPolicyHandler_SetHandler(t *testing.T) {
	t.Run("Success_JSON", func(t *testing.T) {
		_, uc, router := setupTestHandler(t)
		uc.On("Set", mock.Anything, &policyDomain.SetPolicyInput{
			Name:   "pol_ca",
			Scope:  policyDomain.ScopeAdmin,
			Action: "caconnectorread",
			Active: true,
		}).Return(&policyDomain.Policy{ID: 2, Name: "pol_ca"}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/policy/pol_ca",
			strings.NewReader(`{"scope":"admin","action":"caconnectorread"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":{"status":true,"value":2}}`, w.Body.String())
		uc.AssertExpectations(t)
	})

	t.Run("Success_Form", func(t *testing.T) {
		_, uc, router := setupTestHandler(t)
		uc.On("Set", mock.Anything, &policyDomain.SetPolicyInput{
			Name:   "pol_user",
			Scope:  policyDomain.ScopeUser,
			Action: "auditlog",
			Realm:  "realm1",
			Active: false,
		}).Return(&policyDomain.Policy{ID: 3}, nil).Once()

		form := url.Values{"scope": {"user"}, "action": {"auditlog"}, "realm": {"realm1"}, "active": {"false"}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/policy/pol_user", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("Error_MissingAction", func(t *testing.T) {
		_, uc, router := setupTestHandler(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/policy/pol_ca", strings.NewReader(`{"scope":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"code":905`)
		uc.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		_, _, router := setupTestHandler(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/policy/pol_ca", strings.NewReader(`{"scope":`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPolicyHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		_, uc, router := setupTestHandler(t)
		uc.On("Get", mock.Anything, "pol_ca").Return(&policyDomain.Policy{
			ID: 1, Name: "pol_ca", Scope: policyDomain.ScopeAdmin, Action: "caconnectorread", Active: true,
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/policy/pol_ca", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"pol_ca"`)
		assert.Contains(t, w.Body.String(), `"scope":"admin"`)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		_, uc, router := setupTestHandler(t)
		uc.On("Get", mock.Anything, "missing").Return(nil, policyDomain.ErrPolicyNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/policy/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"code":601`)
	})
}

func TestPolicyHandler_ListHandler(t *testing.T) {
	t.Run("Success_WithFilters", func(t *testing.T) {
		_, uc, router := setupTestHandler(t)
		active := true
		uc.On("List", mock.Anything, policyDomain.PolicyFilter{Scope: policyDomain.ScopeUser, Active: &active}).
			Return([]*policyDomain.Policy{}, nil).
			Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/policy/?scope=user&active=true", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":{"status":true,"value":[]}}`, w.Body.String())
		uc.AssertExpectations(t)
	})

	t.Run("Error_InvalidActive", func(t *testing.T) {
		_, _, router := setupTestHandler(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/policy/?active=maybe", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_Internal", func(t *testing.T) {
		_, uc, router := setupTestHandler(t)
		uc.On("List", mock.Anything, policyDomain.PolicyFilter{}).Return(nil, errors.New("db down")).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/policy/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"code":903`)
	})
}

func TestPolicyHandler_DeleteHandler(t *testing.T) {
	_, uc, router := setupTestHandler(t)
	uc.On("Delete", mock.Anything, "pol_ca").Return(int64(1), nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/policy/pol_ca", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":{"status":true,"value":1}}`, w.Body.String())
}
