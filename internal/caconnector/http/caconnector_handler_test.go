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

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
	authHttp "github.com/allisson/caconnectors/internal/auth/http"
	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	usecaseMocks "github.com/allisson/caconnectors/internal/caconnector/usecase/mocks"
	apperrors "github.com/allisson/caconnectors/internal/errors"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
)

var (
	admin = &authDomain.Principal{Role: authDomain.RoleAdmin, Username: "admin", Realm: "realm1"}
	user  = &authDomain.Principal{Role: authDomain.RoleUser, Username: "alice", Realm: "realm1"}
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func setupTestHandler(
	t *testing.T,
	principal *authDomain.Principal,
) (*usecaseMocks.MockAccessGate, *gin.Engine) {
	t.Helper()

	gate := &usecaseMocks.MockAccessGate{}
	handler := NewConnectorHandler(gate, slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := gin.New()
	if principal != nil {
		router.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(authHttp.WithPrincipal(c.Request.Context(), principal))
			c.Next()
		})
	}
	router.POST("/caconnector/:name", handler.SaveHandler)
	router.GET("/caconnector/", handler.ListHandler)
	router.GET("/caconnector/:name", handler.ListHandler)
	router.DELETE("/caconnector/:name", handler.DeleteHandler)
	router.GET("/caconnector/specific/:type", handler.DescribeTypeHandler)

	return gate, router
}

func TestConnectorHandler_SaveHandler(t *testing.T) {
	t.Run("Success_Form", func(t *testing.T) {
		gate, router := setupTestHandler(t, admin)
		gate.On("Save", mock.Anything, admin, &caDomain.SaveConnectorInput{
			Name: "con1",
			Type: "local",
			Data: map[string]string{"cakey": "/etc/key.pem", "cacert": "/etc/cert.pem"},
		}).Return(int64(1), nil).Once()

		form := url.Values{"type": {"local"}, "cakey": {"/etc/key.pem"}, "cacert": {"/etc/cert.pem"}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/caconnector/con1", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":{"status":true,"value":1}}`, w.Body.String())
		gate.AssertExpectations(t)
	})

	t.Run("Success_JSON", func(t *testing.T) {
		gate, router := setupTestHandler(t, admin)
		gate.On("Save", mock.Anything, admin, &caDomain.SaveConnectorInput{
			Name: "con1",
			Type: "local",
			Data: map[string]string{"CRL_Validity_Period": "30"},
		}).Return(int64(1), nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/caconnector/con1",
			strings.NewReader(`{"type":"local","CRL_Validity_Period":30}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		gate.AssertExpectations(t)
	})

	t.Run("Error_MissingTypeAfterRoleCheck", func(t *testing.T) {
		gate, router := setupTestHandler(t, admin)
		gate.On("Save", mock.Anything, admin, &caDomain.SaveConnectorInput{
			Name: "con1",
			Data: map[string]string{"cakey": "/etc/key.pem"},
		}).Return(int64(0), apperrors.Wrap(apperrors.ErrInvalidInput, "type: cannot be blank")).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/caconnector/con1",
			strings.NewReader(`{"cakey":"/etc/key.pem"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"code":905`)
		gate.AssertExpectations(t)
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		gate, router := setupTestHandler(t, admin)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/caconnector/con1", strings.NewReader(`{"type":`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		gate.AssertNotCalled(t, "Save")
	})

	t.Run("Error_NestedJSON", func(t *testing.T) {
		_, router := setupTestHandler(t, admin)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/caconnector/con1",
			strings.NewReader(`{"type":"local","data":{"cakey":"x"}}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_RoleMissingForAnonymous", func(t *testing.T) {
		gate, router := setupTestHandler(t, nil)

		form := url.Values{"type": {"local"}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/caconnector/con1", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"result":{"status":false,"error":{"code":4306,`+
			`"message":"You do not have the necessary role (['admin']) to access this resource!"}}}`,
			w.Body.String())
		gate.AssertNotCalled(t, "Save")
	})

	t.Run("Error_PolicyDenied", func(t *testing.T) {
		gate, router := setupTestHandler(t, admin)
		gate.On("Save", mock.Anything, admin, mock.Anything).
			Return(int64(0), &policyDomain.PolicyDeniedError{Action: policyDomain.ActionCAConnectorWrite}).Once()

		form := url.Values{"type": {"local"}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/caconnector/con1", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), `"code":303`)
		assert.Contains(t, w.Body.String(), "caconnectorwrite is not allowed")
	})

	t.Run("Error_UnknownType", func(t *testing.T) {
		gate, router := setupTestHandler(t, admin)
		gate.On("Save", mock.Anything, admin, mock.Anything).
			Return(int64(0), caDomain.UnknownType("bogus")).Once()

		form := url.Values{"type": {"bogus"}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/caconnector/con1", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"code":905`)
	})
}

func TestConnectorHandler_SaveHandler_RoleBeforeBody(t *testing.T) {
	tests := []struct {
		name        string
		principal   *authDomain.Principal
		contentType string
		body        string
	}{
		{
			name:        "UserWithoutType",
			principal:   user,
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"cakey": {"/etc/key.pem"}}.Encode(),
		},
		{
			name:        "UserMalformedJSON",
			principal:   user,
			contentType: "application/json",
			body:        `{"type":bad`,
		},
		{
			name:        "AnonymousWithoutType",
			principal:   nil,
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"cakey": {"/etc/key.pem"}}.Encode(),
		},
		{
			name:        "AnonymousNestedJSON",
			principal:   nil,
			contentType: "application/json",
			body:        `{"type":"local","data":{"cakey":"x"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, router := setupTestHandler(t, tt.principal)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/caconnector/con1", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"code":4306`)
			gate.AssertNotCalled(t, "Save")
		})
	}
}

func TestConnectorHandler_ListHandler(t *testing.T) {
	t.Run("Success_All", func(t *testing.T) {
		gate, router := setupTestHandler(t, admin)
		gate.On("List", mock.Anything, admin, caDomain.ListFilter{}).Return([]*caDomain.CAConnector{
			{ID: 1, Name: "con1", Type: "local", Data: map[string]string{"cakey": "/etc/key.pem"}},
		}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/caconnector/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":{"status":true,"value":[`+
			`{"id":1,"connectorname":"con1","type":"local","data":{"cakey":"/etc/key.pem"}}]}}`,
			w.Body.String())
	})

	t.Run("Success_NameAndType", func(t *testing.T) {
		gate, router := setupTestHandler(t, user)
		gate.On("List", mock.Anything, user, caDomain.ListFilter{Name: "con1", Type: "local"}).
			Return([]*caDomain.CAConnector{}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/caconnector/con1?type=local", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":{"status":true,"value":[]}}`, w.Body.String())
		gate.AssertExpectations(t)
	})

	t.Run("Error_Internal", func(t *testing.T) {
		gate, router := setupTestHandler(t, admin)
		gate.On("List", mock.Anything, admin, caDomain.ListFilter{}).
			Return(nil, errors.New("connection reset")).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/caconnector/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestConnectorHandler_DeleteHandler(t *testing.T) {
	gate, router := setupTestHandler(t, admin)
	gate.On("Delete", mock.Anything, admin, "con1").Return(int64(1), nil).Once()
	gate.On("Delete", mock.Anything, admin, "con1").Return(int64(0), nil).Once()

	for _, want := range []string{"1", "0"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/caconnector/con1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":{"status":true,"value":`+want+`}}`, w.Body.String())
	}
	gate.AssertExpectations(t)
}

func TestConnectorHandler_DescribeTypeHandler(t *testing.T) {
	gate, router := setupTestHandler(t, admin)
	gate.On("DescribeType", mock.Anything, admin, "local").Return(map[string]caDomain.OptionDescription{
		"cakey": {Type: "str", Description: "The CA key file"},
	}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/caconnector/specific/local", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":{"status":true,"value":{"cakey":{"type":"str","description":"The CA key file"}}}}`,
		w.Body.String())
}
