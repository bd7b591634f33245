package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Okelahbegitu/fesnuk-api/internal/config"
	"github.com/Okelahbegitu/fesnuk-api/internal/repository"
	"github.com/Okelahbegitu/fesnuk-api/internal/service"
)

func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "server-test-secret"
	cfg.Auth.HashingStrategy = config.HashPlaintext

	db := repository.NewDatabase(sqlx.NewDb(mockDB, "postgres"), zap.NewNop())
	return NewServer(db, cfg, zap.NewNop()), mock
}

func TestServer_RootIsPublic(t *testing.T) {
	srv, _ := newTestServer(t)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	srv, _ := newTestServer(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/home"},
		{http.MethodGet, "/edit/1"},
		{http.MethodPost, "/add"},
		{http.MethodPut, "/edit/1"},
		{http.MethodDelete, "/delete/1"},
	}
	for _, r := range routes {
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, httptest.NewRequest(r.method, r.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", r.method, r.path, w.Code)
		}
	}
}

func TestServer_AuthenticatedListReachesStore(t *testing.T) {
	srv, mock := newTestServer(t)

	tokenString, _, err := service.NewTokenService([]byte("server-test-secret")).Issue(7, "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	mock.ExpectQuery(`SELECT id, account_id, title, body FROM posts WHERE account_id`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "title", "body"}))

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"content":[]`) {
		t.Fatalf("expected empty content array: %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestServer_TokenForOtherSecretRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	tokenString, _, err := service.NewTokenService([]byte("some-other-secret")).Issue(7, "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
