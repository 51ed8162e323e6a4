package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"folioforge/internal/files"
	"folioforge/internal/handlers"
	"folioforge/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&models.User{}, &models.Resume{}, &models.Portfolio{}, &models.Visit{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(&models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	store, err := files.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}

	srv, err := New(Config{
		Addr:          ":8080",
		Session:       SessionConfig{CookieSecure: true},
		Database:      db,
		FileStore:     store,
		JWTSecret:     []byte("server-test-secret"),
		TokenLifetime: time.Hour,
	})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	t.Cleanup(func() {
		handlers.Configure(nil, nil, nil, nil, 0)
	})
	return srv
}

func TestNewAppliesSessionDefaults(t *testing.T) {
	srv := newTestServer(t)

	if srv.httpServer.Addr != ":8080" {
		t.Fatalf("expected server addr :8080, got %q", srv.httpServer.Addr)
	}
	if srv.httpServer.Handler == nil {
		t.Fatal("expected handler to be configured")
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/demo", nil)
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from /demo, got %d", rr.Code)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie to be set on web routes")
	}
	if cookies[0].Name != "folioforge_session" {
		t.Fatalf("expected default session cookie name, got %q", cookies[0].Name)
	}
	if !cookies[0].Secure {
		t.Fatal("expected cookie secure flag to be true")
	}
}

func TestRouterServesAPIRoutes(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from /healthz, got %d", rr.Code)
	}

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "password123"})
	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	srv.Handler().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from login, got %d: %s", rr.Code, rr.Body.String())
	}

	var session struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &session); err != nil || session.Token == "" {
		t.Fatalf("expected a token from login, err=%v body=%s", err, rr.Body.String())
	}

	// Authenticated route rejects anonymous calls and accepts the token.
	rr = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/portfolio/me", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/portfolio/me", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	srv.Handler().ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a user without a portfolio, got %d", rr.Code)
	}
}

func TestRouterAppliesCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	srv.Handler().ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected permissive CORS on API routes, got %q", got)
	}
}

func TestServerStop(t *testing.T) {
	srv := newTestServer(t)
	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop() returned error: %v", err)
	}
}
