package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"folioforge/internal/auth"
	"folioforge/internal/files"
	"folioforge/models"
)

var testJWTSecret = []byte("handlers-test-secret")

func withTestDatabase(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	original := database
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Resume{}, &models.Portfolio{}, &models.Visit{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	database = db
	return db, func() {
		database = original
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func withTestSessionManager(t *testing.T) (*scs.SessionManager, func()) {
	t.Helper()
	original := sessionManager
	sm := scs.New()
	sessionManager = sm
	return sm, func() {
		sessionManager = original
	}
}

func withTestAuth(t *testing.T) func() {
	t.Helper()
	originalSecret, originalLifetime := jwtSecret, tokenLifetime
	jwtSecret = testJWTSecret
	tokenLifetime = time.Hour
	return func() {
		jwtSecret, tokenLifetime = originalSecret, originalLifetime
	}
}

func withTestFileStore(t *testing.T) func() {
	t.Helper()
	original := fileStore
	store, err := files.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}
	fileStore = store
	return func() {
		fileStore = original
	}
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hashed),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func authedRequest(t *testing.T, method, target string, body []byte, user *models.User) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req = req.WithContext(withUser(req.Context(), user))
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	decodeBody(t, w, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", resp["status"])
	}
}

func TestRespondErrorShape(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	respondError(w, req, http.StatusTeapot, "nope")

	if w.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", w.Code)
	}
	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["error"] != "nope" {
		t.Fatalf("expected error message, got %q", resp["error"])
	}
}

func TestRequireAuth(t *testing.T) {
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)
	t.Cleanup(withTestAuth(t))

	db := database
	user := seedUser(t, db, "alice")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := currentUser(r)
		if !ok || got.ID != user.ID {
			t.Errorf("expected user %d in context, got %+v", user.ID, got)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	token, err := auth.GenerateToken(user.ID, testJWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/portfolio/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	RequireAuth(next).ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 with valid token, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/portfolio/me", nil)
	w = httptest.NewRecorder()
	RequireAuth(next).ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/portfolio/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	RequireAuth(next).ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", w.Code)
	}
}
