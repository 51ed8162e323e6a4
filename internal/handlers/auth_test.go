package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"folioforge/models"
)

func postJSON(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestRegister(t *testing.T) {
	db, cleanup := withTestDatabase(t)
	t.Cleanup(cleanup)
	t.Cleanup(withTestAuth(t))

	w := postJSON(t, Register, "/auth/register", `{"username":"Alice","email":"A@X.com","password":"pw","fullName":" Alice Smith "}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	user := &models.User{}
	if err := db.Where("username = ?", "alice").First(user).Error; err != nil {
		t.Fatalf("expected user persisted: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Errorf("expected lowercased email, got %q", user.Email)
	}
	if user.FullName != "Alice Smith" {
		t.Errorf("expected trimmed full name, got %q", user.FullName)
	}
	if user.PasswordHash == "pw" || user.PasswordHash == "" {
		t.Error("expected password to be hashed")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	db, cleanup := withTestDatabase(t)
	t.Cleanup(cleanup)
	t.Cleanup(withTestAuth(t))

	seedUser(t, db, "alice")

	w := postJSON(t, Register, "/auth/register", `{"username":"alice","email":"other@x.com","password":"pw"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate username, got %d", w.Code)
	}

	w = postJSON(t, Register, "/auth/register", `{"username":"bob","email":"alice@example.com","password":"pw"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", w.Code)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	_, cleanup := withTestDatabase(t)
	t.Cleanup(cleanup)

	w := postJSON(t, Register, "/auth/register", `{"username":"","email":"a@x.com","password":"pw"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing username, got %d", w.Code)
	}

	w = postJSON(t, Register, "/auth/register", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	db, cleanup := withTestDatabase(t)
	t.Cleanup(cleanup)
	t.Cleanup(withTestAuth(t))

	seedUser(t, db, "alice")

	w := postJSON(t, Login, "/auth/login", `{"username":"alice","password":"password123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp sessionResponse
	decodeBody(t, w, &resp)
	if resp.Token == "" {
		t.Error("expected a token in the login response")
	}
	if resp.Username != "alice" || resp.Email != "alice@example.com" {
		t.Errorf("unexpected identity in response: %+v", resp)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db, cleanup := withTestDatabase(t)
	t.Cleanup(cleanup)
	t.Cleanup(withTestAuth(t))

	seedUser(t, db, "alice")

	w := postJSON(t, Login, "/auth/login", `{"username":"alice","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}

	w = postJSON(t, Login, "/auth/login", `{"username":"nobody","password":"password123"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", w.Code)
	}
}
