package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"folioforge/internal/content"
	"folioforge/models"
)

func sessionRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	ctx, err := sessionManager.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	return req.WithContext(ctx)
}

func TestLandingPage(t *testing.T) {
	_, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	w := httptest.NewRecorder()
	LandingPage(w, sessionRequest(t, "/"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected HTML content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "/demo") {
		t.Error("expected landing page to link to the demo")
	}
}

func TestDemoPage(t *testing.T) {
	_, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	w := httptest.NewRecorder()
	DemoPage(w, sessionRequest(t, "/demo"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Sam Doe") {
		t.Error("expected demo portfolio content")
	}
}

func TestPortfolioPage(t *testing.T) {
	db, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)
	_, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	user := seedUser(t, db, "alice")
	user.FullName = "Alice Smith"
	if err := db.Save(user).Error; err != nil {
		t.Fatalf("failed to update user: %v", err)
	}
	seedPortfolio(t, db, user, true)

	req := withURLParam(sessionRequest(t, "/p/alice"), "username", "alice")
	w := httptest.NewRecorder()
	PortfolioPage(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Alice Smith") {
		t.Error("expected the owner's full name as display name")
	}
	if !strings.Contains(body, "Go") {
		t.Error("expected the published skills to be rendered")
	}

	var visits int64
	if err := db.Model(&models.Visit{}).Count(&visits).Error; err != nil || visits != 1 {
		t.Fatalf("expected one visit recorded, count=%d err=%v", visits, err)
	}
}

func TestPortfolioPageDeduplicatesVisitsPerSession(t *testing.T) {
	db, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)
	_, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	user := seedUser(t, db, "alice")
	seedPortfolio(t, db, user, true)

	req := withURLParam(sessionRequest(t, "/p/alice"), "username", "alice")
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		PortfolioPage(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 on view %d, got %d", i, w.Code)
		}
	}

	var visits int64
	if err := db.Model(&models.Visit{}).Count(&visits).Error; err != nil || visits != 1 {
		t.Fatalf("expected a single visit for one session, count=%d err=%v", visits, err)
	}
}

func TestPortfolioPageEmptyContent(t *testing.T) {
	db, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)
	_, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	user := seedUser(t, db, "alice")
	portfolio := &models.Portfolio{
		UserID:   user.ID,
		Username: user.Username,
		IsPublic: true,
		Version:  1,
		Content:  content.Normalized(content.Document{}),
	}
	if err := db.Create(portfolio).Error; err != nil {
		t.Fatalf("failed to seed portfolio: %v", err)
	}

	req := withURLParam(sessionRequest(t, "/p/alice"), "username", "alice")
	w := httptest.NewRecorder()
	PortfolioPage(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Nothing here yet") {
		t.Error("expected the empty-portfolio placeholder page")
	}

	var visits int64
	if err := db.Model(&models.Visit{}).Count(&visits).Error; err != nil || visits != 0 {
		t.Fatalf("expected no visit for an empty portfolio, count=%d err=%v", visits, err)
	}
}

func TestPortfolioPagePrivateAndUnknown(t *testing.T) {
	db, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)
	_, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	user := seedUser(t, db, "alice")
	seedPortfolio(t, db, user, false)

	req := withURLParam(sessionRequest(t, "/p/alice"), "username", "alice")
	w := httptest.NewRecorder()
	PortfolioPage(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a private portfolio, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "private") {
		t.Error("expected the private error page")
	}

	req = withURLParam(sessionRequest(t, "/p/ghost"), "username", "ghost")
	w = httptest.NewRecorder()
	PortfolioPage(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown slug, got %d", w.Code)
	}
}

func TestDarkModePersistsInSession(t *testing.T) {
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := sessionRequest(t, "/demo?mode=dark")
	if !darkMode(req) {
		t.Fatal("expected ?mode=dark to enable dark mode")
	}
	if !sm.GetBool(req.Context(), sessionDarkModeKey) {
		t.Fatal("expected the preference to be stored in the session")
	}

	// Same session, no query parameter: the stored preference applies.
	plain := httptest.NewRequest(http.MethodGet, "/demo", nil).WithContext(req.Context())
	if !darkMode(plain) {
		t.Fatal("expected the stored preference to apply without a parameter")
	}

	back := httptest.NewRequest(http.MethodGet, "/demo?mode=light", nil).WithContext(req.Context())
	if darkMode(back) {
		t.Fatal("expected ?mode=light to disable dark mode")
	}
}
