package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	applog "folioforge/internal/log"
	"folioforge/internal/views/layout"
	"folioforge/internal/views/pages"
	"folioforge/internal/views/theme"
	"folioforge/models"
)

const (
	sessionDarkModeKey = "web:darkmode"
	sessionVisitPrefix = "web:visited:"
)

// LandingPage renders the start page.
func LandingPage(w http.ResponseWriter, r *http.Request) {
	dark := darkMode(r)
	renderPage(w, r, "FolioForge", theme.Resolve(theme.DefaultKey, dark), pages.Landing())
}

// DemoPage renders the fixed example portfolio.
func DemoPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "Demo portfolio", theme.Resolve(pages.DemoDocument().Theme, darkMode(r)), pages.Demo(darkMode(r)))
}

// PortfolioPage renders a published portfolio at its public slug. Unknown or
// private portfolios get an error page instead.
func PortfolioPage(w http.ResponseWriter, r *http.Request) {
	dark := darkMode(r)
	errBundle := theme.Resolve(theme.DefaultKey, dark)

	if database == nil {
		renderErrorPage(w, r, http.StatusServiceUnavailable, errBundle, "Unavailable", "Portfolios cannot be loaded right now.")
		return
	}

	username := strings.ToLower(chi.URLParam(r, "username"))
	portfolio := &models.Portfolio{}
	err := database.WithContext(r.Context()).Where("username = ?", username).First(portfolio).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			applog.Error(r.Context(), "failed to load portfolio page", "username", username, "error", err)
		}
		renderErrorPage(w, r, http.StatusNotFound, errBundle, "Portfolio not found", "There is no portfolio at this address.")
		return
	}
	if !portfolio.IsPublic {
		renderErrorPage(w, r, http.StatusForbidden, errBundle, "This portfolio is private", "The owner has not published this portfolio yet.")
		return
	}
	if portfolio.Content.IsEmpty() {
		renderErrorPage(w, r, http.StatusOK, errBundle, "Nothing here yet", "This portfolio has no content yet. Check back soon.")
		return
	}

	recordPageVisit(r, portfolio)

	displayName := displayNameFor(r, portfolio)
	bundle := theme.Resolve(portfolio.Content.Theme, dark)
	renderPage(w, r, displayName, bundle, pages.Portfolio(pages.PortfolioPage{
		DisplayName: displayName,
		Document:    portfolio.Content,
		Bundle:      bundle,
		DarkMode:    dark,
	}))
}

// darkMode reads the viewer's mode preference. An explicit ?mode= switch is
// persisted in the web session so it sticks across pages.
func darkMode(r *http.Request) bool {
	if sessionManager == nil {
		return r.URL.Query().Get("mode") == "dark"
	}
	switch r.URL.Query().Get("mode") {
	case "dark":
		sessionManager.Put(r.Context(), sessionDarkModeKey, true)
		return true
	case "light":
		sessionManager.Put(r.Context(), sessionDarkModeKey, false)
		return false
	}
	return sessionManager.GetBool(r.Context(), sessionDarkModeKey)
}

// recordPageVisit appends a Visit row once per web session and portfolio, so
// a visitor reloading the page does not inflate the numbers.
func recordPageVisit(r *http.Request, portfolio *models.Portfolio) {
	if sessionManager != nil {
		key := sessionVisitPrefix + portfolio.Username
		if sessionManager.GetBool(r.Context(), key) {
			return
		}
		sessionManager.Put(r.Context(), key, true)
	}
	recordVisit(r, portfolio.ID)
}

func displayNameFor(r *http.Request, portfolio *models.Portfolio) string {
	if database != nil {
		owner := &models.User{}
		if err := database.WithContext(r.Context()).First(owner, portfolio.UserID).Error; err == nil && owner.FullName != "" {
			return owner.FullName
		}
	}
	return portfolio.Username
}

func renderPage(w http.ResponseWriter, r *http.Request, title string, bundle theme.Bundle, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.Shell(title, bundle, body).Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func renderErrorPage(w http.ResponseWriter, r *http.Request, status int, bundle theme.Bundle, title, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := layout.Shell(title, bundle, pages.ErrorPage(title, message)).Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render error page", "error", err)
	}
}
