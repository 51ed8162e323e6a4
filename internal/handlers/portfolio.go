package handlers

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"folioforge/internal/content"
	applog "folioforge/internal/log"
	"folioforge/models"
)

// generatePortfolioFromResume creates the user's portfolio from a parsed
// resume. It only runs for accounts without a portfolio; an existing
// portfolio is never overwritten implicitly.
func generatePortfolioFromResume(r *http.Request, user *models.User, resume *models.Resume) error {
	var count int64
	err := database.WithContext(r.Context()).Model(&models.Portfolio{}).
		Where("user_id = ?", user.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	portfolio := &models.Portfolio{
		UserID:   user.ID,
		Username: user.Username,
		IsPublic: false,
		Version:  1,
		Content:  resume.ParsedData.Document(),
	}
	if err := database.WithContext(r.Context()).Create(portfolio).Error; err != nil {
		return err
	}

	resume.UsedInPortfolio = true
	return database.WithContext(r.Context()).Save(resume).Error
}

// GeneratePortfolio derives the caller's portfolio content from one of their
// resumes, replacing any previous content. The regenerated portfolio starts
// private with the default theme.
func GeneratePortfolio(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok || database == nil {
		respondError(w, r, http.StatusServiceUnavailable, "portfolio not available")
		return
	}

	resume, ok := loadOwnedResume(w, r, user, chi.URLParam(r, "resumeId"))
	if !ok {
		return
	}

	doc := resume.ParsedData.Document()

	portfolio := &models.Portfolio{}
	err := database.WithContext(r.Context()).Where("user_id = ?", user.ID).First(portfolio).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		portfolio = &models.Portfolio{
			UserID:   user.ID,
			Username: user.Username,
			IsPublic: false,
			Version:  1,
			Content:  doc,
		}
		err = database.WithContext(r.Context()).Create(portfolio).Error
	case err == nil:
		portfolio.Content = doc
		portfolio.IsPublic = false
		portfolio.Version++
		err = database.WithContext(r.Context()).Save(portfolio).Error
	}
	if err != nil {
		applog.Error(r.Context(), "failed to generate portfolio", "resume_id", resume.ID, "error", err)
		respondError(w, r, http.StatusInternalServerError, "failed to generate portfolio")
		return
	}

	if !resume.UsedInPortfolio {
		resume.UsedInPortfolio = true
		if err := database.WithContext(r.Context()).Save(resume).Error; err != nil {
			applog.Warn(r.Context(), "failed to mark resume as used", "resume_id", resume.ID, "error", err)
		}
	}

	applog.Info(r.Context(), "portfolio generated", "username", user.Username, "resume_id", resume.ID)
	respondJSON(w, r, http.StatusOK, portfolio)
}

// MyPortfolio returns the caller's own portfolio, published or not.
func MyPortfolio(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok || database == nil {
		respondError(w, r, http.StatusServiceUnavailable, "portfolio not available")
		return
	}

	portfolio, ok := loadPortfolioByUser(w, r, user.ID)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, portfolio)
}

type savePortfolioRequest struct {
	IsPublic *bool             `json:"isPublic"`
	Version  int               `json:"version"`
	Content  *content.Document `json:"content"`
}

// SaveMyPortfolio replaces the caller's portfolio content and visibility. The
// request carries the version the client loaded; a stale version is rejected
// with 409 so concurrent editors cannot silently overwrite each other.
func SaveMyPortfolio(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok || database == nil {
		respondError(w, r, http.StatusServiceUnavailable, "portfolio not available")
		return
	}

	portfolio, ok := loadPortfolioByUser(w, r, user.ID)
	if !ok {
		return
	}

	var req savePortfolioRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Content == nil {
		respondError(w, r, http.StatusBadRequest, "content is required")
		return
	}
	portfolio.Content = content.Normalized(*req.Content)
	if req.IsPublic != nil {
		portfolio.IsPublic = *req.IsPublic
	}

	// The version guard lives in the WHERE clause so two writers racing on
	// the same version cannot both get through; the loser matches zero rows.
	result := database.WithContext(r.Context()).Model(&models.Portfolio{}).
		Where("id = ? AND version = ?", portfolio.ID, req.Version).
		Updates(map[string]any{
			"content":   portfolio.Content,
			"is_public": portfolio.IsPublic,
			"version":   req.Version + 1,
		})
	if result.Error != nil {
		applog.Error(r.Context(), "failed to save portfolio", "username", user.Username, "error", result.Error)
		respondError(w, r, http.StatusInternalServerError, "failed to save portfolio")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, r, http.StatusConflict, "portfolio was modified by another session")
		return
	}

	portfolio.Version = req.Version + 1
	respondJSON(w, r, http.StatusOK, portfolio)
}

// PublicPortfolio returns a published portfolio by its username slug and
// records the visit for analytics.
func PublicPortfolio(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		respondError(w, r, http.StatusServiceUnavailable, "portfolio not available")
		return
	}

	username := strings.ToLower(chi.URLParam(r, "username"))
	portfolio := &models.Portfolio{}
	err := database.WithContext(r.Context()).Where("username = ?", username).First(portfolio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, r, http.StatusNotFound, "portfolio not found")
		} else {
			applog.Error(r.Context(), "failed to load public portfolio", "username", username, "error", err)
			respondError(w, r, http.StatusInternalServerError, "failed to load portfolio")
		}
		return
	}
	if !portfolio.IsPublic {
		respondError(w, r, http.StatusForbidden, "this portfolio is private")
		return
	}

	recordVisit(r, portfolio.ID)
	respondJSON(w, r, http.StatusOK, portfolio)
}

func loadPortfolioByUser(w http.ResponseWriter, r *http.Request, userID uint) (*models.Portfolio, bool) {
	portfolio := &models.Portfolio{}
	err := database.WithContext(r.Context()).Where("user_id = ?", userID).First(portfolio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, r, http.StatusNotFound, "no portfolio yet")
		} else {
			applog.Error(r.Context(), "failed to load portfolio", "user_id", userID, "error", err)
			respondError(w, r, http.StatusInternalServerError, "failed to load portfolio")
		}
		return nil, false
	}
	return portfolio, true
}

func recordVisit(r *http.Request, portfolioID uint) {
	visit := &models.Visit{
		PortfolioID: portfolioID,
		VisitorIP:   visitorIP(r),
		UserAgent:   r.UserAgent(),
		Referer:     r.Referer(),
	}
	if err := database.WithContext(r.Context()).Create(visit).Error; err != nil {
		applog.Warn(r.Context(), "failed to record visit", "portfolio_id", portfolioID, "error", err)
	}
}

func visitorIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
