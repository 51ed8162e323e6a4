// Package handlers implements the application's HTTP endpoints: the JSON API
// consumed by the terminal client and the server-rendered public pages.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"folioforge/internal/files"
	applog "folioforge/internal/log"
	"folioforge/models"
)

const maxJSONBodySize = 1 << 20

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	fileStore      *files.Store
	jwtSecret      []byte
	tokenLifetime  = 24 * time.Hour
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB, store *files.Store, secret []byte, lifetime time.Duration) {
	sessionManager = sm
	database = db
	fileStore = store
	jwtSecret = secret
	if lifetime > 0 {
		tokenLifetime = lifetime
	}
}

type contextKey string

const userContextKey contextKey = "handlers:user"

func withUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func currentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userContextKey).(*models.User)
	return user, ok && user != nil
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(r.Context(), "failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// Health is a simple readiness handler suitable for infrastructure probes.
func Health(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "health check requested", "method", r.Method)
	respondJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Time: time.Now().UTC()})
}
