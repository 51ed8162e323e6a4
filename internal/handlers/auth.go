package handlers

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"folioforge/internal/auth"
	applog "folioforge/internal/log"
	"folioforge/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register creates a new account from a username, email and password.
func Register(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		respondError(w, r, http.StatusServiceUnavailable, "registration not available")
		return
	}

	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, r, http.StatusBadRequest, "username, email and password are required")
		return
	}

	var count int64
	err := database.WithContext(r.Context()).Model(&models.User{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&count).Error
	if err != nil {
		applog.Error(r.Context(), "failed to check for existing user", "error", err)
		respondError(w, r, http.StatusInternalServerError, "registration failed")
		return
	}
	if count > 0 {
		respondError(w, r, http.StatusBadRequest, "username or email already taken")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		applog.Error(r.Context(), "failed to hash password", "error", err)
		respondError(w, r, http.StatusInternalServerError, "registration failed")
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		FullName:     strings.TrimSpace(req.FullName),
	}
	if err := database.WithContext(r.Context()).Create(user).Error; err != nil {
		applog.Error(r.Context(), "failed to create user", "error", err)
		respondError(w, r, http.StatusBadRequest, "username or email already taken")
		return
	}

	applog.Info(r.Context(), "user registered", "username", user.Username)
	respondJSON(w, r, http.StatusCreated, map[string]string{"username": user.Username, "email": user.Email})
}

// Login verifies credentials and issues a bearer token.
func Login(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		respondError(w, r, http.StatusServiceUnavailable, "authentication not available")
		return
	}

	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user := &models.User{}
	err := database.WithContext(r.Context()).
		Where("username = ?", strings.ToLower(strings.TrimSpace(req.Username))).
		First(user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			applog.Error(r.Context(), "failed to load user during login", "error", err)
		}
		respondError(w, r, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(w, r, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := auth.GenerateToken(user.ID, jwtSecret, tokenLifetime)
	if err != nil {
		applog.Error(r.Context(), "failed to issue token", "error", err)
		respondError(w, r, http.StatusInternalServerError, "login failed")
		return
	}

	applog.Info(r.Context(), "user logged in", "username", user.Username)
	respondJSON(w, r, http.StatusOK, sessionResponse{Token: token, Username: user.Username, Email: user.Email})
}

// RequireAuth verifies the bearer token and loads the authenticated user into
// the request context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, prefix) {
			respondError(w, r, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := auth.UserIDFromToken(header[len(prefix):], jwtSecret)
		if err != nil {
			respondError(w, r, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		if database == nil {
			respondError(w, r, http.StatusServiceUnavailable, "authentication not available")
			return
		}
		user := &models.User{}
		if err := database.WithContext(r.Context()).First(user, userID).Error; err != nil {
			respondError(w, r, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}
