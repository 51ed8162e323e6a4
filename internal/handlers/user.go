package handlers

import (
	"net/http"
	"strings"

	applog "folioforge/internal/log"
	"folioforge/models"
)

type profileResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Bio      string `json:"bio"`
}

func profileOf(user *models.User) profileResponse {
	return profileResponse{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Bio:      user.Bio,
	}
}

// Profile returns the caller's account settings.
func Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		respondError(w, r, http.StatusServiceUnavailable, "profile not available")
		return
	}
	respondJSON(w, r, http.StatusOK, profileOf(user))
}

type updateProfileRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"fullName"`
	Bio      *string `json:"bio"`
}

// UpdateProfile changes the caller's email, full name or bio. The username is
// the public slug and stays immutable.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok || database == nil {
		respondError(w, r, http.StatusServiceUnavailable, "profile not available")
		return
	}

	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			respondError(w, r, http.StatusBadRequest, "email must not be empty")
			return
		}
		if email != user.Email {
			var count int64
			err := database.WithContext(r.Context()).Model(&models.User{}).
				Where("email = ? AND id <> ?", email, user.ID).
				Count(&count).Error
			if err != nil {
				applog.Error(r.Context(), "failed to check email uniqueness", "error", err)
				respondError(w, r, http.StatusInternalServerError, "failed to update profile")
				return
			}
			if count > 0 {
				respondError(w, r, http.StatusBadRequest, "email already taken")
				return
			}
			user.Email = email
		}
	}
	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Bio != nil {
		user.Bio = strings.TrimSpace(*req.Bio)
	}

	if err := database.WithContext(r.Context()).Save(user).Error; err != nil {
		applog.Error(r.Context(), "failed to update profile", "username", user.Username, "error", err)
		respondError(w, r, http.StatusInternalServerError, "failed to update profile")
		return
	}

	respondJSON(w, r, http.StatusOK, profileOf(user))
}
