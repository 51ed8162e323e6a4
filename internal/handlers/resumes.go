package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"folioforge/internal/content"
	"folioforge/internal/files"
	applog "folioforge/internal/log"
	"folioforge/internal/parser"
	"folioforge/models"
)

// UploadResume accepts a multipart resume upload, extracts structured content
// from it and stores both. The first upload also generates the user's
// portfolio so a fresh account has something to publish right away.
func UploadResume(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok || database == nil || fileStore == nil {
		respondError(w, r, http.StatusServiceUnavailable, "uploads not available")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, files.MaxUploadSize+(64<<10))
	if err := r.ParseMultipartForm(files.MaxUploadSize); err != nil {
		respondError(w, r, http.StatusBadRequest, "file too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		applog.Error(r.Context(), "failed to read upload", "error", err)
		respondError(w, r, http.StatusInternalServerError, "upload failed")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = files.MimeTypeFromName(header.Filename)
	}

	path, err := fileStore.Save(header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, files.ErrEmptyFile):
			respondError(w, r, http.StatusBadRequest, "uploaded file is empty")
		case errors.Is(err, files.ErrTooLarge):
			respondError(w, r, http.StatusBadRequest, "uploaded file exceeds the size limit")
		default:
			applog.Error(r.Context(), "failed to store upload", "error", err)
			respondError(w, r, http.StatusInternalServerError, "upload failed")
		}
		return
	}

	parsed, err := parser.Parse(data, mimeType)
	if err != nil {
		applog.Warn(r.Context(), "failed to parse resume, storing without extracted content",
			"file", header.Filename, "error", err)
		parsed = content.ResumeData{}
		parsed.Normalize()
	}

	resume := &models.Resume{
		UserID:           user.ID,
		OriginalFileName: header.Filename,
		StoredPath:       path,
		FileType:         mimeType,
		ParsedData:       parsed,
	}
	if err := database.WithContext(r.Context()).Create(resume).Error; err != nil {
		applog.Error(r.Context(), "failed to persist resume", "error", err)
		respondError(w, r, http.StatusInternalServerError, "upload failed")
		return
	}

	// Best effort: a failed generation still leaves a usable upload behind.
	if err := generatePortfolioFromResume(r, user, resume); err != nil {
		applog.Warn(r.Context(), "failed to auto-generate portfolio from upload",
			"resume_id", resume.ID, "error", err)
	}

	applog.Info(r.Context(), "resume uploaded", "username", user.Username, "file", header.Filename)
	respondJSON(w, r, http.StatusCreated, resume)
}

// ListResumes returns all resumes the caller has uploaded, newest first.
func ListResumes(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok || database == nil {
		respondError(w, r, http.StatusServiceUnavailable, "resumes not available")
		return
	}

	var resumes []models.Resume
	err := database.WithContext(r.Context()).
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&resumes).Error
	if err != nil {
		applog.Error(r.Context(), "failed to list resumes", "error", err)
		respondError(w, r, http.StatusInternalServerError, "failed to list resumes")
		return
	}

	respondJSON(w, r, http.StatusOK, resumes)
}

// DownloadResume streams the originally uploaded file back to its owner,
// under the name and content type it was uploaded with.
func DownloadResume(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok || database == nil || fileStore == nil {
		respondError(w, r, http.StatusServiceUnavailable, "resumes not available")
		return
	}

	resume, ok := loadOwnedResume(w, r, user, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	data, err := fileStore.Read(resume.StoredPath)
	if err != nil {
		applog.Error(r.Context(), "failed to read stored resume", "resume_id", resume.ID, "error", err)
		respondError(w, r, http.StatusInternalServerError, "failed to read resume file")
		return
	}

	w.Header().Set("Content-Type", resume.FileType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.OriginalFileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		applog.Warn(r.Context(), "failed to stream resume file", "resume_id", resume.ID, "error", err)
	}
}

type updateResumeRequest struct {
	ParsedData *content.ResumeData `json:"parsedData"`
}

// UpdateResume replaces the extracted content of one of the caller's resumes.
func UpdateResume(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok || database == nil {
		respondError(w, r, http.StatusServiceUnavailable, "resumes not available")
		return
	}

	resume, ok := loadOwnedResume(w, r, user, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req updateResumeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ParsedData == nil {
		respondError(w, r, http.StatusBadRequest, "parsedData is required")
		return
	}

	req.ParsedData.Normalize()
	resume.ParsedData = *req.ParsedData
	if err := database.WithContext(r.Context()).Save(resume).Error; err != nil {
		applog.Error(r.Context(), "failed to update resume", "resume_id", resume.ID, "error", err)
		respondError(w, r, http.StatusInternalServerError, "failed to update resume")
		return
	}

	respondJSON(w, r, http.StatusOK, resume)
}

func loadOwnedResume(w http.ResponseWriter, r *http.Request, user *models.User, rawID string) (*models.Resume, bool) {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid resume id")
		return nil, false
	}

	resume := &models.Resume{}
	err = database.WithContext(r.Context()).First(resume, uint(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, r, http.StatusNotFound, "resume not found")
		} else {
			applog.Error(r.Context(), "failed to load resume", "resume_id", id, "error", err)
			respondError(w, r, http.StatusInternalServerError, "failed to load resume")
		}
		return nil, false
	}
	if resume.UserID != user.ID {
		respondError(w, r, http.StatusNotFound, "resume not found")
		return nil, false
	}
	return resume, true
}
