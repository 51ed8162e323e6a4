package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"folioforge/internal/content"
)

// Resume mirrors the server's resume resource.
type Resume struct {
	ID               uint               `json:"ID"`
	OriginalFileName string             `json:"originalFileName"`
	FileType         string             `json:"fileType"`
	ParsedData       content.ResumeData `json:"parsedData"`
	UsedInPortfolio  bool               `json:"isUsedInPortfolio"`
}

// Portfolio mirrors the server's portfolio resource.
type Portfolio struct {
	Username string           `json:"username"`
	IsPublic bool             `json:"isPublic"`
	Version  int              `json:"version"`
	Content  content.Document `json:"content"`
}

// Profile mirrors the server's account settings resource.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Bio      string `json:"bio"`
}

// ProfileUpdate carries the fields to change; nil fields are left untouched.
type ProfileUpdate struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"fullName,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

// DailyViews is one weekday bucket of the analytics summary.
type DailyViews struct {
	Name  string `json:"name"`
	Views int    `json:"views"`
}

// TrafficSource is one referer class of the analytics summary.
type TrafficSource struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AnalyticsSummary mirrors the server's analytics aggregate.
type AnalyticsSummary struct {
	TotalViews     int             `json:"totalViews"`
	RecentViews    int             `json:"recentViews"`
	UniqueVisitors int             `json:"uniqueVisitors"`
	ViewsChange    string          `json:"viewsChange"`
	DailyViews     []DailyViews    `json:"dailyViews"`
	TrafficSources []TrafficSource `json:"trafficSources"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password, fullName string) error {
	if username == "" || email == "" || password == "" {
		return errors.New("username, email and password are required")
	}
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
		"fullName": fullName,
	}
	return c.do(ctx, "POST", "/auth/register", body, nil)
}

// Login obtains a session token for the given credentials.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	body := map[string]string{"username": username, "password": password}
	var session Session
	if err := c.do(ctx, "POST", loginPath, body, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// UploadResume sends a resume file to the server.
func (c *Client) UploadResume(ctx context.Context, fileName string, data []byte) (Resume, error) {
	if strings.TrimSpace(fileName) == "" {
		return Resume{}, errors.New("no file selected")
	}
	if len(data) == 0 {
		return Resume{}, errors.New("file is empty")
	}
	var resume Resume
	if err := c.upload(ctx, "/resumes/upload", fileName, data, &resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// ListResumes returns the caller's uploaded resumes.
func (c *Client) ListResumes(ctx context.Context) ([]Resume, error) {
	var resumes []Resume
	if err := c.do(ctx, "GET", "/resumes", nil, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

// UpdateResume replaces the extracted content of a resume.
func (c *Client) UpdateResume(ctx context.Context, id uint, parsed content.ResumeData) (Resume, error) {
	body := map[string]any{"parsedData": parsed}
	var resume Resume
	if err := c.do(ctx, "PUT", fmt.Sprintf("/resumes/%d", id), body, &resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// GeneratePortfolio derives the caller's portfolio from a resume.
func (c *Client) GeneratePortfolio(ctx context.Context, resumeID uint) (Portfolio, error) {
	var portfolio Portfolio
	if err := c.do(ctx, "POST", fmt.Sprintf("/portfolio/generate/%d", resumeID), nil, &portfolio); err != nil {
		return Portfolio{}, err
	}
	return portfolio, nil
}

// MyPortfolio fetches the caller's own portfolio.
func (c *Client) MyPortfolio(ctx context.Context) (Portfolio, error) {
	var portfolio Portfolio
	if err := c.do(ctx, "GET", portfolioPath, nil, &portfolio); err != nil {
		return Portfolio{}, err
	}
	return portfolio, nil
}

// SavePortfolio replaces the caller's portfolio content and visibility. The
// version is the one the caller loaded; the server rejects stale versions.
func (c *Client) SavePortfolio(ctx context.Context, isPublic bool, version int, doc content.Document) (Portfolio, error) {
	body := map[string]any{"isPublic": isPublic, "version": version, "content": doc}
	var portfolio Portfolio
	if err := c.do(ctx, "PUT", portfolioPath, body, &portfolio); err != nil {
		return Portfolio{}, err
	}
	return portfolio, nil
}

// PublicPortfolio fetches a published portfolio by its username slug.
func (c *Client) PublicPortfolio(ctx context.Context, username string) (Portfolio, error) {
	var portfolio Portfolio
	if err := c.do(ctx, "GET", "/portfolio/p/"+url.PathEscape(username), nil, &portfolio); err != nil {
		return Portfolio{}, err
	}
	return portfolio, nil
}

// Profile fetches the caller's account settings.
func (c *Client) Profile(ctx context.Context) (Profile, error) {
	var profile Profile
	if err := c.do(ctx, "GET", "/user/profile", nil, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// UpdateProfile changes the caller's account settings.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (Profile, error) {
	var profile Profile
	if err := c.do(ctx, "PUT", "/user/profile", update, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Analytics fetches the caller's portfolio view aggregates.
func (c *Client) Analytics(ctx context.Context) (AnalyticsSummary, error) {
	var summary AnalyticsSummary
	if err := c.do(ctx, "GET", "/analytics/summary", nil, &summary); err != nil {
		return AnalyticsSummary{}, err
	}
	return summary, nil
}
