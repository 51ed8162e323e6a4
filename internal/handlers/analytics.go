package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	applog "folioforge/internal/log"
	"folioforge/models"
)

type dailyViews struct {
	Name  string `json:"name"`
	Views int    `json:"views"`
}

type trafficSource struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type analyticsSummary struct {
	TotalViews     int             `json:"totalViews"`
	RecentViews    int             `json:"recentViews"`
	UniqueVisitors int             `json:"uniqueVisitors"`
	ViewsChange    string          `json:"viewsChange"`
	DailyViews     []dailyViews    `json:"dailyViews"`
	TrafficSources []trafficSource `json:"trafficSources"`
	PortfolioID    uint            `json:"portfolioId"`
}

// AnalyticsSummary aggregates the caller's portfolio visits: totals, the last
// seven days versus the seven before, unique visitor addresses, a per-weekday
// breakdown and a rough referer classification.
func AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok || database == nil {
		respondError(w, r, http.StatusServiceUnavailable, "analytics not available")
		return
	}

	portfolio, ok := loadPortfolioByUser(w, r, user.ID)
	if !ok {
		return
	}

	var visits []models.Visit
	err := database.WithContext(r.Context()).
		Where("portfolio_id = ?", portfolio.ID).
		Find(&visits).Error
	if err != nil {
		applog.Error(r.Context(), "failed to load visits", "portfolio_id", portfolio.ID, "error", err)
		respondError(w, r, http.StatusInternalServerError, "failed to load analytics")
		return
	}

	respondJSON(w, r, http.StatusOK, summarizeVisits(portfolio.ID, visits, time.Now()))
}

func summarizeVisits(portfolioID uint, visits []models.Visit, now time.Time) analyticsSummary {
	sevenDaysAgo := now.AddDate(0, 0, -7)
	fourteenDaysAgo := now.AddDate(0, 0, -14)

	var recent []models.Visit
	previousViews := 0
	for _, v := range visits {
		switch {
		case v.CreatedAt.After(sevenDaysAgo):
			recent = append(recent, v)
		case v.CreatedAt.After(fourteenDaysAgo):
			previousViews++
		}
	}

	uniqueIPs := map[string]struct{}{}
	sources := map[string]int{}
	for _, v := range recent {
		if v.VisitorIP != "" {
			uniqueIPs[v.VisitorIP] = struct{}{}
		}
		sources[classifyReferer(v.Referer)]++
	}

	daily := make([]dailyViews, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		views := 0
		for _, v := range recent {
			if sameDay(v.CreatedAt, day) {
				views++
			}
		}
		daily = append(daily, dailyViews{Name: day.Format("Mon"), Views: views})
	}

	trafficSources := make([]trafficSource, 0, len(sources))
	for _, name := range []string{"Direct", "LinkedIn", "Twitter", "Search", "Other"} {
		if count, ok := sources[name]; ok {
			trafficSources = append(trafficSources, trafficSource{Name: name, Value: count})
		}
	}

	change := "+0%"
	if previousViews > 0 {
		pct := float64(len(recent)-previousViews) / float64(previousViews) * 100
		change = fmt.Sprintf("%+.0f%%", pct)
	}

	return analyticsSummary{
		TotalViews:     len(visits),
		RecentViews:    len(recent),
		UniqueVisitors: len(uniqueIPs),
		ViewsChange:    change,
		DailyViews:     daily,
		TrafficSources: trafficSources,
		PortfolioID:    portfolioID,
	}
}

func classifyReferer(referer string) string {
	ref := strings.ToLower(referer)
	switch {
	case ref == "" || ref == "direct":
		return "Direct"
	case strings.Contains(ref, "linkedin"):
		return "LinkedIn"
	case strings.Contains(ref, "twitter") || strings.Contains(ref, "t.co"):
		return "Twitter"
	case strings.Contains(ref, "google") || strings.Contains(ref, "bing"):
		return "Search"
	default:
		return "Other"
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
