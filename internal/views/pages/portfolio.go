// Package pages builds the server-rendered HTML pages from portfolio content
// documents and resolved theme bundles.
package pages

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"folioforge/internal/content"
	"folioforge/internal/views/theme"
)

// PortfolioPage carries everything needed to render one public portfolio.
type PortfolioPage struct {
	DisplayName string
	Document    content.Document
	Bundle      theme.Bundle
	DarkMode    bool
}

// Portfolio renders the read-only public view of a portfolio document. Empty
// sections are skipped entirely so sparse documents stay presentable.
func Portfolio(p PortfolioPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := content.Normalized(p.Document)
		b := p.Bundle

		if err := renderHero(w, p.DisplayName, doc, b, p.DarkMode); err != nil {
			return err
		}
		if err := renderSkills(w, doc.Skills, b); err != nil {
			return err
		}
		if err := renderExperience(w, doc.Experience, b); err != nil {
			return err
		}
		if err := renderProjects(w, doc.Projects, b); err != nil {
			return err
		}
		if err := renderEducation(w, doc.Education, b); err != nil {
			return err
		}
		if err := renderStringList(w, "Certifications", doc.Certifications, b); err != nil {
			return err
		}
		if err := renderStringList(w, "Languages", doc.Languages, b); err != nil {
			return err
		}
		return renderStringList(w, "Awards", doc.Awards, b)
	})
}

func renderHero(w io.Writer, displayName string, doc content.Document, b theme.Bundle, dark bool) error {
	toggleLabel, toggleURL := "Dark mode", "?mode=dark"
	if dark {
		toggleLabel, toggleURL = "Light mode", "?mode=light"
	}

	if _, err := fmt.Fprintf(w,
		`<header class="bg-gradient-to-br %s rounded-2xl p-10 mb-8">`+
			`<div class="flex justify-end"><a href="%s" class="text-sm %s">%s</a></div>`,
		html.EscapeString(b.HeaderGradient),
		toggleURL, html.EscapeString(b.Subtext), toggleLabel,
	); err != nil {
		return err
	}
	if doc.ProfileImage != "" {
		if _, err := fmt.Fprintf(w,
			`<img src="%s" alt="%s" class="w-28 h-28 rounded-full object-cover mb-4">`,
			html.EscapeString(doc.ProfileImage), html.EscapeString(displayName),
		); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, `<h1 class="text-4xl font-bold">%s</h1>`, html.EscapeString(displayName)); err != nil {
		return err
	}
	if doc.About != "" {
		if _, err := fmt.Fprintf(w, `<p class="mt-4 max-w-2xl %s">%s</p>`,
			html.EscapeString(b.Subtext), html.EscapeString(doc.About)); err != nil {
			return err
		}
	}
	if err := renderContact(w, doc.Contact, b); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</header>`)
	return err
}

func renderContact(w io.Writer, c content.Contact, b theme.Bundle) error {
	links := []struct{ label, href string }{
		{"Email", mailto(c.Email)},
		{"LinkedIn", c.LinkedIn},
		{"GitHub", c.GitHub},
		{"Twitter", c.Twitter},
	}
	open := false
	for _, link := range links {
		if link.href == "" {
			continue
		}
		if !open {
			if _, err := io.WriteString(w, `<div class="mt-6 flex gap-4">`); err != nil {
				return err
			}
			open = true
		}
		if _, err := fmt.Fprintf(w, `<a href="%s" class="%s">%s</a>`,
			html.EscapeString(link.href), html.EscapeString(b.Accent), link.label); err != nil {
			return err
		}
	}
	if !open {
		return nil
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

func mailto(email string) string {
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

func sectionHeading(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, `<h2 class="text-2xl font-semibold mt-10 mb-4">%s</h2>`, html.EscapeString(title))
	return err
}

func renderSkills(w io.Writer, skills []string, b theme.Bundle) error {
	if len(skills) == 0 {
		return nil
	}
	if err := sectionHeading(w, "Skills"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<div class="flex flex-wrap gap-2">`); err != nil {
		return err
	}
	for _, skill := range skills {
		if _, err := fmt.Fprintf(w, `<span class="%s px-3 py-1 rounded-full text-sm">%s</span>`,
			html.EscapeString(b.Card), html.EscapeString(skill)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

func renderExperience(w io.Writer, entries []content.Experience, b theme.Bundle) error {
	if len(entries) == 0 {
		return nil
	}
	if err := sectionHeading(w, "Experience"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, `<div class="%s rounded-xl p-6 mb-4"><h3 class="text-lg font-semibold">%s</h3>`,
			html.EscapeString(b.Card), html.EscapeString(e.Title)); err != nil {
			return err
		}
		if e.Company != "" {
			if _, err := fmt.Fprintf(w, `<p class="%s">%s</p>`,
				html.EscapeString(b.Accent), html.EscapeString(e.Company)); err != nil {
				return err
			}
		}
		if err := renderDates(w, e.StartDate, e.EndDate, b); err != nil {
			return err
		}
		if e.Description != "" {
			if _, err := fmt.Fprintf(w, `<p class="mt-2">%s</p>`, html.EscapeString(e.Description)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
	}
	return nil
}

func renderProjects(w io.Writer, projects []content.Project, b theme.Bundle) error {
	if len(projects) == 0 {
		return nil
	}
	if err := sectionHeading(w, "Projects"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<div class="grid gap-4 sm:grid-cols-2">`); err != nil {
		return err
	}
	for _, p := range projects {
		if _, err := fmt.Fprintf(w, `<div class="%s rounded-xl p-6">`, html.EscapeString(b.Card)); err != nil {
			return err
		}
		if p.ImageURL != "" {
			if _, err := fmt.Fprintf(w, `<img src="%s" alt="%s" class="rounded-lg mb-3 w-full object-cover">`,
				html.EscapeString(p.ImageURL), html.EscapeString(p.Name)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<h3 class="text-lg font-semibold">%s</h3>`, html.EscapeString(p.Name)); err != nil {
			return err
		}
		if p.Description != "" {
			if _, err := fmt.Fprintf(w, `<p class="mt-1 %s">%s</p>`,
				html.EscapeString(b.Subtext), html.EscapeString(p.Description)); err != nil {
				return err
			}
		}
		if p.URL != "" {
			if _, err := fmt.Fprintf(w, `<a href="%s" class="%s block mt-3">View project</a>`,
				html.EscapeString(p.URL), html.EscapeString(b.Accent)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

func renderEducation(w io.Writer, entries []content.Education, b theme.Bundle) error {
	if len(entries) == 0 {
		return nil
	}
	if err := sectionHeading(w, "Education"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, `<div class="%s rounded-xl p-6 mb-4"><h3 class="text-lg font-semibold">%s</h3>`,
			html.EscapeString(b.Card), html.EscapeString(e.School)); err != nil {
			return err
		}
		if e.Degree != "" {
			if _, err := fmt.Fprintf(w, `<p class="%s">%s</p>`,
				html.EscapeString(b.Accent), html.EscapeString(e.Degree)); err != nil {
				return err
			}
		}
		if err := renderDates(w, e.StartDate, e.EndDate, b); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
	}
	return nil
}

func renderStringList(w io.Writer, title string, items []string, b theme.Bundle) error {
	if len(items) == 0 {
		return nil
	}
	if err := sectionHeading(w, title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<ul class="%s rounded-xl p-6 list-disc list-inside">`, html.EscapeString(b.Card)); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintf(w, `<li class="mb-1">%s</li>`, html.EscapeString(item)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul>`)
	return err
}

func renderDates(w io.Writer, start, end string, b theme.Bundle) error {
	if start == "" && end == "" {
		return nil
	}
	span := start
	if end != "" {
		if span != "" {
			span += " - " + end
		} else {
			span = end
		}
	}
	_, err := fmt.Fprintf(w, `<p class="text-sm %s">%s</p>`, html.EscapeString(b.Subtext), html.EscapeString(span))
	return err
}

// ErrorPage renders the not-found/private state for the public routes.
func ErrorPage(title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="text-center py-24"><h1 class="text-3xl font-bold mb-4">%s</h1>`+
				`<p class="text-lg mb-8">%s</p>`+
				`<a href="/" class="underline">Back to the start page</a></div>`,
			html.EscapeString(title), html.EscapeString(message))
		return err
	})
}
