package pages

import (
	"github.com/a-h/templ"

	"folioforge/internal/content"
	"folioforge/internal/views/theme"
)

// DemoDocument returns the fixed example document rendered at /demo.
func DemoDocument() content.Document {
	doc := content.Document{
		Theme: "creative",
		About: "Full-stack developer with a soft spot for developer tooling and well-lit terminal emulators.",
		Contact: content.Contact{
			Email:  "sam@example.com",
			GitHub: "https://github.com/example",
		},
		Skills: []string{"Go", "PostgreSQL", "Docker", "React", "Kubernetes"},
		Experience: []content.Experience{
			{
				Title:       "Senior Software Engineer",
				Company:     "Northwind Labs",
				StartDate:   "2021",
				EndDate:     "Present",
				Description: "Built and operates the ingestion pipeline for a document processing platform.",
			},
			{
				Title:       "Software Engineer",
				Company:     "Initech",
				StartDate:   "2018",
				EndDate:     "2021",
				Description: "Worked on internal billing services and the customer-facing API.",
			},
		},
		Projects: []content.Project{
			{
				Name:        "termboard",
				Description: "A terminal dashboard for on-call engineers.",
				URL:         "https://github.com/example/termboard",
			},
		},
		Education: []content.Education{
			{School: "State University", Degree: "BSc Computer Science", StartDate: "2014", EndDate: "2018"},
		},
		Certifications: []string{"CKA - Certified Kubernetes Administrator"},
		Languages:      []string{"English", "German"},
	}
	doc.Normalize()
	return doc
}

// Demo renders the example portfolio in the requested mode.
func Demo(dark bool) templ.Component {
	doc := DemoDocument()
	return Portfolio(PortfolioPage{
		DisplayName: "Sam Doe",
		Document:    doc,
		Bundle:      theme.Resolve(doc.Theme, dark),
		DarkMode:    dark,
	})
}
