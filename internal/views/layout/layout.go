// Package layout provides the shared HTML shell the server-rendered pages
// are composed into.
package layout

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"folioforge/internal/views/theme"
)

// Shell wraps a page body in the document skeleton. The resolved theme
// bundle's utility classes are applied to the page root so every section
// renders against the same background and typography.
func Shell(title string, bundle theme.Bundle, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s</title>`+
				`<script src="https://cdn.tailwindcss.com"></script>`+
				`</head><body class="%s %s %s min-h-screen">`+
				`<div class="max-w-4xl mx-auto px-6 py-10">`,
			html.EscapeString(title),
			html.EscapeString(bundle.Background),
			html.EscapeString(bundle.Text),
			html.EscapeString(bundle.Font),
		); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></body></html>`)
		return err
	})
}
