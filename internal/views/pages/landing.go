package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Landing renders the unauthenticated start page.
func Landing() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="text-center py-20">`+
				`<h1 class="text-5xl font-bold mb-6">Turn your resume into a portfolio site</h1>`+
				`<p class="text-xl mb-10">Upload a resume, review the extracted content and publish it under your own public page.</p>`+
				`<a href="/demo" class="inline-block bg-indigo-600 text-white px-6 py-3 rounded-lg">See a demo portfolio</a>`+
				`</div>`+
				`<div class="grid gap-6 sm:grid-cols-3 mt-12 text-center">`+
				`<div><h2 class="font-semibold text-lg mb-2">1. Upload</h2><p>Send a PDF or plain-text resume and let the parser lift out your skills, experience and projects.</p></div>`+
				`<div><h2 class="font-semibold text-lg mb-2">2. Edit</h2><p>Adjust every section and pick one of six themes before anything goes live.</p></div>`+
				`<div><h2 class="font-semibold text-lg mb-2">3. Publish</h2><p>Flip the visibility switch and share your page at /p/your-username.</p></div>`+
				`</div>`)
		return err
	})
}
