// Package theme maps a portfolio's theme identifier and the viewer's dark
// mode preference to a concrete bundle of style tokens. Resolution is pure:
// the same inputs always produce the same bundle.
package theme

import "strings"

// DefaultKey defines the fallback theme when a document carries no
// recognised theme identifier.
const DefaultKey = "modern"

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value string
	Label string
}

// Bundle contains the resolved styling primitives for one theme and mode
// combination. Tokens are utility-class strings consumed by the page
// renderer.
type Bundle struct {
	Key            string
	Background     string
	Text           string
	Subtext        string
	Card           string
	Accent         string
	Button         string
	HeaderGradient string
	Font           string
}

func lightBase() Bundle {
	return Bundle{
		Background:     "bg-slate-50",
		Text:           "text-slate-900",
		Subtext:        "text-slate-500",
		Card:           "bg-white/70 backdrop-blur-xl border border-white/40 shadow-xl shadow-indigo-100/20",
		Accent:         "text-indigo-600",
		Button:         "bg-gradient-to-r from-blue-600 via-indigo-600 to-violet-600 text-white hover:shadow-lg hover:-translate-y-0.5",
		HeaderGradient: "from-indigo-50 via-white to-blue-50",
		Font:           "font-sans",
	}
}

func darkBase() Bundle {
	return Bundle{
		Background:     "bg-gray-900",
		Text:           "text-gray-100",
		Subtext:        "text-gray-400",
		Card:           "bg-gray-800/60 backdrop-blur-md border border-white/10 shadow-xl",
		Accent:         "text-indigo-400",
		Button:         "bg-indigo-600 text-white hover:bg-indigo-500",
		HeaderGradient: "from-gray-900 via-gray-800 to-gray-900",
		Font:           "font-sans",
	}
}

// Resolve returns the style bundle for the provided theme identifier and
// mode. Unknown identifiers resolve to the modern bundle. The dedicated
// "dark" theme always builds on the dark base, whatever the mode flag says.
func Resolve(key string, dark bool) Bundle {
	base := lightBase()
	if dark {
		base = darkBase()
	}

	normalized := strings.ToLower(strings.TrimSpace(key))
	bundle := base

	switch normalized {
	case "minimal":
		if dark {
			bundle.Background = "bg-black"
			bundle.Card = "border-b border-gray-800 bg-transparent"
			bundle.Button = "bg-white text-black hover:bg-gray-200"
		} else {
			bundle.Background = "bg-white"
			bundle.Card = "border-b border-gray-100 bg-transparent py-8"
			bundle.Button = "bg-black text-white hover:bg-gray-800"
		}
	case "nature":
		bundle.Accent = "text-emerald-600"
		bundle.Button = "bg-emerald-600 text-white hover:bg-emerald-700"
		if dark {
			bundle.Background = "bg-stone-900"
			bundle.Text = "text-stone-100"
			bundle.Card = "bg-stone-800/80 border-stone-700"
			bundle.HeaderGradient = "from-stone-900 to-emerald-900/20"
		} else {
			bundle.Background = "bg-stone-50"
			bundle.Text = "text-stone-800"
			bundle.Card = "bg-white/80 border-stone-200 shadow-sm"
			bundle.HeaderGradient = "from-stone-50 to-emerald-50"
		}
	case "creative":
		bundle.Font = "font-display"
		bundle.Accent = "text-purple-600"
		bundle.Button = "bg-gradient-to-r from-purple-500 to-pink-500 text-white"
		if dark {
			bundle.HeaderGradient = "from-gray-900 via-purple-900/30 to-gray-900"
		} else {
			bundle.HeaderGradient = "from-purple-50 via-pink-50 to-white"
		}
	case "professional":
		bundle.Font = "font-serif"
		if dark {
			bundle.Card = "bg-slate-800 border-l-4 border-slate-600"
			bundle.Button = "bg-slate-700 text-white"
		} else {
			bundle.Card = "bg-white border-l-4 border-slate-800 shadow-md"
			bundle.Button = "bg-slate-900 text-white"
		}
	case "dark":
		// High-contrast variant anchored to the dark base in either mode.
		bundle = darkBase()
		bundle.Background = "bg-black"
		bundle.Text = "text-gray-100"
		bundle.Accent = "text-cyan-400"
		bundle.Button = "bg-cyan-600 text-white hover:bg-cyan-500"
		bundle.Card = "bg-gray-900 border border-gray-800"
		normalized = "dark"
	default:
		normalized = DefaultKey
	}

	bundle.Key = normalized
	return bundle
}

var options = []Option{
	{Value: "modern", Label: "Modern"},
	{Value: "minimal", Label: "Minimal"},
	{Value: "creative", Label: "Creative"},
	{Value: "professional", Label: "Professional"},
	{Value: "nature", Label: "Nature"},
	{Value: "dark", Label: "Dark"},
}

// Options exposes the available theme selections for rendering in a form
// control.
func Options() []Option {
	return options
}

// Known reports whether the identifier names a registered theme.
func Known(key string) bool {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for _, opt := range options {
		if opt.Value == normalized {
			return true
		}
	}
	return false
}
