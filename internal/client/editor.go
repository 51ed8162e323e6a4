package client

import (
	"context"

	"folioforge/internal/content"
)

// State names the editor's lifecycle phase.
type State int

const (
	StateLoading State = iota
	StateReady
	StateSaving
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSaving:
		return "saving"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Editor holds the in-memory draft of a portfolio during an edit session.
// Every editable value, visibility included, lives in the one draft; Save
// pushes the whole draft through a single request and adopts whatever the
// server persisted.
type Editor struct {
	client *Client

	state    State
	draft    content.Document
	isPublic bool
	version  int
	lastErr  error
}

// NewEditor returns an editor bound to the given client. Load must succeed
// before edits mean anything.
func NewEditor(c *Client) *Editor {
	return &Editor{client: c, state: StateLoading}
}

// Load fetches the caller's portfolio and normalizes it into the draft.
func (e *Editor) Load(ctx context.Context) error {
	e.state = StateLoading
	portfolio, err := e.client.MyPortfolio(ctx)
	if err != nil {
		e.state = StateError
		e.lastErr = err
		return err
	}

	e.draft = content.Normalized(portfolio.Content)
	e.isPublic = portfolio.IsPublic
	e.version = portfolio.Version
	e.state = StateReady
	e.lastErr = nil
	return nil
}

// State reports the editor's current phase.
func (e *Editor) State() State { return e.state }

// Err returns the error from the last failed operation, if any.
func (e *Editor) Err() error { return e.lastErr }

// Draft returns a copy of the current draft.
func (e *Editor) Draft() content.Document { return e.draft.Clone() }

// IsPublic reports the draft's visibility.
func (e *Editor) IsPublic() bool { return e.isPublic }

// Version returns the portfolio version the draft is based on.
func (e *Editor) Version() int { return e.version }

func (e *Editor) edited() {
	if e.state == StateError {
		e.lastErr = nil
	}
	e.state = StateReady
}

// SetTheme changes the draft's theme.
func (e *Editor) SetTheme(theme string) {
	e.draft.Theme = theme
	e.draft.Normalize()
	e.edited()
}

// SetAbout changes the draft's about text.
func (e *Editor) SetAbout(about string) {
	e.draft.About = about
	e.edited()
}

// SetProfileImage changes the draft's profile image reference.
func (e *Editor) SetProfileImage(image string) {
	e.draft.ProfileImage = image
	e.edited()
}

// SetContact replaces the draft's contact links.
func (e *Editor) SetContact(contact content.Contact) {
	e.draft.Contact = contact
	e.edited()
}

// SetVisibility flips the draft's public flag. Like every other edit it only
// takes effect on Save.
func (e *Editor) SetVisibility(public bool) {
	e.isPublic = public
	e.edited()
}

// AddSkill appends a skill to the draft.
func (e *Editor) AddSkill(skill string) {
	e.draft.AddSkill(skill)
	e.edited()
}

// RemoveSkill removes the skill at the given position.
func (e *Editor) RemoveSkill(index int) bool {
	ok := e.draft.RemoveSkill(index)
	e.edited()
	return ok
}

// AddExperience appends an experience entry to the draft.
func (e *Editor) AddExperience(entry content.Experience) {
	e.draft.AddExperience(entry)
	e.edited()
}

// RemoveExperience removes the experience entry at the given position.
func (e *Editor) RemoveExperience(index int) bool {
	ok := e.draft.RemoveExperience(index)
	e.edited()
	return ok
}

// AddProject appends a project to the draft.
func (e *Editor) AddProject(entry content.Project) {
	e.draft.AddProject(entry)
	e.edited()
}

// RemoveProject removes the project at the given position.
func (e *Editor) RemoveProject(index int) bool {
	ok := e.draft.RemoveProject(index)
	e.edited()
	return ok
}

// AddEducation appends an education entry to the draft.
func (e *Editor) AddEducation(entry content.Education) {
	e.draft.AddEducation(entry)
	e.edited()
}

// RemoveEducation removes the education entry at the given position.
func (e *Editor) RemoveEducation(index int) bool {
	ok := e.draft.RemoveEducation(index)
	e.edited()
	return ok
}

// AddCertification appends a certification to the draft.
func (e *Editor) AddCertification(value string) {
	e.draft.AddCertification(value)
	e.edited()
}

// RemoveCertification removes the certification at the given position.
func (e *Editor) RemoveCertification(index int) bool {
	ok := e.draft.RemoveCertification(index)
	e.edited()
	return ok
}

// AddLanguage appends a language to the draft.
func (e *Editor) AddLanguage(value string) {
	e.draft.AddLanguage(value)
	e.edited()
}

// RemoveLanguage removes the language at the given position.
func (e *Editor) RemoveLanguage(index int) bool {
	ok := e.draft.RemoveLanguage(index)
	e.edited()
	return ok
}

// AddAward appends an award to the draft.
func (e *Editor) AddAward(value string) {
	e.draft.AddAward(value)
	e.edited()
}

// RemoveAward removes the award at the given position.
func (e *Editor) RemoveAward(index int) bool {
	ok := e.draft.RemoveAward(index)
	e.edited()
	return ok
}

// Save pushes the whole draft with the loaded version. On success the editor
// adopts the document the server persisted, keeping client and server state
// aligned. On failure the draft is kept untouched so nothing typed is lost;
// a stale version surfaces as ErrVersionConflict.
func (e *Editor) Save(ctx context.Context) error {
	e.state = StateSaving
	saved, err := e.client.SavePortfolio(ctx, e.isPublic, e.version, e.draft)
	if err != nil {
		e.state = StateError
		e.lastErr = err
		return err
	}

	e.draft = content.Normalized(saved.Content)
	e.isPublic = saved.IsPublic
	e.version = saved.Version
	e.state = StateReady
	e.lastErr = nil
	return nil
}
