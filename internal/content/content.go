// Package content defines the editable portfolio document rendered into a
// public site. The document is stored as a single JSON column and exchanged
// verbatim over the API, so every collection is normalised to an empty slice
// before use to keep list handling total.
package content

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultTheme is applied whenever a document carries no recognised theme.
const DefaultTheme = "modern"

// Experience describes one work history entry. Every field tolerates blanks.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Project describes one showcased project.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl"`
}

// Education describes one education entry.
type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Contact carries the public contact links shown on a portfolio.
type Contact struct {
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

// Document is the nested editable portfolio content. Collection order is
// meaningful: it is the display order.
type Document struct {
	Theme          string       `json:"theme"`
	About          string       `json:"about,omitempty"`
	ProfileImage   string       `json:"profileImage,omitempty"`
	Contact        Contact      `json:"contact"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Projects       []Project    `json:"projects"`
	Education      []Education  `json:"education"`
	Certifications []string     `json:"certifications"`
	Languages      []string     `json:"languages"`
	Awards         []string     `json:"awards"`
}

// Normalize replaces every nil collection with an empty slice and defaults a
// blank theme. Server data may omit any of these fields; rendering and list
// edits assume they are always present.
func (d *Document) Normalize() {
	if strings.TrimSpace(d.Theme) == "" {
		d.Theme = DefaultTheme
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Certifications == nil {
		d.Certifications = []string{}
	}
	if d.Languages == nil {
		d.Languages = []string{}
	}
	if d.Awards == nil {
		d.Awards = []string{}
	}
}

// Normalized returns a normalised copy of the document.
func Normalized(d Document) Document {
	d.Normalize()
	return d
}

// IsEmpty reports whether the document carries no user-visible content.
func (d Document) IsEmpty() bool {
	return strings.TrimSpace(d.About) == "" &&
		len(d.Skills) == 0 &&
		len(d.Experience) == 0 &&
		len(d.Projects) == 0 &&
		len(d.Education) == 0 &&
		len(d.Certifications) == 0 &&
		len(d.Languages) == 0 &&
		len(d.Awards) == 0
}

// Value serialises the document for storage in a JSON column.
func (d Document) Value() (driver.Value, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal content document: %w", err)
	}
	return string(data), nil
}

// Scan restores a document from its stored JSON representation. Absent
// collections are normalised so loaded documents are immediately usable.
func (d *Document) Scan(value any) error {
	if value == nil {
		*d = Document{}
		d.Normalize()
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported content column type %T", value)
	}

	if len(data) == 0 {
		*d = Document{}
		d.Normalize()
		return nil
	}

	if err := json.Unmarshal(data, d); err != nil {
		return fmt.Errorf("unmarshal content document: %w", err)
	}
	d.Normalize()
	return nil
}

func removeAt[T any](items []T, index int) ([]T, bool) {
	if index < 0 || index >= len(items) {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out, true
}

// AddSkill appends a skill, preserving display order.
func (d *Document) AddSkill(skill string) {
	d.Skills = append(d.Skills, skill)
}

// RemoveSkill deletes the skill at index, keeping the relative order of the
// remaining entries. Out-of-range indexes are ignored.
func (d *Document) RemoveSkill(index int) bool {
	var ok bool
	d.Skills, ok = removeAt(d.Skills, index)
	return ok
}

// AddExperience appends a work history entry.
func (d *Document) AddExperience(entry Experience) {
	d.Experience = append(d.Experience, entry)
}

// RemoveExperience deletes the entry at index.
func (d *Document) RemoveExperience(index int) bool {
	var ok bool
	d.Experience, ok = removeAt(d.Experience, index)
	return ok
}

// AddProject appends a project entry.
func (d *Document) AddProject(entry Project) {
	d.Projects = append(d.Projects, entry)
}

// RemoveProject deletes the entry at index.
func (d *Document) RemoveProject(index int) bool {
	var ok bool
	d.Projects, ok = removeAt(d.Projects, index)
	return ok
}

// AddEducation appends an education entry.
func (d *Document) AddEducation(entry Education) {
	d.Education = append(d.Education, entry)
}

// RemoveEducation deletes the entry at index.
func (d *Document) RemoveEducation(index int) bool {
	var ok bool
	d.Education, ok = removeAt(d.Education, index)
	return ok
}

// AddCertification appends a certification.
func (d *Document) AddCertification(value string) {
	d.Certifications = append(d.Certifications, value)
}

// RemoveCertification deletes the certification at index.
func (d *Document) RemoveCertification(index int) bool {
	var ok bool
	d.Certifications, ok = removeAt(d.Certifications, index)
	return ok
}

// AddLanguage appends a language.
func (d *Document) AddLanguage(value string) {
	d.Languages = append(d.Languages, value)
}

// RemoveLanguage deletes the language at index.
func (d *Document) RemoveLanguage(index int) bool {
	var ok bool
	d.Languages, ok = removeAt(d.Languages, index)
	return ok
}

// AddAward appends an award.
func (d *Document) AddAward(value string) {
	d.Awards = append(d.Awards, value)
}

// RemoveAward deletes the award at index.
func (d *Document) RemoveAward(index int) bool {
	var ok bool
	d.Awards, ok = removeAt(d.Awards, index)
	return ok
}

func cloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Clone returns a deep copy of the document. Drafts edit clones so an aborted
// save never leaks partial changes into shared state.
func (d Document) Clone() Document {
	out := d
	out.Skills = cloneSlice(d.Skills)
	out.Experience = cloneSlice(d.Experience)
	out.Projects = cloneSlice(d.Projects)
	out.Education = cloneSlice(d.Education)
	out.Certifications = cloneSlice(d.Certifications)
	out.Languages = cloneSlice(d.Languages)
	out.Awards = cloneSlice(d.Awards)
	return out
}

// Equal reports field-for-field equality of two documents.
func Equal(a, b Document) bool {
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(aj) == string(bj)
}
