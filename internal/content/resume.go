package content

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ResumeData is the structured content extracted from an uploaded resume. It
// is the raw material a portfolio document is generated from.
type ResumeData struct {
	Name           string       `json:"name,omitempty"`
	Email          string       `json:"email,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Projects       []Project    `json:"projects"`
	Certifications []string     `json:"certifications"`
	Languages      []string     `json:"languages"`
	Awards         []string     `json:"awards"`
}

// Normalize replaces nil collections with empty slices.
func (r *ResumeData) Normalize() {
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
	if r.Awards == nil {
		r.Awards = []string{}
	}
}

// Document derives a fresh portfolio document from the extracted resume data.
// The theme always resets to the default; visibility is decided elsewhere.
func (r ResumeData) Document() Document {
	doc := Document{
		Theme:          DefaultTheme,
		About:          r.Summary,
		Contact:        Contact{Email: r.Email},
		Skills:         cloneSlice(r.Skills),
		Experience:     cloneSlice(r.Experience),
		Education:      cloneSlice(r.Education),
		Projects:       cloneSlice(r.Projects),
		Certifications: cloneSlice(r.Certifications),
		Languages:      cloneSlice(r.Languages),
		Awards:         cloneSlice(r.Awards),
	}
	doc.Normalize()
	return doc
}

// Value serialises the resume data for storage in a JSON column.
func (r ResumeData) Value() (driver.Value, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal resume data: %w", err)
	}
	return string(data), nil
}

// Scan restores resume data from its stored JSON representation.
func (r *ResumeData) Scan(value any) error {
	if value == nil {
		*r = ResumeData{}
		r.Normalize()
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported resume data column type %T", value)
	}

	if len(data) == 0 {
		*r = ResumeData{}
		r.Normalize()
		return nil
	}

	if err := json.Unmarshal(data, r); err != nil {
		return fmt.Errorf("unmarshal resume data: %w", err)
	}
	r.Normalize()
	return nil
}
