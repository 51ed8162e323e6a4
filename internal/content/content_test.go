package content

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeFillsMissingCollections(t *testing.T) {
	t.Parallel()

	doc := Document{}
	doc.Normalize()

	if doc.Theme != DefaultTheme {
		t.Fatalf("Theme = %q, want %q", doc.Theme, DefaultTheme)
	}
	for name, got := range map[string]int{
		"skills":         len(doc.Skills),
		"experience":     len(doc.Experience),
		"projects":       len(doc.Projects),
		"education":      len(doc.Education),
		"certifications": len(doc.Certifications),
		"languages":      len(doc.Languages),
		"awards":         len(doc.Awards),
	} {
		if got != 0 {
			t.Fatalf("expected %s normalised to empty, got %d entries", name, got)
		}
	}
	if doc.Skills == nil || doc.Experience == nil || doc.Projects == nil || doc.Education == nil {
		t.Fatal("expected collections to be non-nil after normalisation")
	}
}

func TestNormalizeKeepsExistingValues(t *testing.T) {
	t.Parallel()

	doc := Document{Theme: "minimal", Skills: []string{"Go"}}
	doc.Normalize()

	if doc.Theme != "minimal" {
		t.Fatalf("Theme = %q, want minimal", doc.Theme)
	}
	if len(doc.Skills) != 1 || doc.Skills[0] != "Go" {
		t.Fatalf("Skills = %v", doc.Skills)
	}
}

func TestScanNormalisesPartialDocuments(t *testing.T) {
	t.Parallel()

	doc := Document{}
	if err := doc.Scan([]byte(`{"about":"hi","skills":["Go"]}`)); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if doc.About != "hi" {
		t.Fatalf("About = %q", doc.About)
	}
	if doc.Theme != DefaultTheme {
		t.Fatalf("Theme = %q, want %q", doc.Theme, DefaultTheme)
	}
	if doc.Experience == nil || doc.Projects == nil || doc.Education == nil {
		t.Fatal("expected missing collections normalised after Scan")
	}
}

func TestScanHandlesNilAndEmpty(t *testing.T) {
	t.Parallel()

	for _, value := range []any{nil, []byte{}, ""} {
		doc := Document{}
		if err := doc.Scan(value); err != nil {
			t.Fatalf("Scan(%v) returned error: %v", value, err)
		}
		if doc.Theme != DefaultTheme {
			t.Fatalf("Scan(%v): Theme = %q", value, doc.Theme)
		}
	}

	doc := Document{}
	if err := doc.Scan(42); err == nil {
		t.Fatal("expected error for unsupported column type")
	}
}

func TestValueScanRoundTrip(t *testing.T) {
	t.Parallel()

	original := Document{
		Theme:        "creative",
		About:        "builder of things",
		ProfileImage: "https://example.com/me.png",
		Contact:      Contact{Email: "a@x.com", GitHub: "https://github.com/alice"},
		Skills:       []string{"Go", "SQL"},
		Experience: []Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "2020", EndDate: "2023", Description: "built stuff"},
		},
		Projects:       []Project{{Name: "folioforge", URL: "https://example.com"}},
		Education:      []Education{{School: "MIT", Degree: "BSc"}},
		Certifications: []string{"CKA"},
		Languages:      []string{"English"},
		Awards:         []string{"Employee of the month"},
	}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}

	restored := Document{}
	if err := restored.Scan(value); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if !Equal(original, restored) {
		t.Fatalf("round trip mismatch:\noriginal %+v\nrestored %+v", original, restored)
	}
}

func TestOrderedListEdits(t *testing.T) {
	t.Parallel()

	doc := Document{}
	doc.Normalize()

	doc.AddSkill("Go")
	doc.AddSkill("SQL")
	doc.AddSkill("Rust")
	if strings.Join(doc.Skills, ",") != "Go,SQL,Rust" {
		t.Fatalf("Skills order = %v", doc.Skills)
	}

	if !doc.RemoveSkill(1) {
		t.Fatal("expected removal at valid index to succeed")
	}
	if strings.Join(doc.Skills, ",") != "Go,Rust" {
		t.Fatalf("Skills after removal = %v", doc.Skills)
	}

	if doc.RemoveSkill(5) {
		t.Fatal("expected out-of-range removal to be a no-op")
	}
	if doc.RemoveSkill(-1) {
		t.Fatal("expected negative-index removal to be a no-op")
	}
	if strings.Join(doc.Skills, ",") != "Go,Rust" {
		t.Fatalf("Skills mutated by no-op removal = %v", doc.Skills)
	}
}

func TestRecordListEditsPreserveOrder(t *testing.T) {
	t.Parallel()

	doc := Document{}
	doc.Normalize()

	doc.AddExperience(Experience{Title: "First"})
	doc.AddExperience(Experience{Title: "Second"})
	doc.AddExperience(Experience{Title: "Third"})
	if !doc.RemoveExperience(0) {
		t.Fatal("expected removal to succeed")
	}
	if len(doc.Experience) != 2 || doc.Experience[0].Title != "Second" || doc.Experience[1].Title != "Third" {
		t.Fatalf("Experience after removal = %+v", doc.Experience)
	}

	doc.AddProject(Project{Name: "one"})
	doc.AddEducation(Education{School: "somewhere"})
	doc.AddCertification("cert")
	doc.AddLanguage("English")
	doc.AddAward("prize")
	if !doc.RemoveProject(0) || !doc.RemoveEducation(0) || !doc.RemoveCertification(0) || !doc.RemoveLanguage(0) || !doc.RemoveAward(0) {
		t.Fatal("expected removals at index 0 to succeed")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	doc := Document{Skills: []string{"Go"}}
	doc.Normalize()

	clone := doc.Clone()
	clone.AddSkill("SQL")
	clone.Experience = append(clone.Experience, Experience{Title: "X"})

	if len(doc.Skills) != 1 {
		t.Fatalf("clone mutation leaked into original skills: %v", doc.Skills)
	}
	if len(doc.Experience) != 0 {
		t.Fatalf("clone mutation leaked into original experience: %v", doc.Experience)
	}
	if !Equal(doc, Normalized(doc)) {
		t.Fatal("expected normalised document to be stable under Normalized")
	}
}

func TestJSONFieldNames(t *testing.T) {
	t.Parallel()

	doc := Document{}
	doc.Normalize()
	doc.AddExperience(Experience{StartDate: "2020"})
	doc.AddProject(Project{ImageURL: "x"})

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	for _, key := range []string{`"theme"`, `"skills"`, `"startDate"`, `"imageUrl"`, `"certifications"`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("expected %s in serialised document: %s", key, data)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	doc := Document{}
	doc.Normalize()
	if !doc.IsEmpty() {
		t.Fatal("expected normalised empty document to report empty")
	}
	doc.AddSkill("Go")
	if doc.IsEmpty() {
		t.Fatal("expected document with a skill to report non-empty")
	}
}
