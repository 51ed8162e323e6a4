// Package parser extracts structured resume content from uploaded files.
// Extraction is heuristic: resumes are scanned line by line for section
// headers and the lines under each header are interpreted per section.
package parser

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"folioforge/internal/content"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	yearPattern  = regexp.MustCompile(`\d{4}`)
	urlPattern   = regexp.MustCompile(`https?://\S+`)
	datesAndSeps = regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s*\d{4}|\d{4}|Present|Current|–|-`)
	edgeNonWord  = regexp.MustCompile(`^[\W_]+|[\W_]+$`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// Parse converts a raw resume file into structured resume data. PDF uploads
// are converted to plain text first; anything else is treated as text.
func Parse(data []byte, mimeType string) (content.ResumeData, error) {
	text, err := extractText(data, mimeType)
	if err != nil {
		return content.ResumeData{}, fmt.Errorf("extract resume text: %w", err)
	}
	return ParseText(text), nil
}

// ParseText runs the section heuristics over already-extracted plain text.
func ParseText(text string) content.ResumeData {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := nonEmptyLines(text)

	data := content.ResumeData{
		Email:      emailPattern.FindString(text),
		Phone:      phonePattern.FindString(text),
		Summary:    extractSummary(lines),
		Skills:     extractSkills(lines),
		Experience: extractExperience(lines),
		Education:  extractEducation(lines),
		Projects:   extractProjects(lines),
		Certifications: extractSimpleList(lines,
			"certifications", "certificates", "credentials", "licenses"),
		Languages: extractSimpleList(lines, "languages", "spoken languages"),
		Awards: extractSimpleList(lines,
			"awards", "honors", "achievements", "accomplishments"),
	}
	data.Normalize()
	return data
}

func extractText(data []byte, mimeType string) (string, error) {
	lower := strings.ToLower(mimeType)
	if strings.Contains(lower, "pdf") {
		return extractTextFromPDF(data)
	}
	return string(data), nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

var headerKeywords = []string{
	"experience", "education", "skill", "project", "certificat", "activit",
	"achieve", "workshop", "language", "interest", "award", "publicat",
	"reference", "volunteer", "curricular", "contact", "link", "social",
	"connect", "summary", "objective", "profile",
}

func isSectionHeader(line string) bool {
	lower := strings.ToLower(line)
	if len(lower) > 60 {
		return false
	}
	if lower == "additional info" || lower == "miscellaneous" {
		return true
	}
	for _, keyword := range headerKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func headerMatches(line string, keywords ...string) bool {
	if !isSectionHeader(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// sectionLines returns the lines between a header matching any keyword and
// the next unrelated section header.
func sectionLines(lines []string, keywords ...string) []string {
	var out []string
	inSection := false
	for _, line := range lines {
		if headerMatches(line, keywords...) {
			inSection = true
			// Inline content such as "Languages: English, Spanish".
			if idx := strings.Index(line, ":"); idx >= 0 {
				if rest := strings.TrimSpace(line[idx+1:]); rest != "" {
					out = append(out, rest)
				}
			}
			continue
		}
		if inSection && isSectionHeader(line) && !headerMatches(line, keywords...) {
			break
		}
		if inSection {
			out = append(out, line)
		}
	}
	return out
}

func cleanText(text string) string {
	return strings.TrimSpace(edgeNonWord.ReplaceAllString(text, ""))
}

func isBulletPoint(line string) bool {
	for _, prefix := range []string{"•", "-", "*", "·"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "•–—*·- \t"))
}

func hasYear(line string) bool {
	return yearPattern.MatchString(line)
}

// extractDates picks the first and last four-digit years on the line; an
// explicit "present"/"current" marker wins as the end date.
func extractDates(line string) (start, end string) {
	years := yearPattern.FindAllString(line, -1)
	if len(years) > 0 {
		start = years[0]
	}
	if len(years) > 1 {
		end = years[len(years)-1]
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "present") || strings.Contains(lower, "current") {
		end = "Present"
	}
	return start, end
}

func extractSummary(lines []string) string {
	var summary strings.Builder
	inSummary := false
	summaryWords := []string{"summary", "objective", "profile", "about"}

	for _, line := range lines {
		if headerMatches(line, summaryWords...) {
			inSummary = true
			continue
		}
		if inSummary && isSectionHeader(line) && !headerMatches(line, summaryWords...) {
			break
		}
		if inSummary {
			summary.WriteString(line)
			summary.WriteString(" ")
		}
	}

	// Fallback: first few lines that are neither headers nor contact info.
	if summary.Len() == 0 {
		count := 0
		for _, line := range lines {
			if isSectionHeader(line) || strings.Contains(line, "@") {
				continue
			}
			summary.WriteString(line)
			summary.WriteString(" ")
			count++
			if count >= 4 {
				break
			}
		}
	}

	return strings.TrimSpace(summary.String())
}

func extractSkills(lines []string) []string {
	skills := []string{}
	for _, line := range sectionLines(lines, "skills", "technologies", "competencies", "stack") {
		for _, token := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == '|' || r == '•' || r == '·' || r == ';'
		}) {
			skill := strings.TrimSpace(token)
			if len(skill) > 1 && len(skill) < 30 {
				skills = append(skills, skill)
			}
		}
	}
	return skills
}

func extractSimpleList(lines []string, keywords ...string) []string {
	items := []string{}
	splitLanguages := strings.Contains(keywords[0], "language")

	for _, line := range sectionLines(lines, keywords...) {
		cleaned := stripBullet(line)
		if len(cleaned) <= 2 {
			continue
		}
		if splitLanguages && strings.Contains(cleaned, ",") && len(cleaned) < 100 {
			for _, part := range strings.Split(cleaned, ",") {
				if c := cleanText(part); c != "" {
					items = append(items, c)
				}
			}
			continue
		}
		items = append(items, cleaned)
	}
	return items
}

func extractExperience(lines []string) []content.Experience {
	entries := []content.Experience{}
	section := sectionLines(lines, "experience", "employment", "work history")

	var current *content.Experience
	prevLine := ""
	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range section {
		if hasYear(line) {
			flush()
			entry := content.Experience{}
			entry.StartDate, entry.EndDate = extractDates(line)

			remainder := multiSpace.ReplaceAllString(datesAndSeps.ReplaceAllString(line, ""), " ")
			remainder = strings.TrimSpace(remainder)
			title, company := splitTitleCompany(remainder, prevLine)
			entry.Title = title
			entry.Company = company
			if entry.Title == "" {
				entry.Title = "Position"
			}
			current = &entry
		} else if current != nil {
			if current.Company == "" && !isBulletPoint(line) {
				current.Company = line
			} else {
				current.Description = strings.TrimSpace(current.Description + " " + line)
			}
		}
		prevLine = line
	}
	flush()
	return entries
}

var (
	companySuffix  = regexp.MustCompile(`(?i)(Inc|LLC|Corp|Ltd|Solutions|Systems|Technologies)`)
	titleSeparator = regexp.MustCompile(`(?i)\s+at\s+|\s*@\s*`)
)

// splitTitleCompany guesses the title/company split on a heading line.
// "Title at Company" is the strongest signal; pipe or dash separation next;
// otherwise the previous line may name the company.
func splitTitleCompany(text, prevLine string) (title, company string) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, " at ") || strings.Contains(text, "@"):
		parts := titleSeparator.Split(text, 2)
		if len(parts) > 1 {
			return cleanText(parts[0]), cleanText(parts[1])
		}
		return cleanText(text), ""
	case strings.Contains(text, "|") || (strings.Contains(text, "-") && len(text) > 5):
		parts := strings.FieldsFunc(text, func(r rune) bool { return r == '|' || r == '-' })
		if len(parts) > 1 {
			first, second := cleanText(parts[0]), cleanText(parts[1])
			if companySuffix.MatchString(second) || len(first) > len(second) {
				return first, second
			}
			return second, first
		}
		return cleanText(text), ""
	default:
		title = cleanText(text)
		if prevLine != "" && !hasYear(prevLine) && !isSectionHeader(prevLine) && len(prevLine) < 50 {
			company = cleanText(prevLine)
		}
		return title, company
	}
}

func extractEducation(lines []string) []content.Education {
	entries := []content.Education{}
	section := sectionLines(lines, "education", "academic", "qualification")

	var current *content.Education
	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range section {
		if hasYear(line) {
			flush()
			entry := content.Education{}
			entry.StartDate, entry.EndDate = extractDates(line)
			text := strings.TrimSpace(yearPattern.ReplaceAllString(line, ""))
			text = cleanText(strings.NewReplacer("-", "", "–", "", "—", "", "Present", "").Replace(text))
			if text != "" {
				entry.Degree = text
			}
			current = &entry
		} else if current != nil {
			lower := strings.ToLower(line)
			switch {
			case current.School == "":
				current.School = line
			case strings.Contains(lower, "bachelor") || strings.Contains(lower, "master") || strings.Contains(lower, "degree"):
				current.Degree = strings.TrimSpace(current.Degree + " " + line)
			default:
				current.School = current.School + ", " + line
			}
		}
	}
	flush()
	return entries
}

func extractProjects(lines []string) []content.Project {
	projects := []content.Project{}
	section := sectionLines(lines, "projects", "portfolio")

	var current *content.Project
	flush := func() {
		if current != nil {
			projects = append(projects, *current)
			current = nil
		}
	}

	for i, line := range section {
		nextLine := ""
		if i+1 < len(section) {
			nextLine = section[i+1]
		}

		bullet := isBulletPoint(line)
		dated := hasYear(line)
		lower := strings.ToLower(line)

		looksLikeTitle := !bullet && !strings.HasSuffix(line, ".") &&
			(dated ||
				isBulletPoint(nextLine) ||
				(strings.Contains(strings.ToLower(nextLine), "tech") && strings.Contains(nextLine, ":")) ||
				strings.Contains(line, "|") ||
				(len(line) < 60 && startsUpper(line) && !strings.Contains(line, "http") && !strings.Contains(line, "@")))
		colonIdx := strings.Index(line, ":")
		hasColonTitle := colonIdx > 0 && colonIdx < 40 && !strings.HasPrefix(lower, "http") && !bullet

		switch {
		case looksLikeTitle || hasColonTitle:
			flush()
			entry := content.Project{}
			name := line
			desc := ""
			if hasColonTitle && !dated {
				name = strings.TrimSpace(line[:colonIdx])
				desc = strings.TrimSpace(line[colonIdx+1:])
			} else if dated {
				if stripped := strings.TrimSpace(yearPattern.ReplaceAllString(line, "")); len(stripped) > 2 {
					name = stripped
				}
			}
			name = strings.TrimSuffix(strings.TrimSuffix(cleanText(name), "|"), "-")
			name = strings.TrimSpace(name)
			if len(name) < 2 {
				name = fmt.Sprintf("Project %d", len(projects)+1)
			}
			entry.Name = name
			entry.Description = desc
			current = &entry
		case current != nil:
			current.Description = strings.TrimSpace(current.Description + " " + line)
			if url := urlPattern.FindString(line); url != "" {
				current.URL = url
			}
		default:
			if !bullet && len(line) < 80 {
				current = &content.Project{Name: cleanText(line)}
			}
		}
	}
	flush()
	return projects
}

func startsUpper(line string) bool {
	for _, r := range line {
		return unicode.IsUpper(r)
	}
	return false
}
