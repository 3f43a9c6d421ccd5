package model

import (
	"fmt"
	"strings"
)

// Go models for the resume record edited in a builder session. JSON names
// match resume.schema.json.

type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	ID     string `json:"id"`
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TechStack   string `json:"techStack"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type Resume struct {
	FullName       string       `json:"fullName"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Location       string       `json:"location"`
	LinkedIn       string       `json:"linkedin"`
	Website        string       `json:"website"`
	TargetJobTitle string       `json:"targetJobTitle"`
	Summary        string       `json:"summary"`
	Skills         string       `json:"skills"`
	PhotoURL       string       `json:"photoUrl,omitempty"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Projects       []Project    `json:"projects"`
}

// NewResume returns an empty record with non-nil entry lists.
func NewResume() *Resume {
	return &Resume{
		Experience: []Experience{},
		Education:  []Education{},
		Projects:   []Project{},
	}
}

// Clone returns a deep copy of r.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}
	c := *r
	c.Experience = append([]Experience{}, r.Experience...)
	c.Education = append([]Education{}, r.Education...)
	c.Projects = append([]Project{}, r.Projects...)
	return &c
}

// SkillTags splits the free-text skills field into display tags.
func (r *Resume) SkillTags() []string {
	return ParseSkills(r.Skills)
}

// ParseSkills splits on commas, trims each piece and drops empty pieces.
// Duplicates and input order are preserved.
func ParseSkills(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Field names a scalar field of the record.
type Field string

const (
	FieldFullName       Field = "fullName"
	FieldEmail          Field = "email"
	FieldPhone          Field = "phone"
	FieldLocation       Field = "location"
	FieldLinkedIn       Field = "linkedin"
	FieldWebsite        Field = "website"
	FieldTargetJobTitle Field = "targetJobTitle"
	FieldSummary        Field = "summary"
	FieldSkills         Field = "skills"
	FieldPhotoURL       Field = "photoUrl"
)

var fields = []Field{
	FieldFullName, FieldEmail, FieldPhone, FieldLocation, FieldLinkedIn,
	FieldWebsite, FieldTargetJobTitle, FieldSummary, FieldSkills, FieldPhotoURL,
}

// Fields lists every scalar field in display order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

func ParseField(s string) (Field, error) {
	for _, f := range fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", NewValidationError(fmt.Sprintf("unknown field %q", s))
}

func (r *Resume) ptr(f Field) *string {
	switch f {
	case FieldFullName:
		return &r.FullName
	case FieldEmail:
		return &r.Email
	case FieldPhone:
		return &r.Phone
	case FieldLocation:
		return &r.Location
	case FieldLinkedIn:
		return &r.LinkedIn
	case FieldWebsite:
		return &r.Website
	case FieldTargetJobTitle:
		return &r.TargetJobTitle
	case FieldSummary:
		return &r.Summary
	case FieldSkills:
		return &r.Skills
	case FieldPhotoURL:
		return &r.PhotoURL
	}
	return nil
}

// Get returns the value of f, or "" for an unknown field.
func (r *Resume) Get(f Field) string {
	if p := r.ptr(f); p != nil {
		return *p
	}
	return ""
}

// Set assigns v to f. It reports false for an unknown field.
func (r *Resume) Set(f Field, v string) bool {
	p := r.ptr(f)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Section names one of the repeating entry lists.
type Section string

const (
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionProjects   Section = "projects"
)

func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionExperience, SectionEducation, SectionProjects:
		return Section(s), nil
	}
	return "", NewValidationError(fmt.Sprintf("unknown section %q", s))
}

// TemplateKind selects a page layout.
type TemplateKind string

const (
	TemplateFuturistic TemplateKind = "futuristic"
	TemplateModern     TemplateKind = "modern"
	TemplateMinimal    TemplateKind = "minimal"

	DefaultTemplate = TemplateFuturistic
)

func TemplateKinds() []TemplateKind {
	return []TemplateKind{TemplateFuturistic, TemplateModern, TemplateMinimal}
}

func ParseTemplateKind(s string) (TemplateKind, error) {
	k := TemplateKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TemplateKinds() {
		if k == known {
			return k, nil
		}
	}
	return "", NewValidationError(fmt.Sprintf("unknown template %q", s))
}
