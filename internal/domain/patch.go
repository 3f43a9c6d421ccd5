package domain

import "resume-builder/internal/model"

// Patches carry only the fields a caller wants to change. A nil pointer
// leaves the stored value alone.

type ExperiencePatch struct {
	Role        *string `json:"role,omitempty"`
	Company     *string `json:"company,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p ExperiencePatch) apply(e *model.Experience) {
	set(&e.Role, p.Role)
	set(&e.Company, p.Company)
	set(&e.StartDate, p.StartDate)
	set(&e.EndDate, p.EndDate)
	set(&e.Description, p.Description)
}

type EducationPatch struct {
	Degree *string `json:"degree,omitempty"`
	School *string `json:"school,omitempty"`
	Year   *string `json:"year,omitempty"`
}

func (p EducationPatch) apply(e *model.Education) {
	set(&e.Degree, p.Degree)
	set(&e.School, p.School)
	set(&e.Year, p.Year)
}

type ProjectPatch struct {
	Name        *string `json:"name,omitempty"`
	TechStack   *string `json:"techStack,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

func (p ProjectPatch) apply(pr *model.Project) {
	set(&pr.Name, p.Name)
	set(&pr.TechStack, p.TechStack)
	set(&pr.Description, p.Description)
	set(&pr.Link, p.Link)
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
