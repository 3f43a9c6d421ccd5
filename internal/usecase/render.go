package usecase

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"resume-builder/internal/model"
	"resume-builder/internal/theme"
)

// Placeholders shown in the header while the record has no name or title.
const (
	NamePlaceholder  = "Your Name"
	TitlePlaceholder = "Target Role"
)

// RootElementID is the id of the element that wraps the rendered page.
const RootElementID = "resume-preview-content"

type SectionKind string

const (
	SectionSummary    SectionKind = "summary"
	SectionSkills     SectionKind = "skills"
	SectionExperience SectionKind = "experience"
	SectionProjects   SectionKind = "projects"
	SectionEducation  SectionKind = "education"
)

var sectionHeadings = map[SectionKind]string{
	SectionSummary:    "Profile",
	SectionSkills:     "Skills",
	SectionExperience: "Experience",
	SectionProjects:   "Projects",
	SectionEducation:  "Education",
}

// Document is the layout-independent view of a record. Every layout renders
// exactly the content held here; layouts differ only in arrangement and
// typography.
type Document struct {
	Kind     model.TemplateKind `json:"template"`
	Theme    theme.Theme        `json:"theme"`
	Header   Header             `json:"header"`
	Sections []Section          `json:"sections"`
}

type Header struct {
	Name             string    `json:"name"`
	NamePlaceholder  bool      `json:"namePlaceholder"`
	Title            string    `json:"title"`
	TitlePlaceholder bool      `json:"titlePlaceholder"`
	Contacts         []Contact `json:"contacts"`
	Photo            string    `json:"photo,omitempty"`
}

type Contact struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

type Section struct {
	Kind    SectionKind `json:"kind"`
	Heading string      `json:"heading"`
	Text    string      `json:"text,omitempty"`
	Tags    []string    `json:"tags,omitempty"`
	Entries []Entry     `json:"entries,omitempty"`
}

type Entry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	Dates     string `json:"dates,omitempty"`
	Body      string `json:"body,omitempty"`
	Link      string `json:"link,omitempty"`
	LinkLabel string `json:"linkLabel,omitempty"`
}

// Render builds the document for r in the given layout and palette.
// Unknown kinds fall back to the default layout.
func Render(r *model.Resume, kind model.TemplateKind, th theme.Theme) *Document {
	if _, ok := layouts[kind]; !ok {
		kind = model.DefaultTemplate
	}
	if r == nil {
		r = model.NewResume()
	}
	doc := &Document{Kind: kind, Theme: th, Header: buildHeader(r)}

	if s := strings.TrimSpace(r.Summary); s != "" {
		doc.Sections = append(doc.Sections, Section{Kind: SectionSummary, Heading: sectionHeadings[SectionSummary], Text: r.Summary})
	}
	if tags := r.SkillTags(); len(tags) > 0 {
		doc.Sections = append(doc.Sections, Section{Kind: SectionSkills, Heading: sectionHeadings[SectionSkills], Tags: tags})
	}
	if len(r.Experience) > 0 {
		entries := make([]Entry, 0, len(r.Experience))
		for _, e := range r.Experience {
			entries = append(entries, Entry{
				ID:       e.ID,
				Title:    e.Role,
				Subtitle: e.Company,
				Dates:    joinNonEmpty(" – ", e.StartDate, e.EndDate),
				Body:     e.Description,
			})
		}
		doc.Sections = append(doc.Sections, Section{Kind: SectionExperience, Heading: sectionHeadings[SectionExperience], Entries: entries})
	}
	if len(r.Projects) > 0 {
		entries := make([]Entry, 0, len(r.Projects))
		for _, p := range r.Projects {
			label, href := linkTarget(p.Link)
			entries = append(entries, Entry{
				ID:        p.ID,
				Title:     p.Name,
				Subtitle:  p.TechStack,
				Body:      p.Description,
				Link:      href,
				LinkLabel: label,
			})
		}
		doc.Sections = append(doc.Sections, Section{Kind: SectionProjects, Heading: sectionHeadings[SectionProjects], Entries: entries})
	}
	if len(r.Education) > 0 {
		entries := make([]Entry, 0, len(r.Education))
		for _, e := range r.Education {
			entries = append(entries, Entry{ID: e.ID, Title: e.Degree, Subtitle: e.School, Dates: e.Year})
		}
		doc.Sections = append(doc.Sections, Section{Kind: SectionEducation, Heading: sectionHeadings[SectionEducation], Entries: entries})
	}
	return doc
}

func buildHeader(r *model.Resume) Header {
	h := Header{Name: strings.TrimSpace(r.FullName), Title: strings.TrimSpace(r.TargetJobTitle)}
	if h.Name == "" {
		h.Name, h.NamePlaceholder = NamePlaceholder, true
	}
	if h.Title == "" {
		h.Title, h.TitlePlaceholder = TitlePlaceholder, true
	}
	if v := strings.TrimSpace(r.Email); v != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "email", Label: v, Href: "mailto:" + v})
	}
	if v := strings.TrimSpace(r.Phone); v != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "phone", Label: v})
	}
	if v := strings.TrimSpace(r.Location); v != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "location", Label: v})
	}
	if label, href := linkTarget(r.LinkedIn); label != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "linkedin", Label: label, Href: href})
	}
	if label, href := linkTarget(r.Website); label != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "website", Label: label, Href: href})
	}
	if strings.HasPrefix(r.PhotoURL, "data:image/") {
		h.Photo = r.PhotoURL
	}
	return h
}

// linkTarget turns a user-typed link into a display label and an href.
// Values without a registrable domain are shown as typed and not linked.
func linkTarget(raw string) (label, href string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Hostname() == "" {
		return raw, ""
	}
	host := strings.ToLower(u.Hostname())
	if _, err := publicsuffix.EffectiveTLDPlusOne(host); err != nil {
		return raw, ""
	}
	label = strings.TrimPrefix(host, "www.")
	if p := strings.TrimRight(u.Path, "/"); p != "" {
		label += p
	}
	return label, candidate
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// Section returns the section of the given kind, if rendered.
func (d *Document) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// Headings lists the rendered section headings in order.
func (d *Document) Headings() []string {
	out := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		out = append(out, s.Heading)
	}
	return out
}

// SkillTags returns the rendered skill tags, or nil when none are shown.
func (d *Document) SkillTags() []string {
	if s, ok := d.Section(SectionSkills); ok {
		return s.Tags
	}
	return nil
}

// Values lists every piece of record content the document displays.
func (d *Document) Values() []string {
	out := []string{d.Header.Name, d.Header.Title}
	for _, c := range d.Header.Contacts {
		out = append(out, c.Label)
	}
	for _, s := range d.Sections {
		if s.Text != "" {
			out = append(out, s.Text)
		}
		out = append(out, s.Tags...)
		for _, e := range s.Entries {
			for _, v := range []string{e.Title, e.Subtitle, e.Dates, e.Body, e.LinkLabel} {
				if v != "" {
					out = append(out, v)
				}
			}
		}
	}
	return out
}

// WriteHTML writes the document as a standalone HTML page.
func (d *Document) WriteHTML(w io.Writer) error {
	l, ok := layouts[d.Kind]
	if !ok {
		return fmt.Errorf("no layout for template %q", d.Kind)
	}
	return l.tmpl.ExecuteTemplate(w, "page", l.arrange(d))
}

// HTML renders the document to a string.
func (d *Document) HTML() (string, error) {
	var b strings.Builder
	if err := d.WriteHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

//go:embed templates/*.html
var templateFS embed.FS

type layout struct {
	main []SectionKind
	side []SectionKind
	tmpl *template.Template
}

type page struct {
	Doc    *Document
	RootID string
	Vars   template.CSS
	Main   []Section
	Side   []Section
}

func (l layout) arrange(d *Document) page {
	p := page{Doc: d, RootID: RootElementID, Vars: paletteVars(d.Theme.Colors)}
	for _, k := range l.main {
		if s, ok := d.Section(k); ok {
			p.Main = append(p.Main, s)
		}
	}
	for _, k := range l.side {
		if s, ok := d.Section(k); ok {
			p.Side = append(p.Side, s)
		}
	}
	return p
}

// paletteVars exposes the palette as CSS custom properties. Layout styles
// only reference these variables, so any theme works with any layout.
func paletteVars(p theme.Palette) template.CSS {
	return template.CSS(fmt.Sprintf(
		":root{--background:%s;--text:%s;--primary:%s;--secondary:%s;--accent:%s}",
		cssColor(p.Background), cssColor(p.Text), cssColor(p.Primary), cssColor(p.Secondary), cssColor(p.Accent),
	))
}

func cssColor(c string) string {
	if len(c) != 7 || c[0] != '#' {
		return "inherit"
	}
	for _, r := range c[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "inherit"
		}
	}
	return c
}

var templateFuncs = template.FuncMap{
	"photoURL": func(s string) template.URL {
		if strings.HasPrefix(s, "data:image/") {
			return template.URL(s)
		}
		return ""
	},
}

var layouts = map[model.TemplateKind]layout{
	model.TemplateFuturistic: {
		main: []SectionKind{SectionSummary, SectionExperience, SectionProjects},
		side: []SectionKind{SectionSkills, SectionEducation},
		tmpl: mustLayout("futuristic"),
	},
	model.TemplateModern: {
		main: []SectionKind{SectionSummary, SectionSkills, SectionExperience, SectionEducation, SectionProjects},
		tmpl: mustLayout("modern"),
	},
	model.TemplateMinimal: {
		main: []SectionKind{SectionSummary, SectionExperience, SectionSkills, SectionEducation, SectionProjects},
		tmpl: mustLayout("minimal"),
	},
}

func mustLayout(name string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/base.html", "templates/"+name+".html"))
}
