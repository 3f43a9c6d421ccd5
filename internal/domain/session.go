package domain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
	"resume-builder/internal/theme"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrUnknownTheme    = errors.New("unknown theme")
)

// Session is one editing session: the record being built plus the
// presentation choices and in-flight generation keys. It is not safe for
// concurrent use; the session store serializes access.
type Session struct {
	ID            uuid.UUID          `json:"id"`
	Record        *model.Resume      `json:"record"`
	Template      model.TemplateKind `json:"template"`
	ThemeID       string             `json:"theme"`
	InterviewPrep string             `json:"interviewPrep"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	inFlight map[string]struct{}
}

func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New(),
		Record:    model.NewResume(),
		Template:  model.DefaultTemplate,
		ThemeID:   theme.Default().ID,
		CreatedAt: now,
		UpdatedAt: now,
		inFlight:  map[string]struct{}{},
	}
}

// Clone returns a deep copy safe to hand out of the store.
func (s *Session) Clone() *Session {
	c := *s
	c.Record = s.Record.Clone()
	c.inFlight = make(map[string]struct{}, len(s.inFlight))
	for k := range s.inFlight {
		c.inFlight[k] = struct{}{}
	}
	return &c
}

func (s *Session) touch() { s.UpdatedAt = time.Now().UTC() }

func newEntryID() string { return uuid.NewString() }

func (s *Session) SetField(f model.Field, v string) error {
	if f == model.FieldPhotoURL {
		return model.NewValidationError("photoUrl is set through the photo upload")
	}
	if !s.Record.Set(f, v) {
		return model.NewValidationError(fmt.Sprintf("unknown field %q", f))
	}
	s.touch()
	return nil
}

func (s *Session) SetSkills(v string) {
	s.Record.Skills = v
	s.touch()
}

// SetPhoto stores an uploaded image as a data URI on the record.
func (s *Session) SetPhoto(mimeType string, data []byte) error {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return model.NewValidationError(fmt.Sprintf("photo must be an image, got %q", mimeType))
	}
	if len(data) == 0 {
		return model.NewValidationError("photo is empty")
	}
	s.Record.PhotoURL = "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	s.touch()
	return nil
}

func (s *Session) ClearPhoto() {
	s.Record.PhotoURL = ""
	s.touch()
}

func (s *Session) AddExperience() model.Experience {
	e := model.Experience{ID: newEntryID()}
	s.Record.Experience = append(s.Record.Experience, e)
	s.touch()
	return e
}

func (s *Session) AddEducation() model.Education {
	e := model.Education{ID: newEntryID()}
	s.Record.Education = append(s.Record.Education, e)
	s.touch()
	return e
}

func (s *Session) AddProject() model.Project {
	p := model.Project{ID: newEntryID()}
	s.Record.Projects = append(s.Record.Projects, p)
	s.touch()
	return p
}

// AddEntry appends an empty entry to sec and returns its id.
func (s *Session) AddEntry(sec model.Section) (string, error) {
	switch sec {
	case model.SectionExperience:
		return s.AddExperience().ID, nil
	case model.SectionEducation:
		return s.AddEducation().ID, nil
	case model.SectionProjects:
		return s.AddProject().ID, nil
	}
	return "", model.NewValidationError(fmt.Sprintf("unknown section %q", sec))
}

func (s *Session) RemoveEntry(sec model.Section, id string) error {
	r := s.Record
	removed := false
	switch sec {
	case model.SectionExperience:
		r.Experience, removed = removeByID(r.Experience, id, func(e model.Experience) string { return e.ID })
	case model.SectionEducation:
		r.Education, removed = removeByID(r.Education, id, func(e model.Education) string { return e.ID })
	case model.SectionProjects:
		r.Projects, removed = removeByID(r.Projects, id, func(p model.Project) string { return p.ID })
	default:
		return model.NewValidationError(fmt.Sprintf("unknown section %q", sec))
	}
	if !removed {
		return fmt.Errorf("%s %s: %w", sec, id, ErrEntryNotFound)
	}
	s.touch()
	return nil
}

func removeByID[T any](items []T, id string, key func(T) string) ([]T, bool) {
	for i, it := range items {
		if key(it) == id {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}

func (s *Session) Experience(id string) (model.Experience, error) {
	for _, e := range s.Record.Experience {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Experience{}, fmt.Errorf("experience %s: %w", id, ErrEntryNotFound)
}

func (s *Session) Project(id string) (model.Project, error) {
	for _, p := range s.Record.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Project{}, fmt.Errorf("project %s: %w", id, ErrEntryNotFound)
}

func (s *Session) UpdateExperience(id string, p ExperiencePatch) (model.Experience, error) {
	for i := range s.Record.Experience {
		if s.Record.Experience[i].ID == id {
			p.apply(&s.Record.Experience[i])
			s.touch()
			return s.Record.Experience[i], nil
		}
	}
	return model.Experience{}, fmt.Errorf("experience %s: %w", id, ErrEntryNotFound)
}

func (s *Session) UpdateEducation(id string, p EducationPatch) (model.Education, error) {
	for i := range s.Record.Education {
		if s.Record.Education[i].ID == id {
			p.apply(&s.Record.Education[i])
			s.touch()
			return s.Record.Education[i], nil
		}
	}
	return model.Education{}, fmt.Errorf("education %s: %w", id, ErrEntryNotFound)
}

func (s *Session) UpdateProject(id string, p ProjectPatch) (model.Project, error) {
	for i := range s.Record.Projects {
		if s.Record.Projects[i].ID == id {
			p.apply(&s.Record.Projects[i])
			s.touch()
			return s.Record.Projects[i], nil
		}
	}
	return model.Project{}, fmt.Errorf("project %s: %w", id, ErrEntryNotFound)
}

func (s *Session) SetTemplate(k model.TemplateKind) {
	s.Template = k
	s.touch()
}

func (s *Session) SetTheme(id string) error {
	if _, ok := theme.Lookup(id); !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownTheme)
	}
	s.ThemeID = id
	s.touch()
	return nil
}

// Theme returns the selected palette.
func (s *Session) Theme() theme.Theme {
	return theme.Resolve(s.ThemeID)
}

// ReplaceRecord swaps in an imported record. Entries with a missing or
// repeated id get a fresh one so ids stay unique within each list.
func (s *Session) ReplaceRecord(r *model.Resume) {
	r = r.Clone()
	seen := map[string]bool{}
	fix := func(id *string) {
		if *id == "" || seen[*id] {
			*id = newEntryID()
		}
		seen[*id] = true
	}
	for i := range r.Experience {
		fix(&r.Experience[i].ID)
	}
	seen = map[string]bool{}
	for i := range r.Education {
		fix(&r.Education[i].ID)
	}
	seen = map[string]bool{}
	for i := range r.Projects {
		fix(&r.Projects[i].ID)
	}
	s.Record = r
	s.touch()
}

// Begin marks key as in flight. It reports false when key already is.
func (s *Session) Begin(key string) bool {
	if s.inFlight == nil {
		s.inFlight = map[string]struct{}{}
	}
	if _, ok := s.inFlight[key]; ok {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *Session) Finish(key string) {
	delete(s.inFlight, key)
}

func (s *Session) InFlight(key string) bool {
	_, ok := s.inFlight[key]
	return ok
}

// Busy lists the in-flight keys in sorted order.
func (s *Session) Busy() []string {
	keys := make([]string, 0, len(s.inFlight))
	for k := range s.inFlight {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
