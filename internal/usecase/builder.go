package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/domain"
	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/internal/theme"
)

// Builder coordinates editing, generation, preview and export for stored
// sessions.
type Builder struct {
	store  SessionStore
	gen    *Generator
	raster Rasterizer
	log    *zap.Logger
}

func NewBuilder(store SessionStore, gen *Generator, raster Rasterizer, log *zap.Logger) *Builder {
	return &Builder{store: store, gen: gen, raster: raster, log: logger.WithFields(log)}
}

func (b *Builder) Create() *domain.Session {
	s := b.store.Create()
	b.log.Info("session created", zap.String(logger.FieldSession, s.ID.String()))
	return s
}

func (b *Builder) Get(id uuid.UUID) (*domain.Session, error) {
	return b.store.Get(id)
}

func (b *Builder) Delete(id uuid.UUID) error {
	return b.store.Delete(id)
}

// Edit applies fn to the session under the store's lock.
func (b *Builder) Edit(id uuid.UUID, fn func(*domain.Session) error) (*domain.Session, error) {
	return b.store.Update(id, fn)
}

// Generate runs op against a snapshot of the record and writes the result
// back into the one field the operation targets. The store is not held
// during the backend call, so concurrent edits to other fields survive.
// On failure the record is left unchanged.
func (b *Builder) Generate(ctx context.Context, id uuid.UUID, op Operation) (*domain.Session, error) {
	key := op.Key()
	log := b.log.With(zap.String(logger.FieldSession, id.String()), zap.String(logger.FieldOperation, key))

	var snap *model.Resume
	_, err := b.store.Update(id, func(s *domain.Session) error {
		if !s.Begin(key) {
			return fmt.Errorf("%s: %w", key, ErrBusy)
		}
		snap = s.Record.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	text, genErr := b.run(ctx, op, snap)

	var applyErr error
	sess, err := b.store.Update(id, func(s *domain.Session) error {
		s.Finish(key)
		if genErr == nil {
			applyErr = apply(s, op, text)
		}
		return nil
	})
	if genErr != nil {
		return nil, genErr
	}
	if err == nil {
		err = applyErr
	}
	if err != nil {
		log.Warn("discarding generated text", zap.Error(err))
		return nil, err
	}
	log.Debug("generated text applied", logger.Excerpt("text", text, 80))
	return sess, nil
}

func (b *Builder) run(ctx context.Context, op Operation, r *model.Resume) (string, error) {
	switch op.Kind {
	case OpSummary:
		return b.gen.Summary(ctx, r)
	case OpSkills:
		return b.gen.SuggestSkills(ctx, r.TargetJobTitle)
	case OpInterview:
		return b.gen.InterviewQuestions(ctx, r)
	case OpExperience:
		for _, e := range r.Experience {
			if e.ID == op.EntryID {
				return b.gen.RewriteExperience(ctx, e)
			}
		}
		return "", fmt.Errorf("experience %s: %w", op.EntryID, domain.ErrEntryNotFound)
	case OpProject:
		for _, p := range r.Projects {
			if p.ID == op.EntryID {
				return b.gen.RewriteProject(ctx, p)
			}
		}
		return "", fmt.Errorf("project %s: %w", op.EntryID, domain.ErrEntryNotFound)
	}
	return "", model.NewValidationError(fmt.Sprintf("unknown operation %q", op.Kind))
}

func apply(s *domain.Session, op Operation, text string) error {
	switch op.Kind {
	case OpSummary:
		return s.SetField(model.FieldSummary, text)
	case OpSkills:
		s.SetSkills(text)
	case OpInterview:
		s.InterviewPrep = text
	case OpExperience:
		_, err := s.UpdateExperience(op.EntryID, domain.ExperiencePatch{Description: &text})
		return err
	case OpProject:
		_, err := s.UpdateProject(op.EntryID, domain.ProjectPatch{Description: &text})
		return err
	}
	return nil
}

// PreviewOptions override the session's layout and palette for one render.
type PreviewOptions struct {
	Template model.TemplateKind
	ThemeID  string
}

func (b *Builder) Preview(id uuid.UUID, opts PreviewOptions) (*Document, error) {
	s, err := b.store.Get(id)
	if err != nil {
		return nil, err
	}
	kind := s.Template
	if opts.Template != "" {
		kind = opts.Template
	}
	th := s.Theme()
	if opts.ThemeID != "" {
		t, ok := theme.Lookup(opts.ThemeID)
		if !ok {
			return nil, fmt.Errorf("%q: %w", opts.ThemeID, domain.ErrUnknownTheme)
		}
		th = t
	}
	return Render(s.Record, kind, th), nil
}

// Export renders the session's current document to PDF.
func (b *Builder) Export(ctx context.Context, id uuid.UUID) (*Export, error) {
	s, err := b.store.Get(id)
	if err != nil {
		return nil, err
	}
	doc := Render(s.Record, s.Template, s.Theme())
	out, err := ExportDocument(ctx, b.raster, doc, s.Record.FullName)
	if err != nil {
		b.log.Error("export failed", zap.String(logger.FieldSession, id.String()), zap.Error(err))
		return nil, err
	}
	b.log.Info("export finished",
		zap.String(logger.FieldSession, id.String()),
		zap.String("filename", out.Filename),
		zap.Int("bytes", len(out.PDF)),
	)
	return out, nil
}
