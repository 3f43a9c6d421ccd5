package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	stdhttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/domain"
	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/internal/theme"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
)

type Handler struct {
	builder *usecase.Builder
	log     *zap.Logger
}

func NewHandler(b *usecase.Builder, log *zap.Logger) *Handler {
	return &Handler{builder: b, log: logger.WithFields(log)}
}

type sessionView struct {
	ID            string             `json:"id"`
	Record        *model.Resume      `json:"record"`
	Template      model.TemplateKind `json:"template"`
	Theme         string             `json:"theme"`
	InterviewPrep string             `json:"interviewPrep"`
	Busy          []string           `json:"busy"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func viewOf(s *domain.Session) sessionView {
	return sessionView{
		ID:            s.ID.String(),
		Record:        s.Record,
		Template:      s.Template,
		Theme:         s.ThemeID,
		InterviewPrep: s.InterviewPrep,
		Busy:          s.Busy(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) ListThemes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"default": theme.Default().ID, "themes": theme.All()})
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	s := h.builder.Create()
	return c.Status(fiber.StatusCreated).JSON(viewOf(s))
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	s, err := h.builder.Get(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(viewOf(s))
}

func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.builder.Delete(id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ImportRecord replaces the whole record with a schema-checked document.
func (h *Handler) ImportRecord(c *fiber.Ctx) error {
	r, err := model.DecodeResume(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	return h.edit(c, func(s *domain.Session) error {
		s.ReplaceRecord(r)
		return nil
	})
}

// SetFields assigns every field in the JSON object body. Nothing is applied
// when any field name is unknown.
func (h *Handler) SetFields(c *fiber.Ctx) error {
	var body map[string]string
	if err := decodeJSON(c, &body); err != nil {
		return h.fail(c, err)
	}
	return h.edit(c, func(s *domain.Session) error {
		for k, v := range body {
			f, err := model.ParseField(k)
			if err != nil {
				return err
			}
			if err := s.SetField(f, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return h.fail(c, model.NewValidationError("multipart field \"photo\" is required"))
	}
	f, err := fh.Open()
	if err != nil {
		return h.fail(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return h.fail(c, err)
	}
	mimeType := fh.Header.Get(fiber.HeaderContentType)
	if mimeType == "" || mimeType == fiber.MIMEOctetStream {
		mimeType = stdhttp.DetectContentType(data)
	}
	return h.edit(c, func(s *domain.Session) error {
		return s.SetPhoto(mimeType, data)
	})
}

func (h *Handler) ClearPhoto(c *fiber.Ctx) error {
	return h.edit(c, func(s *domain.Session) error {
		s.ClearPhoto()
		return nil
	})
}

func (h *Handler) SetTemplate(c *fiber.Ctx) error {
	var body struct {
		Template string `json:"template"`
	}
	if err := decodeJSON(c, &body); err != nil {
		return h.fail(c, err)
	}
	kind, err := model.ParseTemplateKind(body.Template)
	if err != nil {
		return h.fail(c, err)
	}
	return h.edit(c, func(s *domain.Session) error {
		s.SetTemplate(kind)
		return nil
	})
}

func (h *Handler) SetTheme(c *fiber.Ctx) error {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := decodeJSON(c, &body); err != nil {
		return h.fail(c, err)
	}
	return h.edit(c, func(s *domain.Session) error {
		return s.SetTheme(body.Theme)
	})
}

func (h *Handler) AddEntry(c *fiber.Ctx) error {
	sec, err := model.ParseSection(c.Params("section"))
	if err != nil {
		return h.fail(c, err)
	}
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var entryID string
	s, err := h.builder.Edit(id, func(s *domain.Session) error {
		var err error
		entryID, err = s.AddEntry(sec)
		return err
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": entryID, "session": viewOf(s)})
}

func (h *Handler) UpdateEntry(c *fiber.Ctx) error {
	sec, err := model.ParseSection(c.Params("section"))
	if err != nil {
		return h.fail(c, err)
	}
	entryID := c.Params("entryID")

	var apply func(*domain.Session) error
	switch sec {
	case model.SectionExperience:
		var p domain.ExperiencePatch
		if err := decodeJSON(c, &p); err != nil {
			return h.fail(c, err)
		}
		apply = func(s *domain.Session) error { _, err := s.UpdateExperience(entryID, p); return err }
	case model.SectionEducation:
		var p domain.EducationPatch
		if err := decodeJSON(c, &p); err != nil {
			return h.fail(c, err)
		}
		apply = func(s *domain.Session) error { _, err := s.UpdateEducation(entryID, p); return err }
	case model.SectionProjects:
		var p domain.ProjectPatch
		if err := decodeJSON(c, &p); err != nil {
			return h.fail(c, err)
		}
		apply = func(s *domain.Session) error { _, err := s.UpdateProject(entryID, p); return err }
	}
	return h.edit(c, apply)
}

func (h *Handler) RemoveEntry(c *fiber.Ctx) error {
	sec, err := model.ParseSection(c.Params("section"))
	if err != nil {
		return h.fail(c, err)
	}
	entryID := c.Params("entryID")
	return h.edit(c, func(s *domain.Session) error {
		return s.RemoveEntry(sec, entryID)
	})
}

func (h *Handler) previewDocument(c *fiber.Ctx) (*usecase.Document, error) {
	id, err := sessionID(c)
	if err != nil {
		return nil, err
	}
	var opts usecase.PreviewOptions
	if t := c.Query("template"); t != "" {
		kind, err := model.ParseTemplateKind(t)
		if err != nil {
			return nil, err
		}
		opts.Template = kind
	}
	opts.ThemeID = c.Query("theme")
	return h.builder.Preview(id, opts)
}

// Preview serves the rendered page as HTML.
func (h *Handler) Preview(c *fiber.Ctx) error {
	doc, err := h.previewDocument(c)
	if err != nil {
		return h.fail(c, err)
	}
	html, err := doc.HTML()
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// Document serves the layout-independent view as JSON.
func (h *Handler) Document(c *fiber.Ctx) error {
	doc, err := h.previewDocument(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(doc)
}

func (h *Handler) Generate(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	op, err := usecase.ParseOperation(c.Params("op"), c.Params("entryID"))
	if err != nil {
		return h.fail(c, err)
	}
	s, err := h.builder.Generate(c.UserContext(), id, op)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(viewOf(s))
}

func (h *Handler) Export(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	out, err := h.builder.Export(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	c.Attachment(out.Filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(out.PDF)
}

func (h *Handler) edit(c *fiber.Ctx, fn func(*domain.Session) error) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	s, err := h.builder.Edit(id, fn)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(viewOf(s))
}

func sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("session %q: %w", c.Params("id"), domain.ErrSessionNotFound)
	}
	return id, nil
}

func decodeJSON(c *fiber.Ctx, out interface{}) error {
	if err := json.Unmarshal(c.Body(), out); err != nil {
		return model.NewValidationError(fmt.Sprintf("invalid payload: %v", err))
	}
	return nil
}

// fail maps domain errors onto HTTP statuses.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var (
		verr   *model.ValidationError
		genErr *usecase.GenerationError
	)
	status := fiber.StatusInternalServerError
	body := fiber.Map{"error": err.Error()}

	switch {
	case errors.As(err, &verr):
		status = fiber.StatusUnprocessableEntity
		body["problems"] = verr.Problems
	case errors.Is(err, domain.ErrUnknownTheme):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrEntryNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, usecase.ErrBusy):
		status = fiber.StatusConflict
	case errors.As(err, &genErr):
		status = fiber.StatusBadGateway
		if errors.Is(err, ai.ErrMissingAPIKey) {
			status = fiber.StatusServiceUnavailable
		}
	}

	if status >= fiber.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.Path()), zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(body)
}
