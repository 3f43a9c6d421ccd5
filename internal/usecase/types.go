package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

var ErrBusy = errors.New("operation already in progress")

// Rasterizer turns a standalone HTML page into PDF bytes.
type Rasterizer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// SessionStore keeps editing sessions. Update runs fn with exclusive access
// to the stored session and returns a copy of the result.
type SessionStore interface {
	Create() *domain.Session
	Get(id uuid.UUID) (*domain.Session, error)
	Update(id uuid.UUID, fn func(*domain.Session) error) (*domain.Session, error)
	Delete(id uuid.UUID) error
}

// OperationKind names a writing-assistant action.
type OperationKind string

const (
	OpSummary    OperationKind = "summary"
	OpSkills     OperationKind = "skills"
	OpInterview  OperationKind = "interview"
	OpExperience OperationKind = "experience"
	OpProject    OperationKind = "project"
)

// Operation is one generation request. EntryID is set for the per-entry
// rewrites only.
type Operation struct {
	Kind    OperationKind
	EntryID string
}

// Key identifies the operation in the session's in-flight set.
func (o Operation) Key() string {
	switch o.Kind {
	case OpExperience:
		return "exp-" + o.EntryID
	case OpProject:
		return "proj-" + o.EntryID
	}
	return string(o.Kind)
}

func ParseOperation(kind, entryID string) (Operation, error) {
	op := Operation{Kind: OperationKind(kind), EntryID: entryID}
	switch op.Kind {
	case OpSummary, OpSkills, OpInterview:
		if entryID != "" {
			return Operation{}, model.NewValidationError(fmt.Sprintf("%s does not take an entry id", kind))
		}
	case OpExperience, OpProject:
		if entryID == "" {
			return Operation{}, model.NewValidationError(fmt.Sprintf("%s needs an entry id", kind))
		}
	case "projects":
		return ParseOperation(string(OpProject), entryID)
	default:
		return Operation{}, model.NewValidationError(fmt.Sprintf("unknown operation %q", kind))
	}
	return op, nil
}

// GenerationError wraps a failure reported by the generation backend.
type GenerationError struct {
	Op  OperationKind
	Err error
}

func (e *GenerationError) Error() string {
	return "AI generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Export is a finished PDF ready for download.
type Export struct {
	Filename string
	PDF      []byte
}
