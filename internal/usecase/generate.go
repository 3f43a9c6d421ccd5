package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/pkg/ai"
	"resume-builder/pkg/ai/prompts"
)

const missingTitle = "Please enter a Target Job Title first."

// Generator runs the writing-assistant actions. Inputs are checked before
// anything is sent; each action makes a single call to the backend.
type Generator struct {
	completer ai.Completer
	log       *zap.Logger
}

func NewGenerator(c ai.Completer, log *zap.Logger) *Generator {
	return &Generator{
		completer: c,
		log:       logger.WithFields(log, logger.ProviderFields(c.Provider(), c.Model())...),
	}
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func (g *Generator) Summary(ctx context.Context, r *model.Resume) (string, error) {
	if blank(r.TargetJobTitle) {
		return "", model.NewValidationError(missingTitle)
	}
	return g.complete(ctx, OpSummary, prompts.Summary(prompts.SummaryInput{
		FullName:       r.FullName,
		TargetJobTitle: r.TargetJobTitle,
		Skills:         r.Skills,
		HasExperience:  len(r.Experience) > 0,
	}))
}

func (g *Generator) RewriteExperience(ctx context.Context, e model.Experience) (string, error) {
	if blank(e.Role) || blank(e.Description) {
		return "", model.NewValidationError("Enter a role and a description before rewriting.")
	}
	return g.complete(ctx, OpExperience, prompts.WorkDescription(e.Role, e.Description))
}

func (g *Generator) RewriteProject(ctx context.Context, p model.Project) (string, error) {
	if blank(p.Name) || blank(p.Description) {
		return "", model.NewValidationError("Enter a project name and a description before rewriting.")
	}
	return g.complete(ctx, OpProject, prompts.ProjectDescription(p.Name, p.TechStack, p.Description))
}

func (g *Generator) SuggestSkills(ctx context.Context, jobTitle string) (string, error) {
	if blank(jobTitle) {
		return "", model.NewValidationError(missingTitle)
	}
	return g.complete(ctx, OpSkills, prompts.Skills(jobTitle))
}

func (g *Generator) InterviewQuestions(ctx context.Context, r *model.Resume) (string, error) {
	if blank(r.TargetJobTitle) {
		return "", model.NewValidationError(missingTitle)
	}
	return g.complete(ctx, OpInterview, prompts.InterviewQuestions(r.TargetJobTitle, r.Skills, r.Summary))
}

func (g *Generator) complete(ctx context.Context, op OperationKind, p ai.Prompt) (string, error) {
	log := g.log.With(zap.String(logger.FieldOperation, string(op)))
	start := time.Now()
	out, err := g.completer.Complete(ctx, p)
	if err != nil {
		log.Warn("generation failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", &GenerationError{Op: op, Err: err}
	}
	log.Info("generation finished", zap.Int("chars", len(out)), zap.Duration("elapsed", time.Since(start)))
	return out, nil
}
