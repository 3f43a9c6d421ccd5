package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	pathSeparators = strings.NewReplacer("/", "_", "\\", "_")
)

// ExportFilename derives the download name from the full name: each run of
// whitespace becomes one underscore. An empty name yields "_Resume.pdf".
// Path separators also become underscores so the name is a single path element.
func ExportFilename(fullName string) string {
	name := whitespaceRun.ReplaceAllString(fullName, "_")
	return pathSeparators.Replace(name) + "_Resume.pdf"
}

// RenderAttempts bounds how many times a failed rasterization is retried.
var RenderAttempts = 3

var errNotPDF = errors.New("rasterizer did not return a PDF")

// ExportDocument renders doc to HTML and rasterizes it, retrying with
// exponential backoff when the browser fails.
func ExportDocument(ctx context.Context, r Rasterizer, doc *Document, fullName string) (*Export, error) {
	if r == nil {
		return nil, errors.New("no rasterizer configured")
	}
	html, err := doc.HTML()
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	var pdf []byte
	var renderErr error
	for i := 0; i < RenderAttempts; i++ {
		pdf, renderErr = r.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if bytes.HasPrefix(pdf, []byte("%PDF")) {
				break
			}
			renderErr = fmt.Errorf("%w (len=%d)", errNotPDF, len(pdf))
		}
		if i < RenderAttempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if renderErr != nil {
		return nil, fmt.Errorf("export pdf: %w", renderErr)
	}
	return &Export{Filename: ExportFilename(fullName), PDF: pdf}, nil
}
