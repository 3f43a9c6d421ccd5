package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

func TestExportFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Jane Doe", "Jane_Doe_Resume.pdf"},
		{"Jane   Mary\tDoe", "Jane_Mary_Doe_Resume.pdf"},
		{"", "_Resume.pdf"},
		{"Zoë", "Zoë_Resume.pdf"},
		{"AC/DC", "AC_DC_Resume.pdf"},
		{"../x", ".._x_Resume.pdf"},
		{`Jane\Doe`, "Jane_Doe_Resume.pdf"},
	}
	for _, tc := range cases {
		got := ExportFilename(tc.in)
		if got != tc.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if filepath.Base(got) != got {
			t.Errorf("ExportFilename(%q) = %q is not a single path element", tc.in, got)
		}
	}
}

func TestBuilderExport(t *testing.T) {
	r := &stubRasterizer{out: []byte("%PDF-1.4 fake")}
	b, _ := newTestBuilder(&stubCompleter{}, r)
	s := seed(t, b)
	_, _ = b.Edit(s.ID, func(s *domain.Session) error {
		s.SetTemplate(model.TemplateModern)
		return s.SetTheme("paper-cream")
	})

	out, err := b.Export(context.Background(), s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if out.Filename != "Jane_Doe_Resume.pdf" {
		t.Errorf("filename = %q", out.Filename)
	}
	if string(out.PDF) != "%PDF-1.4 fake" {
		t.Errorf("pdf = %q", out.PDF)
	}
	if !strings.Contains(r.html, `class="layout-modern"`) || !strings.Contains(r.html, `id="resume-preview-content"`) {
		t.Error("rasterizer did not receive the session's document")
	}
}

func TestExportRejectsNonPDF(t *testing.T) {
	prev := RenderAttempts
	RenderAttempts = 1
	t.Cleanup(func() { RenderAttempts = prev })

	r := &stubRasterizer{out: []byte("<html>")}
	b, _ := newTestBuilder(&stubCompleter{}, r)
	s := seed(t, b)

	if _, err := b.Export(context.Background(), s.ID); !errors.Is(err, errNotPDF) {
		t.Fatalf("err = %v", err)
	}
}

func TestExportRetriesRasterizerFailure(t *testing.T) {
	prev := RenderAttempts
	RenderAttempts = 2
	t.Cleanup(func() { RenderAttempts = prev })

	r := &stubRasterizer{err: errors.New("chrome crashed")}
	b, _ := newTestBuilder(&stubCompleter{}, r)
	s := seed(t, b)

	if _, err := b.Export(context.Background(), s.ID); err == nil || !strings.Contains(err.Error(), "chrome crashed") {
		t.Fatalf("err = %v", err)
	}
	if r.calls != 2 {
		t.Fatalf("calls = %d, want 2", r.calls)
	}
}

func TestExportWithoutRasterizer(t *testing.T) {
	b, _ := newTestBuilder(&stubCompleter{}, nil)
	s := seed(t, b)
	if _, err := b.Export(context.Background(), s.ID); err == nil {
		t.Fatal("expected error")
	}
}
