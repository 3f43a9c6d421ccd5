package infrastructure

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// onePagePDF assembles a minimal single-page document with a correct
// cross-reference table.
func onePagePDF() []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	}
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objs)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return b.Bytes()
}

func TestVerifyPDF(t *testing.T) {
	n, err := VerifyPDF(onePagePDF())
	if err != nil {
		t.Fatalf("VerifyPDF: %v", err)
	}
	if n != 1 {
		t.Fatalf("pages = %d, want 1", n)
	}
}

func TestVerifyPDFRejectsGarbage(t *testing.T) {
	for name, in := range map[string][]byte{
		"empty":     nil,
		"html":      []byte("<html></html>"),
		"truncated": []byte("%PDF-1.4\n1 0 obj\n"),
	} {
		if _, err := VerifyPDF(in); !errors.Is(err, ErrInvalidPDF) {
			t.Errorf("%s: err = %v", name, err)
		}
	}
}

func TestNewChromedpRendererDefaults(t *testing.T) {
	r := NewChromedpRenderer("", 0, nil)
	if r.Timeout <= 0 || r.log == nil {
		t.Fatalf("renderer = %+v", r)
	}
}
