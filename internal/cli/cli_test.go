package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const record = `{
  "fullName": "Jane Doe",
  "email": "jane@example.com",
  "targetJobTitle": "Backend Engineer",
  "skills": "Go, SQL",
  "experience": [{"id": "e1", "role": "Engineer", "company": "Acme", "startDate": "2020", "endDate": "Present", "description": "Built APIs"}]
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderHTMLFromStdin(t *testing.T) {
	out, err := run(t, record, "render", "--template", "modern", "--theme", "dracula")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`id="resume-preview-content"`, `class="layout-modern"`, "Jane Doe", "Built APIs", "#282a36"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderJSONToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "record.json")
	if err := os.WriteFile(in, []byte(record), 0o600); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "doc.json")

	if _, err := run(t, "", "render", "--in", in, "--format", "json", "--out", outPath); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Template string `json:"template"`
		Header   struct {
			Name string `json:"name"`
		} `json:"header"`
		Sections []struct {
			Heading string `json:"heading"`
		} `json:"sections"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Template != "futuristic" || doc.Header.Name != "Jane Doe" || len(doc.Sections) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	cases := map[string][]string{
		`{"fullName": 1}`: {"render"},
		record + " ":      {"render", "--template", "baroque"},
		record:            {"render", "--theme", "no-such-theme"},
		record + "  ":     {"render", "--format", "pdf"},
	}
	for stdin, args := range cases {
		if _, err := run(t, stdin, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestThemesCommand(t *testing.T) {
	out, err := run(t, "", "themes")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(strings.TrimSpace(out), "\n") + 1; n != 30 {
		t.Fatalf("lines = %d", n)
	}
	if !strings.Contains(out, "cyber-black") || !strings.Contains(out, "dracula") {
		t.Fatalf("output = %s", out)
	}

	out, err = run(t, "", "themes", "--light")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "cyber-black") {
		t.Fatal("dark theme listed with --light")
	}
	if _, err := run(t, "", "themes", "--dark", "--light"); err == nil {
		t.Fatal("expected error")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "resume-builder version: ") {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderUnknownFormatWritesNothing(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "x.html")
	if _, err := run(t, record, "render", "--format", "pdf", "--out", outPath); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Fatalf("output file left behind: %v", err)
	}
}
