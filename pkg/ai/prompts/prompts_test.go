package prompts

import (
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	p := Summary(SummaryInput{FullName: "Jane Doe", TargetJobTitle: "SRE", Skills: "Go, Terraform", HasExperience: true})
	for _, want := range []string{"Jane Doe", "Target Job Title: SRE", "Go, Terraform", "Experienced", "'SRE' role"} {
		if !strings.Contains(p.User, want) {
			t.Errorf("summary prompt missing %q:\n%s", want, p.User)
		}
	}
	if !strings.Contains(p.System, "resume writer") {
		t.Errorf("system = %q", p.System)
	}

	p = Summary(SummaryInput{TargetJobTitle: "SRE"})
	if !strings.Contains(p.User, "Entry Level") {
		t.Errorf("expected entry level wording:\n%s", p.User)
	}
}

func TestWorkDescription(t *testing.T) {
	p := WorkDescription("Backend Engineer", "built apis")
	for _, want := range []string{"Job Role: Backend Engineer", `"built apis"`, "[X]%", "•"} {
		if !strings.Contains(p.User, want) {
			t.Errorf("prompt missing %q:\n%s", want, p.User)
		}
	}
	if !strings.Contains(p.System, "ATS") {
		t.Errorf("system = %q", p.System)
	}
}

func TestProjectDescription(t *testing.T) {
	p := ProjectDescription("Ledger", "Go, SQLite", "tracks money")
	for _, want := range []string{"Project Name: Ledger", "Tech Stack: Go, SQLite", `"tracks money"`, "2-3 sentences"} {
		if !strings.Contains(p.User, want) {
			t.Errorf("prompt missing %q:\n%s", want, p.User)
		}
	}
}

func TestSkills(t *testing.T) {
	p := Skills("Data Engineer")
	if !strings.Contains(p.User, `"Data Engineer"`) || !strings.Contains(p.User, "comma-separated") {
		t.Errorf("prompt = %s", p.User)
	}
	if p.System != "You are a career coach." {
		t.Errorf("system = %q", p.System)
	}
}

func TestInterviewQuestions(t *testing.T) {
	p := InterviewQuestions("SRE", "Go", "Keeps systems up.")
	for _, want := range []string{"Target Role: SRE", "Key Skills: Go", "Professional Summary: Keeps systems up.", "3 Common Behavioral Questions", "3 Technical/Role-Specific Questions", "Pro Tip", "Key Talking Points"} {
		if !strings.Contains(p.User, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
