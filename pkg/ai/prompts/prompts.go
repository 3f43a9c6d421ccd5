// Package prompts builds the instructions sent to the generation backend for
// each writing-assistant action.
package prompts

import (
	"fmt"
	"strings"

	"resume-builder/pkg/ai"
)

// SummaryInput is the slice of the record the summary prompt needs.
type SummaryInput struct {
	FullName       string
	TargetJobTitle string
	Skills         string
	HasExperience  bool
}

func Summary(in SummaryInput) ai.Prompt {
	level := "Entry Level"
	if in.HasExperience {
		level = "Experienced"
	}
	var b strings.Builder
	b.WriteString("Write a compelling, professional executive summary (max 3-4 sentences) for a resume.\n\n")
	fmt.Fprintf(&b, "Candidate Name: %s\n", in.FullName)
	fmt.Fprintf(&b, "Target Job Title: %s\n", in.TargetJobTitle)
	fmt.Fprintf(&b, "Key Skills: %s\n", in.Skills)
	fmt.Fprintf(&b, "Years of Experience: %s\n\n", level)
	b.WriteString("Rules:\n")
	b.WriteString("- Use active voice and strong action verbs.\n")
	fmt.Fprintf(&b, "- Tailor it specifically for the '%s' role.\n", in.TargetJobTitle)
	b.WriteString("- Do not use personal pronouns like \"I\" or \"My\" (implied first person).\n")
	b.WriteString("- Focus on professional value and achievements.\n")
	b.WriteString("- Return ONLY the summary text.")
	return ai.Prompt{
		System: "You are an expert resume writer. Write a professional executive summary.",
		User:   b.String(),
	}
}

func WorkDescription(role, description string) ai.Prompt {
	var b strings.Builder
	b.WriteString("Rewrite the following job description bullet points to be professional, results-oriented, and ATS-friendly.\n\n")
	fmt.Fprintf(&b, "Job Role: %s\n", role)
	fmt.Fprintf(&b, "Input Text: %q\n\n", description)
	b.WriteString("Rules:\n")
	b.WriteString("- Start each bullet with a strong action verb (e.g., Spearheaded, Engineered, Optimized).\n")
	b.WriteString("- Quantify results where possible (add placeholders like [X]% if numbers are missing).\n")
	b.WriteString("- Keep formatting as a bulleted list (using • ).\n")
	b.WriteString("- Improve clarity and impact.\n")
	b.WriteString("- Return ONLY the bullet points.")
	return ai.Prompt{System: "You are an expert ATS optimization specialist.", User: b.String()}
}

func ProjectDescription(name, techStack, description string) ai.Prompt {
	var b strings.Builder
	b.WriteString("Polish and enhance the following project description for a resume.\n\n")
	fmt.Fprintf(&b, "Project Name: %s\n", name)
	fmt.Fprintf(&b, "Tech Stack: %s\n", techStack)
	fmt.Fprintf(&b, "Input Description: %q\n\n", description)
	b.WriteString("Rules:\n")
	b.WriteString("- Highlight technical challenges and specific solutions.\n")
	b.WriteString("- Naturally weave in the technologies used.\n")
	b.WriteString("- Keep it concise (2-3 sentences or bullet points).\n")
	b.WriteString("- Use impressive, professional language.\n")
	b.WriteString("- Return ONLY the description text.")
	return ai.Prompt{System: "You are a senior technical recruiter optimizing resume content.", User: b.String()}
}

func Skills(jobTitle string) ai.Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "List the top 10 most relevant hard and soft skills for the job title: %q.\n", jobTitle)
	b.WriteString("Return ONLY a single comma-separated string of skills.\n")
	b.WriteString("Example: JavaScript, React, Team Leadership, Agile Methodology\n\n")
	b.WriteString("Do not add any introductory text or labels. Just the comma-separated list.")
	return ai.Prompt{System: "You are a career coach.", User: b.String()}
}

func InterviewQuestions(jobTitle, skills, summary string) ai.Prompt {
	var b strings.Builder
	b.WriteString("Prepare a candidate for a job interview.\n\n")
	fmt.Fprintf(&b, "Target Role: %s\n", jobTitle)
	fmt.Fprintf(&b, "Key Skills: %s\n", skills)
	fmt.Fprintf(&b, "Professional Summary: %s\n\n", summary)
	b.WriteString("Generate:\n")
	b.WriteString("1. 3 Common Behavioral Questions\n")
	b.WriteString("2. 3 Technical/Role-Specific Questions\n\n")
	b.WriteString("For each question, provide:\n")
	b.WriteString("- The Question\n")
	b.WriteString("- \"Pro Tip\": A brief insight on what the interviewer is looking for.\n")
	b.WriteString("- \"Key Talking Points\": Bullet points on what to mention.\n\n")
	b.WriteString("Format the output clearly using headings, bold text (using **stars**), and bullet points.\n")
	b.WriteString("Make it encouraging and actionable.")
	return ai.Prompt{System: "You are an expert technical recruiter and interview coach.", User: b.String()}
}
