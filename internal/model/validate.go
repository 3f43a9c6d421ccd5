package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON []byte

var resumeSchema = mustSchema(schemaJSON)

func mustSchema(b []byte) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		panic(fmt.Sprintf("model: invalid resume schema: %v", err))
	}
	return s
}

// ValidationError reports input the builder refuses to accept.
type ValidationError struct {
	Problems []string
}

func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return e.Problems[0]
	}
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

// ValidateJSON checks a raw record document against resume.schema.json.
func ValidateJSON(doc []byte) error {
	res, err := resumeSchema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return NewValidationError(fmt.Sprintf("malformed record: %v", err))
	}
	if res.Valid() {
		return nil
	}
	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}
	return &ValidationError{Problems: problems}
}

// DecodeResume validates doc and decodes it into a record.
func DecodeResume(doc []byte) (*Resume, error) {
	if err := ValidateJSON(doc); err != nil {
		return nil, err
	}
	r := NewResume()
	if err := json.Unmarshal(doc, r); err != nil {
		return nil, NewValidationError(fmt.Sprintf("malformed record: %v", err))
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	return r, nil
}
