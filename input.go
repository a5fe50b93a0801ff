package docrank

import (
	"encoding/json"
	"fmt"
	"os"
)

// Input is the analysis request: the document collection, the persona, and
// the job to be done.
type Input struct {
	Documents []DocumentRef `json:"documents"`
	Persona   Persona       `json:"persona"`
	Job       Job           `json:"job_to_be_done"`
}

// DocumentRef names one PDF in the collection. Title is optional and
// defaults to the filename.
type DocumentRef struct {
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
}

// Persona describes who the analysis is for.
type Persona struct {
	Role string `json:"role"`
}

// Job describes what the persona needs to accomplish.
type Job struct {
	Task string `json:"task"`
}

// LoadInput reads and validates an analysis request from a JSON file.
func LoadInput(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing input: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}

// Validate checks the request for the required fields. Validation failure
// is the one error that halts a run before any document work begins.
func (in *Input) Validate() error {
	if len(in.Documents) == 0 {
		return fmt.Errorf("documents must be a non-empty list")
	}
	for i, doc := range in.Documents {
		if doc.Filename == "" {
			return fmt.Errorf("document %d must have a filename", i)
		}
	}
	if in.Persona.Role == "" {
		return fmt.Errorf("persona must have a role")
	}
	if in.Job.Task == "" {
		return fmt.Errorf("job to be done must have a task")
	}
	return nil
}
