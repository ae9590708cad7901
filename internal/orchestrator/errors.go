package orchestrator

import "fmt"

// InvalidCommandError reports a manual selector token that matched no
// catalogue entry. Message carries the nearest-command suggestion and is
// meant to be shown to the end user verbatim.
type InvalidCommandError struct {
	Command    string
	Suggestion string
	Message    string
}

func (e *InvalidCommandError) Error() string {
	return e.Message
}

// ExpertNotFoundError reports a roster or selector entry that resolved to no
// registered expert.
type ExpertNotFoundError struct {
	Name string
}

func (e *ExpertNotFoundError) Error() string {
	return fmt.Sprintf("expert %s not found or not implemented yet", e.Name)
}

// AnalysisError wraps a failure from a single expert's Analyze call.
type AnalysisError struct {
	Expert string
	Err    error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyze with %s: %v", e.Expert, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
