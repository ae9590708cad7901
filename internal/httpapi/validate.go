package httpapi

import (
	"fmt"

	"github.com/studiominds/expertpanel/internal/analysis"
)

const (
	minContentLen        = 10
	maxContentLen        = 50000
	maxOptionalFieldLen  = 5000
	maxTargetAudienceLen = 2000
	maxFiles             = 50
)

// validateSubmission enforces the submission contract before any expert
// sees the input. Returns one message per violated rule.
func validateSubmission(sub analysis.ProjectSubmission) []string {
	var errs []string

	if !sub.Type.IsValid() {
		errs = append(errs, fmt.Sprintf("type: must be one of %v", analysis.ValidProjectTypes))
	}
	if len(sub.Content) < minContentLen {
		errs = append(errs, fmt.Sprintf("content: must be at least %d characters", minContentLen))
	}
	if len(sub.Content) > maxContentLen {
		errs = append(errs, "content: too large")
	}
	if len(sub.Requirements) > maxOptionalFieldLen {
		errs = append(errs, "requirements: too large")
	}
	if len(sub.Context) > maxOptionalFieldLen {
		errs = append(errs, "context: too large")
	}
	if len(sub.TargetAudience) > maxTargetAudienceLen {
		errs = append(errs, "targetAudience: too large")
	}
	if len(sub.Files) > maxFiles {
		errs = append(errs, "files: too many files")
	}

	return errs
}
