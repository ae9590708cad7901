// Package analysis defines the data model shared between the expert panel,
// the orchestrator, and the hosting layers. Every type here is created fresh
// for a single orchestration run and is never mutated after construction; the
// JSON field names are the wire contract for the HTTP and MCP surfaces.
package analysis

import "time"

// --- Enums ---

// ProjectType categorizes an incoming submission.
type ProjectType string

const (
	ProjectWebsite   ProjectType = "website"
	ProjectBrand     ProjectType = "brand"
	ProjectMarketing ProjectType = "marketing"
	ProjectApp       ProjectType = "app"
	ProjectDesign    ProjectType = "design"
	ProjectCopy      ProjectType = "copy"
	ProjectOther     ProjectType = "other"
)

// ValidProjectTypes lists every accepted submission type.
var ValidProjectTypes = []ProjectType{
	ProjectWebsite,
	ProjectBrand,
	ProjectMarketing,
	ProjectApp,
	ProjectDesign,
	ProjectCopy,
	ProjectOther,
}

// IsValid reports whether t is one of the accepted project types.
func (t ProjectType) IsValid() bool {
	for _, v := range ValidProjectTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Priority is the fixed total order over recommendation urgency.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank returns the sort rank of a priority: critical=0, high=1, medium=2,
// low=3. Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// IsValid reports whether p is one of the four enumerated levels.
func (p Priority) IsValid() bool {
	return p.Rank() < 4
}

// Confidence is the closed ordinal scale for both an expert's derived
// confidence and its self-assessed analysis complexity.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// --- Core types ---

// ProjectSubmission is the caller-owned input to an orchestration run.
// It is passed read-only to every expert.
type ProjectSubmission struct {
	Type           ProjectType `json:"type"`
	Content        string      `json:"content"`
	Files          []string    `json:"files,omitempty"`
	Requirements   string      `json:"requirements,omitempty"`
	Context        string      `json:"context,omitempty"`
	TargetAudience string      `json:"targetAudience,omitempty"`
}

// Recommendation is a single prioritized suggestion from one expert.
// Category equality (case-sensitive) is the sole grouping key for
// cross-expert conflict detection.
type Recommendation struct {
	Priority       Priority `json:"priority"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Reasoning      string   `json:"reasoning"`
	Implementation string   `json:"implementation"`
	Impact         string   `json:"impact"`
}

// ExpertAnalysis is the output of one expert for one submission. The first
// insight is the headline. Never mutated after construction.
type ExpertAnalysis struct {
	ExpertName         string           `json:"expertName"`
	ExpertRole         string           `json:"expertRole"`
	Assessment         string           `json:"assessment"`
	Insights           []string         `json:"insights"`
	Recommendations    []Recommendation `json:"recommendations"`
	CollaborativeNotes []string         `json:"collaborativeNotes"`
	ConfidenceLevel    Confidence       `json:"confidenceLevel"`
	UncertaintyAreas   []string         `json:"uncertaintyAreas"`
	Timestamp          time.Time        `json:"timestamp"`
}

// ProjectSynthesis is the cross-expert merge of all analyses in a run.
type ProjectSynthesis struct {
	Summary                    string           `json:"summary"`
	KeyFindings                []string         `json:"keyFindings"`
	PrioritizedRecommendations []Recommendation `json:"prioritizedRecommendations"`
	ConsensusAreas             []string         `json:"consensusAreas"`
	RequiresUserDecision       []string         `json:"requiresUserDecision"`
}

// Perspective is one expert's position within a conflict.
type Perspective struct {
	ExpertName string `json:"expertName"`
	Position   string `json:"position"`
	Reasoning  string `json:"reasoning"`
}

// ExpertConflict records materially different recommendations sharing one
// category. ConflictingExperts may contain duplicate names when a single
// expert contributed more than one recommendation to the category.
type ExpertConflict struct {
	Topic              string        `json:"topic"`
	ConflictingExperts []string      `json:"conflictingExperts"`
	Perspectives       []Perspective `json:"perspectives"`
	ResolutionRequired bool          `json:"resolutionRequired"`
}

// OrchestrationResult is the full envelope returned for one run. The analysis
// at index 0 is always the mandatory context expert's.
type OrchestrationResult struct {
	ProjectID     string           `json:"projectId"`
	ActiveExperts []string         `json:"activeExperts"`
	Analyses      []ExpertAnalysis `json:"analyses"`
	Synthesis     ProjectSynthesis `json:"synthesis"`
	Conflicts     []ExpertConflict `json:"conflicts"`
	NextSteps     []string         `json:"nextSteps"`
}
