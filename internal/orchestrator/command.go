package orchestrator

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// CommandEntry is one row of the static selector catalogue.
type CommandEntry struct {
	Command     string `json:"command"`
	ExpertName  string `json:"expertName"`
	Description string `json:"description"`
}

// ParsedCommand is the result of parsing one selector token.
type ParsedCommand struct {
	Command    string `json:"command"`
	ExpertName string `json:"expertName"`
	IsValid    bool   `json:"isValid"`
	Message    string `json:"message,omitempty"`
}

// commandCatalogue is the closed set of valid selectors. Populated once and
// read-only thereafter; order is the tie-break order for typo suggestions.
var commandCatalogue = []CommandEntry{
	{"@projectContextSpecialist", "Alex Chen", "Central orchestrator for project coordination and expert team management"},
	{"@designTheorySpecialist", "Dr. Maya Rodriguez", "Visual design, typography, layout, and composition analysis"},
	{"@colorTheorist", "Dr. Zara Okafor", "Color psychology, accessibility, and cultural color associations"},
	{"@copywritingStrategist", "Marcus Thompson", "Messaging strategy, brand voice, and conversion optimization"},
	{"@artHistoryAnalyst", "Dr. Elena Vasquez", "Cultural context, historical references, and appropriation prevention"},
	{"@brandStrategyAnalyst", "Sarah Kim", "Competitive positioning, brand architecture, and strategic differentiation"},
	{"@uxUsabilitySpecialist", "David Chen", "User experience optimization, conversion improvement, and mobile UX"},
	{"@technicalImplementationAdvisor", "Jordan Rivera", "Technical feasibility, performance optimization, and integration planning"},
	{"@culturalContextExpert", "Dr. Amara Osei", "Global sensitivity, inclusive design, and cultural adaptation"},
	{"@marketResearchAnalyst", "Lisa Park", "Audience behavior, competitive intelligence, and market validation"},
	{"@accessibilityExpert", "Dr. Alex Johnson", "WCAG compliance, inclusive design, and assistive technology optimization"},
	{"@performanceAnalyst", "Maria Santos", "Core Web Vitals, site speed optimization, and technical SEO"},
}

// ParseCommand parses a single selector token. It returns nil when the token
// does not carry the selector sigil at all; a non-nil result with
// IsValid=false means the token looked like a selector but matched nothing,
// and Message carries a nearest-command suggestion.
func ParseCommand(input string) *ParsedCommand {
	token := strings.TrimSpace(input)
	if !strings.HasPrefix(token, "@") {
		return nil
	}

	lower := strings.ToLower(token)
	for _, entry := range commandCatalogue {
		if strings.HasPrefix(lower, strings.ToLower(entry.Command)) {
			return &ParsedCommand{
				Command:    entry.Command,
				ExpertName: entry.ExpertName,
				IsValid:    true,
				Message:    "Activating " + entry.ExpertName,
			}
		}
	}

	suggestion := closestCommand(lower)
	return &ParsedCommand{
		IsValid: false,
		Message: fmt.Sprintf("Invalid command: %s. Did you mean %s?", token, suggestion),
	}
}

// ExtractCommandsFromText tokenizes text on whitespace and parses every token,
// keeping selector tokens (valid or not) in order of appearance.
func ExtractCommandsFromText(text string) []ParsedCommand {
	var commands []ParsedCommand
	for _, word := range strings.Fields(text) {
		if parsed := ParseCommand(word); parsed != nil {
			commands = append(commands, *parsed)
		}
	}
	return commands
}

// AvailableCommands returns a copy of the selector catalogue.
func AvailableCommands() []CommandEntry {
	out := make([]CommandEntry, len(commandCatalogue))
	copy(out, commandCatalogue)
	return out
}

// closestCommand returns the catalogue command with the smallest edit
// distance to the input. Ties go to the earlier catalogue entry.
func closestCommand(input string) string {
	closest := commandCatalogue[0].Command
	best := -1
	for _, entry := range commandCatalogue {
		d := levenshtein.ComputeDistance(input, strings.ToLower(entry.Command))
		if best < 0 || d < best {
			best = d
			closest = entry.Command
		}
	}
	return closest
}
