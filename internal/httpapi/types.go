package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/studiominds/expertpanel/internal/analysis"
	"github.com/studiominds/expertpanel/internal/orchestrator"
)

// analyzeRequest is the POST /api/analyze body: a submission plus optional
// manual expert selectors.
type analyzeRequest struct {
	analysis.ProjectSubmission
	ManualCommands []string `json:"manualCommands,omitempty"`
}

// analyzeResponse is the success envelope for POST /api/analyze.
type analyzeResponse struct {
	Success      bool                          `json:"success"`
	AnalysisTime int64                         `json:"analysisTime"`
	Result       *analysis.OrchestrationResult `json:"result"`
	Metadata     analyzeMetadata               `json:"metadata"`
}

type analyzeMetadata struct {
	Timestamp            time.Time `json:"timestamp"`
	ExpertsActivated     int       `json:"expertsActivated"`
	TotalRecommendations int       `json:"totalRecommendations"`
	ConflictsDetected    int       `json:"conflictsDetected"`
}

// consultResponse is the success envelope for POST /api/consult/{expertCommand}.
type consultResponse struct {
	Success          bool                    `json:"success"`
	ConsultationTime int64                   `json:"consultationTime"`
	Result           analysis.ExpertAnalysis `json:"result"`
	Metadata         consultMetadata         `json:"metadata"`
}

type consultMetadata struct {
	Timestamp            time.Time `json:"timestamp"`
	ExpertConsulted      string    `json:"expertConsulted"`
	RecommendationsCount int       `json:"recommendationsCount"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Experts   int       `json:"experts"`
}

type infoResponse struct {
	Name      string      `json:"name"`
	Version   string      `json:"version"`
	Experts   infoExperts `json:"experts"`
	Endpoints []string    `json:"endpoints"`
}

type infoExperts struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

type expertsResponse struct {
	Experts       []orchestrator.ExpertInfo `json:"experts"`
	SlashCommands []slashCommandInfo        `json:"slashCommands"`
}

type slashCommandInfo struct {
	Command     string `json:"command"`
	Expert      string `json:"expert"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// notFoundResponse is served for paths outside the route table.
type notFoundResponse struct {
	Error              string   `json:"error"`
	Path               string   `json:"path"`
	AvailableEndpoints []string `json:"availableEndpoints"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, details ...string) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}
