package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/studiominds/expertpanel/internal/orchestrator"
)

// Version is the API version reported by the discovery endpoints.
const Version = "1.0.0"

var endpointList = []string{
	"GET /health - Health check",
	"GET /api/info - API information",
	"GET /api/experts - List available experts",
	"POST /api/analyze - Analyze project with auto-expert selection",
	"POST /api/consult/{expertCommand} - Consult specific expert",
	"GET /api/docs - API documentation",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Experts:   len(s.orch.AvailableExperts()),
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	experts := s.orch.AvailableExperts()
	available := 0
	for _, e := range experts {
		if e.Implemented {
			available++
		}
	}

	writeJSON(w, http.StatusOK, infoResponse{
		Name:    "Expert Panel API",
		Version: Version,
		Experts: infoExperts{
			Total:     len(experts),
			Available: available,
		},
		Endpoints: endpointList,
	})
}

func (s *Server) handleExperts(w http.ResponseWriter, r *http.Request) {
	experts := s.orch.AvailableExperts()

	commands := make([]slashCommandInfo, 0, len(experts))
	for _, entry := range orchestrator.AvailableCommands() {
		commands = append(commands, slashCommandInfo{
			Command:     entry.Command,
			Expert:      entry.ExpertName,
			Description: entry.Description,
			Available:   hasExpert(experts, entry.ExpertName),
		})
	}

	writeJSON(w, http.StatusOK, expertsResponse{
		Experts:       experts,
		SlashCommands: commands,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if errs := validateSubmission(req.ProjectSubmission); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "Invalid project submission", errs...)
		return
	}

	s.logger.Info("starting project analysis",
		zap.String("projectType", string(req.Type)),
		zap.Int("contentLength", len(req.Content)),
		zap.Bool("hasTargetAudience", req.TargetAudience != ""))

	result, err := s.orch.ProcessProject(r.Context(), req.ProjectSubmission, req.ManualCommands)
	if err != nil {
		s.logger.Error("analysis failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Analysis failed", err.Error())
		return
	}

	analysisTime := time.Since(start).Milliseconds()
	totalRecs := 0
	for _, a := range result.Analyses {
		totalRecs += len(a.Recommendations)
	}

	s.logger.Info("project analysis completed",
		zap.Int64("analysisTime", analysisTime),
		zap.Int("expertsActivated", len(result.ActiveExperts)),
		zap.Int("recommendationsCount", totalRecs),
		zap.Int("conflictsDetected", len(result.Conflicts)))

	writeJSON(w, http.StatusOK, analyzeResponse{
		Success:      true,
		AnalysisTime: analysisTime,
		Result:       result,
		Metadata: analyzeMetadata{
			Timestamp:            time.Now().UTC(),
			ExpertsActivated:     len(result.ActiveExperts),
			TotalRecommendations: totalRecs,
			ConflictsDetected:    len(result.Conflicts),
		},
	})
}

func (s *Server) handleConsult(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	command := r.PathValue("expertCommand")
	if !strings.HasPrefix(command, "@") {
		command = "@" + command
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if errs := validateSubmission(req.ProjectSubmission); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "Invalid project submission", errs...)
		return
	}

	s.logger.Info("starting expert consultation",
		zap.String("command", command),
		zap.String("projectType", string(req.Type)))

	result, err := s.orch.ProcessSlashCommand(r.Context(), command, req.ProjectSubmission, nil)
	if err != nil {
		var invalidCmd *orchestrator.InvalidCommandError
		var notFound *orchestrator.ExpertNotFoundError
		switch {
		case errors.As(err, &invalidCmd):
			writeError(w, http.StatusBadRequest, invalidCmd.Message)
		case errors.As(err, &notFound):
			writeError(w, http.StatusNotFound, notFound.Error())
		default:
			s.logger.Error("consultation failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Consultation failed", err.Error())
		}
		return
	}

	consultationTime := time.Since(start).Milliseconds()

	s.logger.Info("expert consultation completed",
		zap.Int64("consultationTime", consultationTime),
		zap.String("expert", result.ExpertName),
		zap.Int("recommendationsCount", len(result.Recommendations)))

	writeJSON(w, http.StatusOK, consultResponse{
		Success:          true,
		ConsultationTime: consultationTime,
		Result:           result,
		Metadata: consultMetadata{
			Timestamp:            time.Now().UTC(),
			ExpertConsulted:      result.ExpertName,
			RecommendationsCount: len(result.Recommendations),
		},
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, notFoundResponse{
		Error:              "Endpoint not found",
		Path:               r.URL.Path,
		AvailableEndpoints: endpointList,
	})
}

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write(apiDocs)
}

func hasExpert(experts []orchestrator.ExpertInfo, name string) bool {
	for _, e := range experts {
		if e.Name == name && e.Implemented {
			return true
		}
	}
	return false
}
