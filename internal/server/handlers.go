package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/chat"
	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/pipeline"
	"github.com/jonathan/resume-optimizer/internal/scoring"
)

// maxUploadBytes bounds multipart resume uploads.
const maxUploadBytes = 10 << 20

// ScoreRequest represents the request body for /score
type ScoreRequest struct {
	ResumeText string `json:"resume_text"`
	JobText    string `json:"job_text"`
	UseAI      bool   `json:"use_ai,omitempty"`
}

// ScoreResponse represents the response for /score
type ScoreResponse struct {
	Score           float64           `json:"score"`
	MissingKeywords []string          `json:"missing_keywords"`
	AI              *scoring.AIResult `json:"ai,omitempty"`
}

// OptimizeResponse represents the response for /optimize
type OptimizeResponse struct {
	RunID     string            `json:"run_id"`
	Before    scoring.Result    `json:"before"`
	After     scoring.Result    `json:"after"`
	AI        *scoring.AIResult `json:"ai,omitempty"`
	Summary   scoring.Summary   `json:"summary"`
	Artifacts map[string]string `json:"artifacts"`
}

// ChatRequest represents the request body for /chat
type ChatRequest struct {
	Query      string `json:"query"`
	ResumeText string `json:"resume_text,omitempty"`
	JobText    string `json:"job_text,omitempty"`
}

// ChatResponse represents the response for /chat
type ChatResponse struct {
	Reply string `json:"reply"`
}

// handleScore scores a resume against a job description without enhancing it
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.JobText == "" {
		s.errorFromErr(w, &ErrValidation{Field: "job_text", Message: "is required"})
		return
	}

	result := scoring.Score(req.ResumeText, req.JobText)
	resp := ScoreResponse{Score: result.Percentage, MissingKeywords: result.Missing}

	if req.UseAI {
		client, cleanup, err := s.resolveClient(r)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer cleanup()

		ai := scoring.NewAIScorer(client).Score(r.Context(), req.ResumeText, req.JobText)
		resp.AI = &ai
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleOptimize runs the full optimization pipeline synchronously
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	opts, err := s.optimizeOptions(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	outcome, err := pipeline.Run(r.Context(), *opts)
	if err != nil {
		log.Printf("Optimization run failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.artifacts.Put(outcome)

	s.jsonResponse(w, http.StatusOK, s.optimizeResponse(outcome))
}

// handleOptimizeStream runs the pipeline and streams progress via SSE
func (s *Server) handleOptimizeStream(w http.ResponseWriter, r *http.Request) {
	opts, err := s.optimizeOptions(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	opts.OnProgress = func(event pipeline.ProgressEvent) {
		if err := sse.WriteProgress(event); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	}

	outcome, err := pipeline.Run(r.Context(), *opts)
	if err != nil {
		log.Printf("Optimization run failed: %v", err)
		sse.WriteError(err.Error())
		return
	}
	s.artifacts.Put(outcome)

	sse.WriteOutcome(outcome)
}

// handleChat answers a coaching question in the context of a resume and job
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		s.errorFromErr(w, &ErrValidation{Field: "query", Message: "is required"})
		return
	}

	client, cleanup, err := s.resolveClient(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cleanup()

	reply, err := chat.NewCoach(client).Respond(r.Context(), req.Query, req.ResumeText, req.JobText)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ChatResponse{Reply: reply})
}

// handleArtifact serves one artifact of a completed run
func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "id", Message: "invalid run ID format"})
		return
	}
	kind := r.PathValue("kind")

	content, contentType, inline, err := s.artifacts.Artifact(runID, kind)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	if inline != nil {
		s.jsonResponse(w, http.StatusOK, inline)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		log.Printf("Error writing artifact response: %v", err)
	}
}

// optimizeOptions parses the multipart /optimize request into pipeline options.
// The resume arrives either as an uploaded file ("resume") or as an inline
// text field ("resume_text"); the job as "job_text" or "job_url".
func (s *Server) optimizeOptions(r *http.Request) (*pipeline.Options, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "expected multipart form: " + err.Error()}
	}

	opts := &pipeline.Options{
		ResumeText: r.FormValue("resume_text"),
		JobText:    r.FormValue("job_text"),
		JobURL:     r.FormValue("job_url"),
		UseAIScore: r.FormValue("use_ai_score") == "true",
		UseBrowser: r.FormValue("use_browser") == "true",
		RenderDocs: r.FormValue("render") == "true",
		OutputDir:  s.outputDir,
		APIKey:     s.apiKey,
		Client:     s.client,
	}

	if file, header, err := r.FormFile("resume"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, &ErrValidation{Field: "resume", Message: "failed to read upload: " + err.Error()}
		}
		text, err := extraction.FromBytes(header.Filename, data)
		if err != nil {
			return nil, &ErrValidation{Field: "resume", Message: err.Error()}
		}
		opts.ResumeText = text
	}

	if opts.ResumeText == "" {
		return nil, &ErrValidation{Field: "resume", Message: "resume file or resume_text is required"}
	}
	if opts.JobText == "" && opts.JobURL == "" {
		return nil, &ErrValidation{Field: "job", Message: "job_text or job_url is required"}
	}

	if opts.RenderDocs {
		// Isolate artifacts per run so concurrent requests cannot clobber
		// each other's output files.
		opts.OutputDir = filepath.Join(s.outputDir, uuid.NewString())
	}

	return opts, nil
}

// optimizeResponse builds the response payload with artifact links
func (s *Server) optimizeResponse(outcome *pipeline.Outcome) OptimizeResponse {
	resp := OptimizeResponse{
		RunID:   outcome.RunID.String(),
		Before:  outcome.Before,
		After:   outcome.After,
		Summary: outcome.Summary,
		Artifacts: map[string]string{
			ArtifactSummary: artifactURL(outcome.RunID, ArtifactSummary),
			ArtifactResume:  artifactURL(outcome.RunID, ArtifactResume),
		},
	}
	if outcome.AI.Available {
		ai := outcome.AI
		resp.AI = &ai
	}
	if outcome.TexPath != "" {
		resp.Artifacts[ArtifactTex] = artifactURL(outcome.RunID, ArtifactTex)
	}
	if outcome.PDFPath != "" {
		resp.Artifacts[ArtifactPDF] = artifactURL(outcome.RunID, ArtifactPDF)
	}
	if outcome.DocxPath != "" {
		resp.Artifacts[ArtifactDocx] = artifactURL(outcome.RunID, ArtifactDocx)
	}
	return resp
}

func artifactURL(runID uuid.UUID, kind string) string {
	return fmt.Sprintf("/artifacts/%s/%s", runID, kind)
}

// resolveClient returns the injected client or creates a Gemini one for the
// duration of a single request.
func (s *Server) resolveClient(r *http.Request) (llm.Client, func(), error) {
	if s.client != nil {
		return s.client, func() {}, nil
	}
	client, err := llm.NewClient(r.Context(), llm.DefaultConfig(), s.apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create model client: %w", err)
	}
	return client, func() { _ = client.Close() }, nil
}
