package server

import (
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/pipeline"
)

// Artifact kinds addressable via GET /artifacts/{id}/{kind}.
const (
	ArtifactSummary = "summary"
	ArtifactResume  = "resume"
	ArtifactTex     = "tex"
	ArtifactPDF     = "pdf"
	ArtifactDocx    = "docx"
)

// ArtifactStore keeps completed run outcomes in memory, keyed by run ID.
// Nothing is persisted; a restart forgets all runs.
type ArtifactStore struct {
	mu   sync.RWMutex
	runs map[uuid.UUID]*pipeline.Outcome
}

// NewArtifactStore creates an empty store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{runs: make(map[uuid.UUID]*pipeline.Outcome)}
}

// Put records a completed run outcome.
func (s *ArtifactStore) Put(outcome *pipeline.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[outcome.RunID] = outcome
}

// Get returns the outcome for a run, or an ErrRunNotFound.
func (s *ArtifactStore) Get(runID uuid.UUID) (*pipeline.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	outcome, ok := s.runs[runID]
	if !ok {
		return nil, &ErrRunNotFound{RunID: runID}
	}
	return outcome, nil
}

// Artifact resolves one artifact of a run. File-backed kinds return the file
// contents; summary and resume kinds are served from the outcome itself, so
// the caller must JSON-encode them.
func (s *ArtifactStore) Artifact(runID uuid.UUID, kind string) (content []byte, contentType string, inline any, err error) {
	outcome, err := s.Get(runID)
	if err != nil {
		return nil, "", nil, err
	}

	switch kind {
	case ArtifactSummary:
		return nil, "", outcome.Summary, nil
	case ArtifactResume:
		return nil, "", outcome.Enhanced, nil
	case ArtifactTex:
		return readArtifactFile(runID, kind, outcome.TexPath, "application/x-tex")
	case ArtifactPDF:
		return readArtifactFile(runID, kind, outcome.PDFPath, "application/pdf")
	case ArtifactDocx:
		return readArtifactFile(runID, kind, outcome.DocxPath,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	default:
		return nil, "", nil, &ErrArtifactNotFound{RunID: runID, Kind: kind}
	}
}

func readArtifactFile(runID uuid.UUID, kind, path, contentType string) ([]byte, string, any, error) {
	if path == "" {
		return nil, "", nil, &ErrArtifactNotFound{RunID: runID, Kind: kind}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", nil, &ErrArtifactNotFound{RunID: runID, Kind: kind}
	}
	return data, contentType, nil, nil
}
