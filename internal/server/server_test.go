package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	jsonResponses map[string]string // matched by substring of the prompt
	textResponse  string
	err           error
}

func (f *fakeClient) GenerateText(_ context.Context, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.textResponse, nil
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	for marker, response := range f.jsonResponses {
		if strings.Contains(prompt, marker) {
			return response, nil
		}
	}
	return "", nil
}

func (f *fakeClient) Close() error { return nil }

const enhanceResponse = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"summary": "Engineer using Go and Docker and Kubernetes.",
	"experience": [{"title": "Engineer", "company": "Acme", "dates": "2020", "bullets": ["Shipped Docker images"]}],
	"keywords_added": ["docker", "kubernetes"],
	"keywords_skipped": []
}`

func newTestServer(t *testing.T, client *fakeClient) *Server {
	t.Helper()
	return New(Config{
		Port:      0,
		APIKey:    "test-key",
		OutputDir: t.TempDir(),
		Client:    client,
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func doOptimize(t *testing.T, handler http.Handler, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/optimize", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &fakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestScore(t *testing.T) {
	srv := newTestServer(t, &fakeClient{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/score", ScoreRequest{
		ResumeText: "Go engineer",
		JobText:    "Go Docker engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 66.67, resp.Score, 0.01)
	assert.Equal(t, []string{"docker"}, resp.MissingKeywords)
	assert.Nil(t, resp.AI)
}

func TestScore_WithAI(t *testing.T) {
	srv := newTestServer(t, &fakeClient{jsonResponses: map[string]string{
		"Evaluate the match": `{"score": 81, "missing": ["docker"]}`,
	}})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/score", ScoreRequest{
		ResumeText: "Go engineer",
		JobText:    "Go Docker engineer",
		UseAI:      true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.AI)
	assert.True(t, resp.AI.Available)
	assert.Equal(t, 81.0, resp.AI.Score)
}

func TestScore_MissingJobText(t *testing.T) {
	srv := newTestServer(t, &fakeClient{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/score", ScoreRequest{ResumeText: "r"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job_text")
}

func TestOptimize_EndToEnd(t *testing.T) {
	srv := newTestServer(t, &fakeClient{jsonResponses: map[string]string{
		"expert Resume Optimizer": enhanceResponse,
	}})

	rec := doOptimize(t, srv.Handler(), map[string]string{
		"resume_text": "Go engineer building services",
		"job_text":    "Go Docker Kubernetes engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp OptimizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, 100.0, resp.After.Percentage)
	assert.Equal(t, []string{"docker", "kubernetes"}, resp.Summary.KeywordsAdded)
	assert.Contains(t, resp.Artifacts, ArtifactSummary)
	assert.Contains(t, resp.Artifacts, ArtifactResume)

	// The stored summary artifact is retrievable afterwards.
	req := httptest.NewRequest(http.MethodGet, resp.Artifacts[ArtifactSummary], nil)
	artifactRec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(artifactRec, req)
	require.Equal(t, http.StatusOK, artifactRec.Code)
	assert.Contains(t, artifactRec.Body.String(), "score_after")

	// So is the enhanced resume record.
	req = httptest.NewRequest(http.MethodGet, resp.Artifacts[ArtifactResume], nil)
	artifactRec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(artifactRec, req)
	require.Equal(t, http.StatusOK, artifactRec.Code)
	assert.Contains(t, artifactRec.Body.String(), "Jane Doe")
}

func TestOptimize_MissingInputs(t *testing.T) {
	srv := newTestServer(t, &fakeClient{})

	rec := doOptimize(t, srv.Handler(), map[string]string{"job_text": "job"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resume")

	rec = doOptimize(t, srv.Handler(), map[string]string{"resume_text": "resume"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job_text or job_url")
}

func TestChat(t *testing.T) {
	srv := newTestServer(t, &fakeClient{textResponse: "Lead with impact."})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/chat", ChatRequest{
		Query:      "How should I open my summary?",
		ResumeText: "resume",
		JobText:    "job",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Lead with impact.", resp.Reply)
}

func TestChat_MissingQuery(t *testing.T) {
	srv := newTestServer(t, &fakeClient{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/chat", ChatRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "query")
}

func TestArtifact_UnknownRun(t *testing.T) {
	srv := newTestServer(t, &fakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/artifacts/00000000-0000-0000-0000-000000000001/summary", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArtifact_InvalidRunID(t *testing.T) {
	srv := newTestServer(t, &fakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/artifacts/not-a-uuid/summary", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
