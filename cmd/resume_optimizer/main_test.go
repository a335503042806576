package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// getBinaryPath returns the path to the resume_optimizer binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_optimizer"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_optimizer ./cmd/resume_optimizer'", binaryPath)
	}

	return binaryPath
}

func TestScoreCommand_NoJobInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	resumePath := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(resumePath, []byte("Go engineer"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail without a job input")
	assert.Contains(t, string(output), "--job or --job-url")
}

func TestScoreCommand_Deterministic(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	jobPath := filepath.Join(dir, "job.txt")
	if err := os.WriteFile(resumePath, []byte("Go engineer with Docker"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jobPath, []byte("Go Docker Kubernetes engineer"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command(binaryPath, "score", "--resume", resumePath, "--job", jobPath)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "75.00%")
	assert.Contains(t, string(output), "kubernetes")
}

func TestOptimizeCommand_MissingResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "optimize", "--job-url", "https://example.com/job")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail without a resume")
	assert.Contains(t, string(output), "--resume is required")
}

func TestOptimizeCommand_MutuallyExclusiveJobInputs(t *testing.T) {
	binaryPath := getBinaryPath(t)

	resumePath := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(resumePath, []byte("Go engineer"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command(binaryPath, "optimize",
		"--resume", resumePath,
		"--job", "job.txt",
		"--job-url", "https://example.com/job")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}
