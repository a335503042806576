package rendering

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// pdflatexTimeout bounds a single compilation run.
const pdflatexTimeout = 30 * time.Second

// CompilePDF writes the LaTeX source to outputDir and compiles it with
// pdflatex. Returns the path of the produced PDF. Compilation is
// deterministic; failures are not retried.
func CompilePDF(ctx context.Context, texSource, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", &RenderError{Format: "pdf", Message: "failed to create output directory", Cause: err}
	}

	texPath := filepath.Join(outputDir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(texSource), 0o644); err != nil {
		return "", &RenderError{Format: "pdf", Message: "failed to write tex file", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, pdflatexTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "pdflatex",
		"-interaction=nonstopmode",
		"-halt-on-error",
		fmt.Sprintf("-output-directory=%s", outputDir),
		texPath,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", &RenderError{
			Format:  "pdf",
			Message: fmt.Sprintf("pdflatex failed: %s", tail(string(output), 500)),
			Cause:   err,
		}
	}

	pdfPath := filepath.Join(outputDir, "resume.pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &RenderError{Format: "pdf", Message: "pdflatex produced no output", Cause: err}
	}
	return pdfPath, nil
}

// tail returns the last n bytes of s; pdflatex logs are long and only the
// end carries the error.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
