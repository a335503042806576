// Package pipeline provides the high-level orchestration for a resume
// optimization run: extract, score, enhance, rescore, reconcile, render.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/enhance"
	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/fetch"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/rendering"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step names emitted in progress events.
const (
	StepExtraction    = "extraction"
	StepJobPosting    = "job_posting"
	StepBaselineScore = "baseline_score"
	StepAIScore       = "ai_score"
	StepEnhancement   = "enhancement"
	StepRescore       = "rescore"
	StepReconcile     = "reconcile"
	StepRender        = "render"
)

// Options holds configuration for running the pipeline.
// Exactly one of ResumePath/ResumeText and one of JobPath/JobText/JobURL
// must be set.
type Options struct {
	ResumePath   string
	ResumeText   string
	JobPath      string
	JobText      string
	JobURL       string
	TemplatePath string // DOCX template; empty disables DOCX rendering
	OutputDir    string
	APIKey       string
	UseAIScore   bool
	UseBrowser   bool
	RenderDocs   bool // render LaTeX/PDF/DOCX artifacts
	Verbose      bool
	OnProgress   ProgressCallback

	// Client overrides the Gemini client, used by tests.
	Client llm.Client
}

// Outcome is the immutable result of a completed run. Every field is set
// before Run returns; callers must not mutate slices reachable from it.
type Outcome struct {
	RunID        uuid.UUID             `json:"run_id"`
	ResumeText   string                `json:"-"`
	JobText      string                `json:"-"`
	Before       scoring.Result        `json:"before"`
	AI           scoring.AIResult      `json:"ai,omitempty"`
	Enhanced     *types.EnhancedResume `json:"enhanced"`
	EnhancedText string                `json:"-"`
	After        scoring.Result        `json:"after"`
	Summary      scoring.Summary       `json:"summary"`
	TexPath      string                `json:"tex_path,omitempty"`
	PDFPath      string                `json:"pdf_path,omitempty"`
	DocxPath     string                `json:"docx_path,omitempty"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, runID uuid.UUID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
			Content: content,
		})
	}
}

func (opts Options) validate() error {
	if opts.ResumePath == "" && opts.ResumeText == "" {
		return fmt.Errorf("pipeline: resume input is required")
	}
	if opts.JobPath == "" && opts.JobText == "" && opts.JobURL == "" {
		return fmt.Errorf("pipeline: job input is required")
	}
	return nil
}

// Run orchestrates the full optimization pipeline and returns its Outcome.
// The keyword rescore and reconciliation always run; AI scoring and document
// rendering are opt-in. An enhancement failure aborts the run.
func Run(ctx context.Context, opts Options) (*Outcome, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	printer := observability.NewPrinter(os.Stdout)

	// Step 1: extract resume text
	resumeText, err := resolveResumeText(opts)
	if err != nil {
		return nil, fmt.Errorf("resume extraction failed: %w", err)
	}
	emitProgress(&opts, runID, StepExtraction, "Extracted resume text", nil)

	// Step 2: resolve job description (file, inline text, or URL)
	jobText, err := resolveJobText(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("job ingestion failed: %w", err)
	}
	emitProgress(&opts, runID, StepJobPosting, "Resolved job description", nil)

	// Step 3: baseline keyword score
	before := scoring.Score(resumeText, jobText)
	if opts.Verbose {
		printer.PrintScore("BASELINE SCORE", before)
	}
	emitProgress(&opts, runID, StepBaselineScore,
		fmt.Sprintf("Baseline score %.2f%% with %d missing keywords", before.Percentage, len(before.Missing)), before)

	client, err := resolveClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	if opts.Client == nil {
		defer client.Close()
	}

	// Steps 4-5 run in parallel: the AI score is advisory and independent
	// of the enhancement call.
	var (
		aiResult scoring.AIResult
		enhanced *types.EnhancedResume
		mu       sync.Mutex
	)

	g, gCtx := errgroup.WithContext(ctx)

	if opts.UseAIScore {
		scorer := scoring.NewAIScorer(client)
		g.Go(func() error {
			result := scorer.Score(gCtx, resumeText, jobText)
			mu.Lock()
			aiResult = result
			mu.Unlock()
			return nil
		})
	}

	g.Go(func() error {
		result, err := enhance.New(client).Enhance(gCtx, resumeText, jobText, before.Missing)
		if err != nil {
			return fmt.Errorf("enhancement failed: %w", err)
		}
		mu.Lock()
		enhanced = result
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.UseAIScore {
		if opts.Verbose {
			printer.PrintAIScore(aiResult)
		}
		emitProgress(&opts, runID, StepAIScore, "AI scoring completed", aiResult)
	}
	emitProgress(&opts, runID, StepEnhancement,
		fmt.Sprintf("Enhanced resume with %d keywords added", len(enhanced.KeywordsAdded)), nil)

	// Step 6: rescore the flattened enhanced resume with the same
	// deterministic scorer used for the baseline.
	enhancedText := enhanced.Flatten()
	after := scoring.Score(enhancedText, jobText)
	if opts.Verbose {
		printer.PrintScore("ENHANCED SCORE", after)
	}
	emitProgress(&opts, runID, StepRescore,
		fmt.Sprintf("Enhanced score %.2f%%", after.Percentage), after)

	// Step 7: reconcile before/after bookkeeping
	summary := scoring.Reconcile(before, after, enhanced.KeywordsAdded, enhanced.KeywordsSkipped)
	if opts.Verbose {
		printer.PrintReconciliation(summary)
	}
	emitProgress(&opts, runID, StepReconcile, "Reconciled keyword bookkeeping", summary)

	outcome := &Outcome{
		RunID:        runID,
		ResumeText:   resumeText,
		JobText:      jobText,
		Before:       before,
		AI:           aiResult,
		Enhanced:     enhanced,
		EnhancedText: enhancedText,
		After:        after,
		Summary:      summary,
	}

	if opts.RenderDocs {
		if err := renderArtifacts(ctx, opts, runID, enhanced, outcome); err != nil {
			return nil, err
		}
	}

	return outcome, nil
}

// renderArtifacts produces the LaTeX, PDF and optional DOCX outputs.
// Rendering failures are fatal only for the format being rendered; PDF
// compilation depends on a local pdflatex install, so its failure degrades
// to the .tex artifact with a warning.
func renderArtifacts(ctx context.Context, opts Options, runID uuid.UUID, enhanced *types.EnhancedResume, outcome *Outcome) error {
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "output"
	}

	tex, err := rendering.RenderLaTeX(enhanced)
	if err != nil {
		return fmt.Errorf("rendering latex failed: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory failed: %w", err)
	}
	texPath := filepath.Join(outputDir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(tex), 0o644); err != nil {
		return fmt.Errorf("writing tex file failed: %w", err)
	}
	outcome.TexPath = texPath

	pdfPath, err := rendering.CompilePDF(ctx, tex, outputDir)
	if err != nil {
		fmt.Printf("Warning: PDF compilation failed: %v\n", err)
	} else {
		outcome.PDFPath = pdfPath
	}

	if opts.TemplatePath != "" {
		docxPath, err := rendering.RenderDOCX(enhanced, opts.TemplatePath, outputDir)
		if err != nil {
			return fmt.Errorf("rendering docx failed: %w", err)
		}
		outcome.DocxPath = docxPath
	}

	emitProgress(&opts, runID, StepRender, "Rendered output documents", nil)
	return nil
}

// resolveResumeText returns the resume body from inline text or a file.
func resolveResumeText(opts Options) (string, error) {
	if opts.ResumeText != "" {
		return opts.ResumeText, nil
	}
	return extraction.FromFile(opts.ResumePath)
}

// resolveJobText returns the job description from inline text, a file, or a URL.
func resolveJobText(ctx context.Context, opts Options) (string, error) {
	switch {
	case opts.JobText != "":
		return opts.JobText, nil
	case opts.JobURL != "":
		return fetch.JobDescription(ctx, opts.JobURL, opts.UseBrowser)
	default:
		data, err := os.ReadFile(opts.JobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job file %s: %w", opts.JobPath, err)
		}
		return string(data), nil
	}
}

// resolveClient returns the injected client or creates a Gemini one.
func resolveClient(ctx context.Context, opts Options) (llm.Client, error) {
	if opts.Client != nil {
		return opts.Client, nil
	}
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}
	return client, nil
}
