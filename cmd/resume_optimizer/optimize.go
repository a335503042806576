package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/pipeline"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run the full optimization pipeline end-to-end",
	Long: `Scores the resume against the job description, rewrites it to incorporate
missing keywords truthfully, rescores the result and reports the delta.
With --render the enhanced resume is also written as LaTeX, PDF and
(given a template) DOCX.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runOptimize,
}

var (
	optConfigPath string
	optResume     string
	optJob        string
	optJobURL     string
	optTemplate   string
	optOutputDir  string
	optAPIKey     string
	optUseBrowser bool
	optAIScore    bool
	optRender     bool
	optVerbose    bool
)

func init() {
	// Config file flag (processed first)
	optimizeCmd.Flags().StringVar(&optConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	optimizeCmd.Flags().StringVarP(&optResume, "resume", "r", "", "Path to resume file (.pdf, .docx or .txt)")
	optimizeCmd.Flags().StringVarP(&optJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	optimizeCmd.Flags().StringVar(&optJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	optimizeCmd.Flags().StringVarP(&optTemplate, "template", "t", "", "Path to DOCX template for rendered output")
	optimizeCmd.Flags().StringVarP(&optOutputDir, "output", "o", "", "Directory for generated artifacts (default \"output\")")
	optimizeCmd.Flags().BoolVar(&optUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	optimizeCmd.Flags().BoolVar(&optAIScore, "ai-score", false, "Also request the AI-assisted match score")
	optimizeCmd.Flags().BoolVar(&optRender, "render", false, "Render the enhanced resume as LaTeX/PDF/DOCX")
	optimizeCmd.Flags().BoolVarP(&optVerbose, "verbose", "v", false, "Print detailed progress information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	optimizeCmd.Flags().StringVar(&optAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	cfg, err := loadOptimizeConfig(cmd)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		ResumePath:   cfg.Resume,
		JobPath:      cfg.Job,
		JobURL:       cfg.JobURL,
		TemplatePath: cfg.Template,
		OutputDir:    cfg.OutputDir,
		APIKey:       cfg.APIKey,
		UseAIScore:   cfg.UseAIScore,
		UseBrowser:   cfg.UseBrowser,
		RenderDocs:   optRender,
		Verbose:      cfg.Verbose,
	}

	outcome, err := pipeline.Run(context.Background(), opts)
	if err != nil {
		return err
	}

	printOutcome(outcome)
	return nil
}

// loadOptimizeConfig merges the config file, CLI flags and defaults,
// flags winning over the file and the file over defaults.
func loadOptimizeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if optConfigPath != "" {
		loadedCfg, err := config.LoadConfig(optConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if optVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", optConfigPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = optResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = optJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = optJobURL
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = optTemplate
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = optOutputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = optAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = optUseBrowser
	}
	if cmd.Flags().Changed("ai-score") {
		cfg.UseAIScore = optAIScore
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = optVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{OutputDir: "output"})

	if cfg.Resume == "" {
		return cfg, fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return cfg, fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return cfg, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	return cfg, nil
}

// printOutcome summarizes a finished run on stdout.
func printOutcome(outcome *pipeline.Outcome) {
	fmt.Printf("Run %s completed.\n", outcome.RunID)
	fmt.Printf("  Score before: %.2f%%\n", outcome.Summary.ScoreBefore)
	fmt.Printf("  Score after:  %.2f%%\n", outcome.Summary.ScoreAfter)
	fmt.Printf("  Delta:        %+.2f\n", outcome.Summary.Delta)
	if outcome.AI.Available {
		fmt.Printf("  AI score:     %.2f%%\n", outcome.AI.Score)
	}
	if len(outcome.Summary.KeywordsAdded) > 0 {
		fmt.Printf("  Keywords added: %v\n", outcome.Summary.KeywordsAdded)
	}
	if len(outcome.Summary.KeywordsStillMissing) > 0 {
		fmt.Printf("  Still missing:  %v\n", outcome.Summary.KeywordsStillMissing)
	}
	for _, path := range []string{outcome.TexPath, outcome.PDFPath, outcome.DocxPath} {
		if path != "" {
			fmt.Printf("  Wrote %s\n", path)
		}
	}
}
