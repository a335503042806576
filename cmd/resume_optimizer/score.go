package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/fetch"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description without modifying it",
	Long: `Computes the deterministic keyword-match score and lists the job keywords
missing from the resume. With --ai an additional model-judged score is
requested; the keyword score is always reported.`,
	RunE: runScore,
}

var (
	scoreResume     string
	scoreJob        string
	scoreJobURL     string
	scoreAPIKey     string
	scoreUseAI      bool
	scoreUseBrowser bool
	scoreJSON       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume file (.pdf, .docx or .txt)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job posting text file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch job posting from")
	scoreCmd.Flags().BoolVar(&scoreUseAI, "ai", false, "Also request the AI-assisted match score")
	scoreCmd.Flags().BoolVar(&scoreUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the result as JSON")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	_ = scoreCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(scoreCmd)
}

type scoreReport struct {
	Score           float64           `json:"score"`
	MissingKeywords []string          `json:"missing_keywords"`
	AI              *scoring.AIResult `json:"ai,omitempty"`
}

func runScore(_ *cobra.Command, _ []string) error {
	if scoreJob == "" && scoreJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}

	ctx := context.Background()

	resumeText, err := extraction.FromFile(scoreResume)
	if err != nil {
		return fmt.Errorf("resume extraction failed: %w", err)
	}

	var jobText string
	if scoreJobURL != "" {
		jobText, err = fetch.JobDescription(ctx, scoreJobURL, scoreUseBrowser)
		if err != nil {
			return fmt.Errorf("job fetch failed: %w", err)
		}
	} else {
		data, err := os.ReadFile(scoreJob)
		if err != nil {
			return fmt.Errorf("failed to read job file %s: %w", scoreJob, err)
		}
		jobText = string(data)
	}

	result := scoring.Score(resumeText, jobText)
	report := scoreReport{Score: result.Percentage, MissingKeywords: result.Missing}

	if scoreUseAI {
		apiKey := scoreAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required for --ai")
		}

		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}
		defer client.Close()

		ai := scoring.NewAIScorer(client).Score(ctx, resumeText, jobText)
		report.AI = &ai
	}

	return printScoreReport(report)
}

func printScoreReport(report scoreReport) error {
	if scoreJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	fmt.Printf("Keyword score: %.2f%%\n", report.Score)
	if len(report.MissingKeywords) > 0 {
		fmt.Printf("Missing keywords (%d): %v\n", len(report.MissingKeywords), report.MissingKeywords)
	} else {
		fmt.Println("No missing keywords.")
	}
	if report.AI != nil {
		if report.AI.Available {
			fmt.Printf("AI score: %.2f%%\n", report.AI.Score)
			if len(report.AI.Missing) > 0 {
				fmt.Printf("AI missing keywords: %v\n", report.AI.Missing)
			}
		} else {
			fmt.Println("AI scoring unavailable.")
		}
	}
	return nil
}
