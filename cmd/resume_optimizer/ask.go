package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/chat"
	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/llm"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the career coach a question about your resume and a job",
	Long: `Answers a free-form question in the context of the given resume and job
description, for example "Which of my projects should I highlight?".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var (
	askResume string
	askJob    string
	askAPIKey string
)

func init() {
	askCmd.Flags().StringVarP(&askResume, "resume", "r", "", "Path to resume file (.pdf, .docx or .txt)")
	askCmd.Flags().StringVarP(&askJob, "job", "j", "", "Path to job posting text file")
	askCmd.Flags().StringVar(&askAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	apiKey := askAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	var resumeText string
	if askResume != "" {
		text, err := extraction.FromFile(askResume)
		if err != nil {
			return fmt.Errorf("resume extraction failed: %w", err)
		}
		resumeText = text
	}

	var jobText string
	if askJob != "" {
		data, err := os.ReadFile(askJob)
		if err != nil {
			return fmt.Errorf("failed to read job file %s: %w", askJob, err)
		}
		jobText = string(data)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer client.Close()

	reply, err := chat.NewCoach(client).Respond(ctx, query, resumeText, jobText)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}
