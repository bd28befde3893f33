package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talentbridge/internal/cvsummary"
	"github.com/jonathan/talentbridge/internal/llm"
	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/readiness"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/types"
)

var summarizeCVCmd = &cobra.Command{
	Use:   "summarize-cv",
	Short: "Generate the exposé summary and highlights from a CV",
	Long: "Sends the CV text to the Gemini API and returns a short anonymous summary and highlight bullets. " +
		"With --candidate the result is applied to the candidate and the readiness score is recomputed.",
	RunE: runSummarizeCV,
}

var (
	summarizeCVInputFile     string
	summarizeCVCandidateFile string
	summarizeCVOutputFile    string
	summarizeCVAPIKey        string
	summarizeCVOverwrite     bool
)

func init() {
	summarizeCVCmd.Flags().StringVarP(&summarizeCVInputFile, "in", "i", "", "Path to CV text file (required)")
	summarizeCVCmd.Flags().StringVar(&summarizeCVCandidateFile, "candidate", "", "Path to candidate JSON file to apply the summary to")
	summarizeCVCmd.Flags().StringVarP(&summarizeCVOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	summarizeCVCmd.Flags().StringVar(&summarizeCVAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	summarizeCVCmd.Flags().BoolVar(&summarizeCVOverwrite, "overwrite", false, "Replace an existing summary and bullets on the candidate")
	markRequired(summarizeCVCmd, "in")

	rootCmd.AddCommand(summarizeCVCmd)
}

type summarizeCVOutput struct {
	Summary   *cvsummary.Result       `json:"summary"`
	Candidate *types.Candidate        `json:"candidate,omitempty"`
	Readiness *readiness.ExposeResult `json:"readiness,omitempty"`
}

func runSummarizeCV(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cvText, err := os.ReadFile(summarizeCVInputFile)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	var candidate *types.Candidate
	if summarizeCVCandidateFile != "" {
		candidate = &types.Candidate{}
		if err := readInput(schemas.Candidate, summarizeCVCandidateFile, candidate); err != nil {
			return err
		}
	}

	apiKey := summarizeCVAPIKey
	if apiKey == "" {
		apiKey = cfg.LLM.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()
	llmCfg := llm.DefaultConfig()
	if cfg.LLM.Model != "" {
		llmCfg.Model = cfg.LLM.Model
	}
	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	log.Debug("summarizing CV",
		zap.String("model", client.Model()),
		zap.Int("bytes", len(cvText)))

	result, err := cvsummary.Summarize(ctx, client, string(cvText))
	if err != nil {
		return fmt.Errorf("failed to summarize CV: %w", err)
	}

	out := summarizeCVOutput{Summary: result}
	if candidate != nil {
		updated := cvsummary.Apply(*candidate, *result, summarizeCVOverwrite)
		score := readiness.Expose(&updated)
		out.Candidate = &updated
		out.Readiness = &score
	}

	summary(func(p *observability.Printer) {
		p.PrintCVSummary(result)
		if out.Readiness != nil {
			p.PrintExpose(*out.Readiness)
		}
	})
	return writeOutput(summarizeCVOutputFile, out)
}
