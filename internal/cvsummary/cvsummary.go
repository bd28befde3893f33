// Package cvsummary derives the exposé summary and highlight bullets from raw CV text.
// The model's wording is opaque; only the JSON contract is checked.
package cvsummary

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/jonathan/talentbridge/internal/llm"
	"github.com/jonathan/talentbridge/internal/prompts"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/types"
)

const (
	// MaxBullets matches the maxItems of the cv_summary schema.
	MaxBullets = 8
	// MaxInputRunes truncates very long CVs before they are sent.
	MaxInputRunes = 20000

	promptFile = "cvsummary.json"
)

// ErrEmptyCV is returned for blank input.
var ErrEmptyCV = errors.New("CV text is empty")

// Result is the model output after validation.
type Result struct {
	Summary string   `json:"summary"`
	Bullets []string `json:"bullets"`
}

// Summarize asks the model for a summary and bullets of cvText and validates the answer
// against the cv_summary schema.
func Summarize(ctx context.Context, client llm.Client, cvText string) (*Result, error) {
	cvText = strings.TrimSpace(cvText)
	if cvText == "" {
		return nil, ErrEmptyCV
	}
	if runes := []rune(cvText); len(runes) > MaxInputRunes {
		cvText = string(runes[:MaxInputRunes])
	}

	req, err := buildRequest(cvText)
	if err != nil {
		return nil, err
	}

	raw, err := client.GenerateJSON(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize CV: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.Validate(schemas.CVSummary, []byte(raw)); err != nil {
		return nil, fmt.Errorf("model returned an invalid summary: %w", err)
	}

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}

	result.Summary = strings.TrimSpace(result.Summary)
	bullets := make([]string, 0, len(result.Bullets))
	for _, b := range result.Bullets {
		if b = strings.TrimSpace(b); b != "" {
			bullets = append(bullets, b)
		}
	}
	result.Bullets = bullets

	return &result, nil
}

// Apply copies the summary and bullets onto the candidate. Existing values are kept
// unless overwrite is set.
func Apply(c types.Candidate, r Result, overwrite bool) types.Candidate {
	if r.Summary != "" && (overwrite || c.CVSummary == nil || strings.TrimSpace(*c.CVSummary) == "") {
		summary := r.Summary
		c.CVSummary = &summary
	}
	if len(r.Bullets) > 0 && (overwrite || len(c.CVBullets) == 0) {
		c.CVBullets = append([]string(nil), r.Bullets...)
	}
	return c
}

func buildRequest(cvText string) (llm.Request, error) {
	set, err := prompts.Load(promptFile)
	if err != nil {
		return llm.Request{}, err
	}
	texts, err := set.Texts(map[string]string{"MaxBullets": strconv.Itoa(MaxBullets)},
		"system", "summary-field", "bullets-field", "rule-anonymous", "rule-language")
	if err != nil {
		return llm.Request{}, err
	}

	return llm.Request{
		Instruction: texts["system"],
		Fields: []llm.Field{
			{Name: "summary", Kind: llm.KindString, Description: texts["summary-field"]},
			{Name: "bullets", Kind: llm.KindStringList, Description: texts["bullets-field"]},
		},
		Rules: []string{texts["rule-anonymous"], texts["rule-language"]},
		Input: cvText,
	}, nil
}
