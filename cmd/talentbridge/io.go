package main

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/jonathan/talentbridge/internal/config"
	"github.com/jonathan/talentbridge/internal/logger"
	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/schemas"
)

// loadConfig reads the --config file and environment overrides and checks value ranges.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger() (*zap.Logger, error) {
	log, err := logger.New(jsonLogs, debugMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// readInput validates the JSON file at path against the named schema and decodes it into v.
func readInput(schema, path string, v any) error {
	if err := schemas.DecodeFile(schema, path, v); err != nil {
		return fmt.Errorf("invalid input %s: %w", path, err)
	}
	return nil
}

// writeOutput writes v as indented JSON to path, or to stdout when path is empty.
func writeOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// summary runs fn against a stderr printer when --verbose is set.
func summary(fn func(p *observability.Printer)) {
	if verbose {
		fn(observability.NewPrinter(os.Stderr))
	}
}

func markRequired(cmd interface{ MarkFlagRequired(string) error }, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
