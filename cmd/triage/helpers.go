package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shahar-caura/triage/internal/config"
	"github.com/shahar-caura/triage/internal/ollama"
	"github.com/shahar-caura/triage/internal/triage"
)

// loadConfig reads the config file, falling back to defaults when it does not exist.
func loadConfig(opts *globalOptions) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.ollamaURL != "" {
		cfg.Ollama.BaseURL = strings.TrimRight(opts.ollamaURL, "/")
	}
	return cfg, nil
}

// wireClassifier builds the Ollama client and the classifier on top of it.
func wireClassifier(cfg *config.Config, logger *slog.Logger) (*ollama.Client, *triage.Classifier, error) {
	client, err := ollama.New(cfg.Ollama.BaseURL, cfg.Ollama.Timeout.Duration)
	if err != nil {
		return nil, nil, err
	}
	return client, triage.NewClassifier(client, cfg.Catalog(), cfg.Registry(), logger), nil
}

// completeModels offers configured model identifiers for --model.
func completeModels(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := loadConfig(opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var names []string
		for _, name := range cfg.Catalog().Names() {
			if strings.HasPrefix(name, toComplete) {
				names = append(names, name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
