package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shahar-caura/triage/internal/config"
)

var version = "dev"

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	config.LoadEnvFiles()

	root := newRootCmd(logger, level)
	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Error("triage failed", "error", err)
		os.Exit(1)
	}
}

// globalOptions are flags shared by every subcommand.
type globalOptions struct {
	configPath string
	ollamaURL  string
	verbose    bool
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "triage",
		Short:         "Classify SAP support tickets into L1, L2 or L3 with a local language model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose && level != nil {
				level.Set(slog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to triage config file")
	root.PersistentFlags().StringVar(&opts.ollamaURL, "ollama-url", "", "override the Ollama server URL")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(logger, opts),
		newClassifyCmd(logger, opts),
		newExtractCmd(opts),
		newExamplesCmd(logger, opts),
		newModelsCmd(opts),
		newInitCmd(opts),
		newCompletionCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show triage version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("triage " + version)
		},
	}
}
