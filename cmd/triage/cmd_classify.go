package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shahar-caura/triage/internal/triage"
)

func newClassifyCmd(logger *slog.Logger, opts *globalOptions) *cobra.Command {
	var model string
	var example int

	cmd := &cobra.Command{
		Use:   "classify [ticket...]",
		Short: "Classify one ticket and print the result",
		Long: `Classify one ticket and print the tier and the model's reasoning.

The ticket is taken from the arguments, from --example N (1-4), or from stdin when
the only argument is "-".`,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ticket, err := ticketInput(cmd, args, example)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			_, classifier, err := wireClassifier(cfg, logger)
			if err != nil {
				return err
			}

			name, err := classifier.Catalog().Resolve(model)
			if err != nil {
				return err
			}

			res, err := classifier.Classify(cmd.Context(), triage.Request{Ticket: ticket, Model: name})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Model:          %s\n", name)
			fmt.Fprintf(out, "Classification: %s\n", res.Level)
			fmt.Fprintf(out, "Reasoning:\n%s\n", strings.TrimSpace(res.Reasoning))
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "model identifier (default from config)")
	cmd.Flags().IntVarP(&example, "example", "e", 0, "use canned example ticket N (1-4)")
	_ = cmd.RegisterFlagCompletionFunc("model", completeModels(opts))

	return cmd
}

// ticketInput resolves the ticket text from --example, stdin or the arguments.
func ticketInput(cmd *cobra.Command, args []string, example int) (string, error) {
	switch {
	case example != 0:
		if len(args) > 0 {
			return "", fmt.Errorf("--example cannot be combined with a ticket argument")
		}
		if example < 1 || example > len(triage.Examples) {
			return "", fmt.Errorf("--example must be between 1 and %d", len(triage.Examples))
		}
		return triage.Examples[example-1], nil
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	default:
		return strings.Join(args, " "), nil
	}
}
