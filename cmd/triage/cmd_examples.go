package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shahar-caura/triage/internal/triage"
)

func newExamplesCmd(logger *slog.Logger, opts *globalOptions) *cobra.Command {
	var run bool
	var model string

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List the canned example tickets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !run {
				for i, ex := range triage.Examples {
					fmt.Fprintf(out, "%d. %s\n", i+1, ex)
				}
				return nil
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

			// One request at a time, in order.
			var errs []error
			fmt.Fprintf(out, "%-3s  %-8s  %s\n", "#", "LEVEL", "TICKET")
			for i, ex := range triage.Examples {
				res, err := classifier.Classify(cmd.Context(), triage.Request{Ticket: ex, Model: name})
				if err != nil {
					fmt.Fprintf(out, "%-3d  %-8s  %s\n", i+1, "ERROR", truncate(ex, 60))
					errs = append(errs, fmt.Errorf("example %d: %w", i+1, err))
					continue
				}
				fmt.Fprintf(out, "%-3d  %-8s  %s\n", i+1, res.Level, truncate(ex, 60))
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().BoolVar(&run, "run", false, "classify every example with --model")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model identifier (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("model", completeModels(opts))

	return cmd
}
