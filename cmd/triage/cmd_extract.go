package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newExtractCmd(opts *globalOptions) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the tier from model output read on stdin",
		Long: `Extract the tier from model output read on stdin, using the extraction
policy configured for --model. No model is called.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if model == "" {
				model = cfg.Models.Default
			}

			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cfg.Registry().Extract(string(data), model))
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "model whose extraction policy applies (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("model", completeModels(opts))

	return cmd
}
