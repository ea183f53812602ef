package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shahar-caura/triage/internal/ollama"
)

func newModelsCmd(opts *globalOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List configured models and their extraction policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			var pulled map[string]bool
			if check {
				client, err := ollama.New(cfg.Ollama.BaseURL, cfg.Ollama.Timeout.Duration)
				if err != nil {
					return err
				}
				ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
				defer cancel()
				names, err := client.Ping(ctx)
				if err != nil {
					return fmt.Errorf("checking %s: %w", client.BaseURL(), err)
				}
				pulled = make(map[string]bool, len(names))
				for _, n := range names {
					pulled[n] = true
					pulled[strings.TrimSuffix(n, ":latest")] = true
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-24s  %-8s  %s\n", "MODEL", "POLICY", "NOTES")
			for _, m := range cfg.Catalog().Models {
				var notes []string
				if m.Name == cfg.Models.Default {
					notes = append(notes, "default")
				}
				if check && !pulled[m.Name] {
					notes = append(notes, "not pulled")
				}
				fmt.Fprintf(out, "%-24s  %-8s  %s\n", m.Name, m.Policy, strings.Join(notes, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify the models are available on the Ollama server")

	return cmd
}
