package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sccse-chatbot/config"
	"sccse-chatbot/internal/retrieval"
	retrievalFactory "sccse-chatbot/internal/retrieval/factory"
	"sccse-chatbot/pkg/log"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		opts       options
	)

	cmd := &cobra.Command{
		Use:   "ingest [flags] FILE...",
		Short: "Index handbook text into the retrieval backend",
		Long: "ingest splits plain-text or Markdown handbook exports into passages, embeds them " +
			"with Voyage and upserts them into the backend named by retrieval.backend (qdrant or chromem). " +
			"Re-running on the same files overwrites the existing passages.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := os.Setenv(config.EnvConfigPath, configPath); err != nil {
					return err
				}
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.Retrieval.Backend == "" || cfg.Retrieval.Backend == retrieval.BackendNone {
				return fmt.Errorf("retrieval.backend is %q: nothing to ingest into", cfg.Retrieval.Backend)
			}

			logger := log.Init(log.ZapConfig{
				Level:        cfg.Logger.Level,
				Mode:         cfg.Logger.Mode,
				Encoding:     cfg.Logger.Encoding,
				ColorEnabled: cfg.Logger.ColorEnabled,
			})

			ctx := cmd.Context()
			store, err := retrievalFactory.New(ctx, cfg, logger)
			if err != nil {
				return err
			}

			n, err := run(ctx, store, args, opts, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d passages from %d file(s)\n", n, len(args))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: search ./config, ., /etc/app)")
	cmd.Flags().IntVar(&opts.ChunkSize, "chunk-size", defaultChunkSize, "maximum passage length in characters")
	cmd.Flags().IntVar(&opts.Overlap, "overlap", defaultOverlap, "characters carried over when a paragraph is split")
	cmd.Flags().IntVar(&opts.BatchSize, "batch-size", defaultBatchSize, "passages embedded per request")

	return cmd
}
