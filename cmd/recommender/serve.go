package main

import (
	"github.com/jonathan/internship-recommender/internal/server"
	"github.com/jonathan/internship-recommender/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Load the catalog, build the TF-IDF index and serve recommendations over HTTP.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, cfg, err := opts.loadEngine(cmd.Context(), cmd.OutOrStdout(), false)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Port = port
			}

			srv := server.New(server.Config{
				Port:     cfg.Port,
				DefaultN: cfg.DefaultN,
				DetailN:  cfg.DetailN,
				SampleN:  cfg.SampleN,
			}, engine, ratelimit.NewLimiter(ratelimit.LoadConfig()))

			return srv.Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides config and PORT)")
	return cmd
}
