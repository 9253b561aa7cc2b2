package main

import (
	"github.com/jonathan/internship-recommender/internal/observability"
	"github.com/spf13/cobra"
)

func newSampleCommand(opts *rootOptions) *cobra.Command {
	var (
		n        int
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Show random listings that have a partner name and logo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, cfg, err := opts.loadEngine(cmd.Context(), cmd.OutOrStdout(), true)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("n") {
				n = cfg.SampleN
			}

			listings, err := engine.Sample(n)
			if err != nil {
				return err
			}
			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), listings)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintListings(listings)
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "n", "n", 3, "Number of listings")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output JSON")
	return cmd
}

func newListCommand(opts *rootOptions) *cobra.Command {
	var (
		query    string
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings, optionally filtered by name or partner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, _, err := opts.loadEngine(cmd.Context(), cmd.OutOrStdout(), true)
			if err != nil {
				return err
			}

			listings := engine.Filter(query)
			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), listings)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintListings(listings)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive filter on name or partner name")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output JSON")
	return cmd
}

func newShowCommand(opts *rootOptions) *cobra.Command {
	var (
		n        int
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a listing with its skills and similar listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cfg, err := opts.loadEngine(cmd.Context(), cmd.OutOrStdout(), true)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("n") {
				n = cfg.DetailN
			}

			detail, err := engine.Detail(args[0], n)
			if err != nil {
				return err
			}
			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), detail)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintDetail(detail)
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "n", "n", 6, "Number of similar listings")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output JSON")
	return cmd
}
