package main

import (
	"fmt"

	"github.com/jonathan/internship-recommender/internal/observability"
	"github.com/jonathan/internship-recommender/internal/recommend"
	"github.com/spf13/cobra"
)

func newRecommendCommand(opts *rootOptions) *cobra.Command {
	var (
		id       string
		query    string
		n        int
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend listings similar to a listing or matching a query",
		Example: `  recommender recommend --id 42 -n 5
  recommender recommend --query "python data analysis"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (id == "") == (query == "") {
				return fmt.Errorf("exactly one of --id or --query is required")
			}

			engine, cfg, err := opts.loadEngine(cmd.Context(), cmd.OutOrStdout(), true)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("n") {
				n = cfg.DefaultN
			}

			var (
				recs  []recommend.Recommendation
				title string
			)
			if id != "" {
				recs, err = engine.ByListing(id, n)
				title = fmt.Sprintf("Listings similar to %s:", id)
			} else {
				recs, err = engine.ByQuery(query, n)
				title = fmt.Sprintf("Listings matching %q:", query)
			}
			if err != nil {
				return err
			}

			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), recs)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintRecommendations(title, recs)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Listing id to find similar listings for")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Free-text query")
	cmd.Flags().IntVarP(&n, "n", "n", 10, "Maximum number of results")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output JSON")
	return cmd
}
