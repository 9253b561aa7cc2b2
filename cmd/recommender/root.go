package main

import (
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath  string
	listingsCSV string
	textsCSV    string
	databaseURL string
	table       string
	verbose     bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "recommender",
		Short: "Internship recommender",
		Long: `Recommends internship listings by TF-IDF cosine similarity, either to another
listing or to a free-text query. Serves a JSON API or answers from the command line.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to JSON config file")
	flags.StringVar(&opts.listingsCSV, "listings", "", "Path to the listing table CSV")
	flags.StringVar(&opts.textsCSV, "texts", "", "Path to the preprocessed text CSV")
	flags.StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL URL to load listings from (overrides DATABASE_URL)")
	flags.StringVar(&opts.table, "table", "", "PostgreSQL table holding the listings")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print catalog and index details")

	root.AddCommand(
		newServeCommand(opts),
		newRecommendCommand(opts),
		newSampleCommand(opts),
		newListCommand(opts),
		newShowCommand(opts),
		newSkillsCommand(),
	)
	return root
}
