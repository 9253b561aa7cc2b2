package main

import (
	"github.com/jonathan/internship-recommender/internal/observability"
	"github.com/jonathan/internship-recommender/internal/skills"
	"github.com/spf13/cobra"
)

func newSkillsCommand() *cobra.Command {
	var jsonMode bool

	cmd := &cobra.Command{
		Use:     "skills <raw>",
		Short:   "Parse a raw skills field into skill names",
		Example: `  recommender skills "[{'name': 'Python'}, {'name': 'SQL'}]"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := skills.Parse(args[0])
			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintSkills(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output JSON")
	return cmd
}
