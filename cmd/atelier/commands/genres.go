package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GenresCmd lists each artist's genres on one line
var GenresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genres of every artist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, _, err := loadRoster()
		if err != nil {
			return err
		}

		for _, e := range r.List() {
			genres := e.Artist.GenresAsSingleString()
			if genres == "" {
				genres = "(none)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", e.Artist.Name(), genres)
		}
		return nil
	},
}
