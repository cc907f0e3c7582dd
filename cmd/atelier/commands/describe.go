package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/atelier/artist"
	"github.com/teranos/atelier/display"
	"github.com/teranos/atelier/errors"
	"github.com/teranos/atelier/logger"
)

// DescribeCmd prints artist descriptions
var DescribeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe artists in the roster",
	Long: `Print the multi-line description of every artist in the roster.

Examples:
  atelier describe                       # Every artist
  atelier describe --kind poet           # Poets only
  atelier describe --name "Lizzo" --plain`,
	Args: cobra.NoArgs,
	RunE: runDescribe,
}

var (
	describeKind string
	describeName string
)

func init() {
	DescribeCmd.Flags().StringVarP(&describeKind, "kind", "k", "", "Only describe artists of this kind (actor, musician, poet)")
	DescribeCmd.Flags().StringVarP(&describeName, "name", "n", "", "Only describe the artist with this name")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	kind, err := parseKindFlag(describeKind)
	if err != nil {
		return err
	}

	r, cfg, err := loadRoster()
	if err != nil {
		return err
	}

	entries := selectEntries(r, kind, describeName)
	if len(entries) == 0 {
		if describeName != "" {
			return errors.NewNotFoundError("artist %q", describeName)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No artists in the roster")
		return nil
	}

	artists := make([]artist.Artist, 0, len(entries))
	for _, e := range entries {
		artists = append(artists, e.Artist)
	}

	logger.Debugw("Describing artists", logger.FieldCount, len(artists), logger.FieldKind, string(kind))
	return display.RenderArtists(cmd.OutOrStdout(), artists, displayOptions(cmd, cfg))
}
