package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/atelier/display"
	"github.com/teranos/atelier/errors"
)

// AwardCmd hands awards to an artist and prints the resulting list
var AwardCmd = &cobra.Command{
	Use:   "award <award>...",
	Short: "Give awards to an artist",
	Long: `Append one or more awards to an artist and print the artist's awards.

The roster lives in memory, so awards last for this invocation only.

Examples:
  atelier award --name "Maya Angelou" Tony
  atelier award --name "Lizzo" --kind musician Grammy "BET Award"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAward,
}

var (
	awardName string
	awardKind string
)

func init() {
	AwardCmd.Flags().StringVarP(&awardName, "name", "n", "", "Name of the artist receiving the awards")
	AwardCmd.Flags().StringVarP(&awardKind, "kind", "k", "", "Kind of the artist, when the name is ambiguous")
	_ = AwardCmd.MarkFlagRequired("name")
}

func runAward(cmd *cobra.Command, args []string) error {
	kind, err := parseKindFlag(awardKind)
	if err != nil {
		return err
	}

	r, cfg, err := loadRoster()
	if err != nil {
		return err
	}

	entries := selectEntries(r, kind, awardName)
	switch {
	case len(entries) == 0:
		return errors.NewNotFoundError("artist %q", awardName)
	case len(entries) > 1:
		return errors.WithHint(
			errors.NewConflictError("%d artists named %q", len(entries), awardName),
			"pass --kind to pick one")
	}

	target := entries[0]
	for _, award := range args {
		if _, err := r.Award(target.ID, award); err != nil {
			return err
		}
	}

	return display.RenderAwards(cmd.OutOrStdout(), target.Artist, displayOptions(cmd, cfg))
}
