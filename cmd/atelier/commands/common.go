package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/atelier/am"
	"github.com/teranos/atelier/artist"
	"github.com/teranos/atelier/display"
	"github.com/teranos/atelier/errors"
	"github.com/teranos/atelier/roster"
)

// AddGlobalFlags registers the flags every atelier command understands.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	root.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON lines on stderr")
	root.PersistentFlags().Bool("plain", false, "Print bare descriptions without colors or boxes")
}

// displayOptions merges display config with the --plain flag.
func displayOptions(cmd *cobra.Command, cfg *am.Config) display.Options {
	plain, _ := cmd.Flags().GetBool("plain")
	if plain {
		return display.Options{}
	}
	return display.Options{Color: cfg.Display.Color, Boxed: cfg.Display.Boxed}
}

// loadRoster builds the in-memory roster for one command run.
func loadRoster() (*roster.Roster, *am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}

	r := roster.New()
	if cfg.Roster.Showcase {
		if err := roster.Seed(r); err != nil {
			return nil, nil, err
		}
	}
	return r, cfg, nil
}

// parseKindFlag returns "" for an empty flag value.
func parseKindFlag(value string) (artist.Kind, error) {
	if value == "" {
		return "", nil
	}
	kind, ok := artist.ParseKind(value)
	if !ok {
		return "", errors.WithHintf(
			errors.NewInvalidArgumentError("unknown kind %q", value),
			"valid kinds: %s, %s, %s", artist.KindActor, artist.KindMusician, artist.KindPoet)
	}
	return kind, nil
}

// selectEntries filters the roster by optional kind and name.
func selectEntries(r *roster.Roster, kind artist.Kind, name string) []roster.Entry {
	var entries []roster.Entry
	for _, e := range r.List() {
		if kind != "" && e.Artist.Kind() != kind {
			continue
		}
		if name != "" && e.Artist.Name() != name {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
