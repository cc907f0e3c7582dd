// Package display renders artists for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/atelier/artist"
)

// Options controls how artists are rendered.
type Options struct {
	Color bool // pterm styles; when false the output is the bare description
	Boxed bool // draw a titled box around each description (needs Color)
}

var kindStyles = map[artist.Kind]*pterm.Style{
	artist.KindActor:    pterm.NewStyle(pterm.FgLightYellow, pterm.Bold),
	artist.KindMusician: pterm.NewStyle(pterm.FgLightMagenta, pterm.Bold),
	artist.KindPoet:     pterm.NewStyle(pterm.FgLightCyan, pterm.Bold),
}

// Title returns "name (kind)", styled per kind when color is on.
func Title(a artist.Artist, color bool) string {
	title := fmt.Sprintf("%s (%s)", a.Name(), a.Kind())
	if !color {
		return title
	}
	if style, ok := kindStyles[a.Kind()]; ok {
		return style.Sprint(title)
	}
	return title
}

// RenderArtist writes a's description to w. Plain mode writes Describe()
// verbatim followed by a newline.
func RenderArtist(w io.Writer, a artist.Artist, opts Options) error {
	text := a.Describe()
	if !opts.Color {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	if opts.Boxed {
		box := pterm.DefaultBox.WithTitle(Title(a, true)).Sprint(text)
		_, err := fmt.Fprintln(w, box)
		return err
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", Title(a, true), text)
	return err
}

// RenderArtists renders each artist, separated by a blank line.
func RenderArtists(w io.Writer, artists []artist.Artist, opts Options) error {
	for i, a := range artists {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := RenderArtist(w, a, opts); err != nil {
			return err
		}
	}
	return nil
}

// RenderAwards writes a bulleted awards list for a.
func RenderAwards(w io.Writer, a artist.Artist, opts Options) error {
	var sb strings.Builder
	sb.WriteString(Title(a, opts.Color) + "\n")
	for _, award := range a.Awards() {
		bullet := "-"
		if opts.Color {
			bullet = pterm.Gray("→")
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", bullet, award))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
