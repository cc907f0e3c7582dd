package artist

import (
	"slices"

	"github.com/teranos/atelier/errors"
)

// Age bounds, inclusive.
const (
	MinAge = 0
	MaxAge = 128
)

// Base holds the attributes common to every artist. It is embedded by value
// in each variant and cannot describe itself.
type Base struct {
	name   string
	age    int
	genres []string
	awards []string
}

// newBase validates the shared attributes. genres and awards are copied so
// later changes to the caller's slices do not leak into the artist.
func newBase(name string, age int, genres, awards []string) (Base, error) {
	if name == "" {
		return Base{}, errors.WithHint(
			errors.NewInvalidArgumentError("name is empty"),
			"every artist needs a name")
	}
	if age < MinAge || age > MaxAge {
		return Base{}, errors.WithHintf(
			errors.NewInvalidArgumentError("age %d outside [%d, %d]", age, MinAge, MaxAge),
			"age must be between %d and %d inclusive", MinAge, MaxAge)
	}
	return Base{
		name:   name,
		age:    age,
		genres: slices.Clone(genres),
		awards: slices.Clone(awards),
	}, nil
}

// Name returns the artist's name.
func (b *Base) Name() string { return b.name }

// Age returns the artist's age.
func (b *Base) Age() int { return b.age }

// Genres returns a copy of the genres; nil if none were given.
func (b *Base) Genres() []string { return slices.Clone(b.genres) }

// Awards returns a copy of the awards in the order they were received.
func (b *Base) Awards() []string { return slices.Clone(b.awards) }

// ReceiveAward appends award to the end of the awards list. Any value is
// accepted, including the empty string.
func (b *Base) ReceiveAward(award string) {
	b.awards = append(b.awards, award)
}

// GenresAsSingleString renders the genres as "[g1, g2]", or "" when there
// are none.
func (b *Base) GenresAsSingleString() string {
	if len(b.genres) == 0 {
		return ""
	}
	return formatList(b.genres)
}
