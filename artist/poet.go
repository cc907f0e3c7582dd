package artist

import (
	"strconv"
	"strings"

	"github.com/teranos/atelier/errors"
)

// Poet is an artist with a publishing company.
type Poet struct {
	Base
	publisher string
}

// NewPoet builds a Poet. publisher must be non-empty.
func NewPoet(name string, age int, genres, awards []string, publisher string) (*Poet, error) {
	base, err := newBase(name, age, genres, awards)
	if err != nil {
		return nil, errors.Wrap(err, "poet")
	}
	if publisher == "" {
		return nil, errors.Wrap(errors.NewInvalidArgumentError("publisher is empty"), "poet")
	}
	return &Poet{Base: base, publisher: publisher}, nil
}

// Publisher returns the poet's publishing company.
func (p *Poet) Publisher() string { return p.publisher }

// Kind returns KindPoet.
func (p *Poet) Kind() Kind { return KindPoet }

// Describe renders the poet's description. The last line starts with a
// space; existing consumers match on it.
func (p *Poet) Describe() string {
	var sb strings.Builder
	sb.WriteString("My name is " + p.name)
	sb.WriteString("\nMy age is " + strconv.Itoa(p.age))
	sb.WriteString("\nI am a POET")
	sb.WriteString("\nI make these types of poems: " + formatList(p.genres))
	sb.WriteString("\n My publishing company is: " + p.publisher)
	return sb.String()
}

func (p *Poet) String() string { return p.Describe() }
