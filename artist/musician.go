package artist

import (
	"strconv"
	"strings"

	"github.com/teranos/atelier/errors"
)

// Musician is an artist with a current album and, optionally, a record company.
type Musician struct {
	Base
	currentAlbum  string
	recordCompany string
}

// NewMusician builds a Musician. genres must be non-nil and currentAlbum
// non-empty; recordCompany is not checked.
func NewMusician(name string, age int, genres, awards []string, currentAlbum, recordCompany string) (*Musician, error) {
	base, err := newBase(name, age, genres, awards)
	if err != nil {
		return nil, errors.Wrap(err, "musician")
	}
	if genres == nil {
		return nil, errors.Wrap(errors.NewInvalidArgumentError("genres is nil"), "musician")
	}
	if currentAlbum == "" {
		return nil, errors.Wrap(errors.NewInvalidArgumentError("current album is empty"), "musician")
	}
	return &Musician{Base: base, currentAlbum: currentAlbum, recordCompany: recordCompany}, nil
}

// CurrentAlbum returns the title of the musician's current album.
func (m *Musician) CurrentAlbum() string { return m.currentAlbum }

// RecordCompany returns the record company, possibly empty.
func (m *Musician) RecordCompany() string { return m.recordCompany }

// Kind returns KindMusician.
func (m *Musician) Kind() Kind { return KindMusician }

// Describe renders the musician's six-line description.
func (m *Musician) Describe() string {
	var sb strings.Builder
	sb.WriteString("My name is " + m.name)
	sb.WriteString("\nMy age is " + strconv.Itoa(m.age))
	sb.WriteString("\nI am a MUSICIAN")
	sb.WriteString("\nI make these types of music: " + formatList(m.genres))
	sb.WriteString("\nMy current album is: " + m.currentAlbum)
	sb.WriteString("\nMy recording company is: " + m.recordCompany)
	return sb.String()
}

func (m *Musician) String() string { return m.Describe() }
