package artist

import (
	"slices"
	"strconv"
	"strings"

	"github.com/teranos/atelier/errors"
)

// Actor is an artist who keeps track of the movies they have acted in.
type Actor struct {
	Base
	movies []string
}

// NewActor builds an Actor. movies must be non-nil; an empty list is fine.
func NewActor(name string, age int, genres, awards, movies []string) (*Actor, error) {
	base, err := newBase(name, age, genres, awards)
	if err != nil {
		return nil, errors.Wrap(err, "actor")
	}
	if movies == nil {
		return nil, errors.Wrap(errors.NewInvalidArgumentError("movies is nil"), "actor")
	}
	return &Actor{Base: base, movies: slices.Clone(movies)}, nil
}

// Movies returns a copy of the movies.
func (a *Actor) Movies() []string { return slices.Clone(a.movies) }

// Kind returns KindActor.
func (a *Actor) Kind() Kind { return KindActor }

// Describe renders:
//
//	My name is {name}
//	My age is {age}
//	I am an ACTOR
//	I make these types of movies: [{genres}]
//	I have acted in these movies: [{movies}]
func (a *Actor) Describe() string {
	var sb strings.Builder
	sb.WriteString("My name is " + a.name)
	sb.WriteString("\nMy age is " + strconv.Itoa(a.age))
	sb.WriteString("\nI am an ACTOR")
	sb.WriteString("\nI make these types of movies: " + formatList(a.genres))
	sb.WriteString("\nI have acted in these movies: " + formatList(a.movies))
	return sb.String()
}

func (a *Actor) String() string { return a.Describe() }
