package roster

import (
	"github.com/teranos/atelier/artist"
	"github.com/teranos/atelier/errors"
)

// Showcase returns a roster seeded with five well-known artists: two actors,
// two musicians and a poet.
func Showcase() (*Roster, error) {
	r := New()
	if err := Seed(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Seed registers the showcase artists into r.
func Seed(r *Roster) error {
	builders := []func() (artist.Artist, error){
		func() (artist.Artist, error) {
			return artist.NewActor("Denzel Washington", 67,
				[]string{"Action", "SciFi", "Drama"},
				[]string{"Academy Award", "Golden Globe"},
				[]string{"Glory", "Flight", "Training Day", "Book of Eli", "Fences"})
		},
		func() (artist.Artist, error) {
			return artist.NewActor("Melissa McCarthy", 52,
				[]string{"Comedy", "Romantic Comedy"},
				[]string{"Emmy", "People's Choice"},
				[]string{"Bridesmaids", "Tammy", "Life of the Party", "Ghostbusters"})
		},
		func() (artist.Artist, error) {
			return artist.NewMusician("Bruce Springsteen", 73,
				[]string{"Rock", "Rock-Soul"},
				[]string{"Grammy", "American Music Award"},
				"Only the Strong Survive", "Columbia Records")
		},
		func() (artist.Artist, error) {
			return artist.NewMusician("Lizzo", 34,
				[]string{"R&B", "Pop", "Rap"},
				[]string{"Grammy", "Billboard"},
				"Special", "Atlantic Records")
		},
		func() (artist.Artist, error) {
			return artist.NewPoet("Maya Angelou", 86,
				[]string{"Autobiographical Fiction"},
				[]string{"Pulitzer"},
				"Random House")
		},
	}

	for _, build := range builders {
		a, err := build()
		if err != nil {
			return errors.Wrap(err, "failed to build showcase artist")
		}
		if _, err := r.Add(a); err != nil {
			return errors.Wrap(err, "failed to register showcase artist")
		}
	}
	return nil
}
