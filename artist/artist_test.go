package artist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/atelier/errors"
)

var (
	actionGenres  = []string{"Action", "SciFi", "Drama"}
	rockGenres    = []string{"Rock", "Rock-Soul"}
	comedyGenres  = []string{"Comedy", "Romantic Comedy"}
	popGenres     = []string{"R&B", "Pop", "Rap"}
	fictionGenres = []string{"Autobiographical Fiction"}

	denzelMovies  = []string{"Glory", "Flight", "Training Day", "Book of Eli", "Fences"}
	melissaMovies = []string{"Bridesmaids", "Tammy", "Life of the Party", "Ghostbusters"}
)

func mustActor(t *testing.T, name string, age int, genres, awards, movies []string) *Actor {
	t.Helper()
	a, err := NewActor(name, age, genres, awards, movies)
	require.NoError(t, err)
	return a
}

func mustMusician(t *testing.T, name string, age int, genres, awards []string, album, company string) *Musician {
	t.Helper()
	m, err := NewMusician(name, age, genres, awards, album, company)
	require.NoError(t, err)
	return m
}

func mustPoet(t *testing.T, name string, age int, genres, awards []string, publisher string) *Poet {
	t.Helper()
	p, err := NewPoet(name, age, genres, awards, publisher)
	require.NoError(t, err)
	return p
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		artist Artist
		want   string
	}{
		{
			name:   "actor denzel",
			artist: mustActor(t, "Denzel Washington", 67, actionGenres, []string{"Academy Award", "Golden Globe"}, denzelMovies),
			want: "My name is Denzel Washington\n" +
				"My age is 67\n" +
				"I am an ACTOR\n" +
				"I make these types of movies: [Action, SciFi, Drama]\n" +
				"I have acted in these movies: [Glory, Flight, Training Day, Book of Eli, Fences]",
		},
		{
			name:   "actor melissa",
			artist: mustActor(t, "Melissa McCarthy", 52, comedyGenres, []string{"Emmy", "People's Choice"}, melissaMovies),
			want: "My name is Melissa McCarthy\n" +
				"My age is 52\n" +
				"I am an ACTOR\n" +
				"I make these types of movies: [Comedy, Romantic Comedy]\n" +
				"I have acted in these movies: [Bridesmaids, Tammy, Life of the Party, Ghostbusters]",
		},
		{
			name:   "actor without movies yet",
			artist: mustActor(t, "Newcomer", 18, []string{}, nil, []string{}),
			want: "My name is Newcomer\n" +
				"My age is 18\n" +
				"I am an ACTOR\n" +
				"I make these types of movies: []\n" +
				"I have acted in these movies: []",
		},
		{
			name:   "musician springsteen",
			artist: mustMusician(t, "Bruce Springsteen", 73, rockGenres, []string{"Grammy", "American Music Award"}, "Only the Strong Survive", "Columbia Records"),
			want: "My name is Bruce Springsteen\n" +
				"My age is 73\n" +
				"I am a MUSICIAN\n" +
				"I make these types of music: [Rock, Rock-Soul]\n" +
				"My current album is: Only the Strong Survive\n" +
				"My recording company is: Columbia Records",
		},
		{
			name:   "musician lizzo",
			artist: mustMusician(t, "Lizzo", 34, popGenres, []string{"Grammy", "Billboard"}, "Special", "Atlantic Records"),
			want: "My name is Lizzo\n" +
				"My age is 34\n" +
				"I am a MUSICIAN\n" +
				"I make these types of music: [R&B, Pop, Rap]\n" +
				"My current album is: Special\n" +
				"My recording company is: Atlantic Records",
		},
		{
			name:   "musician without record company",
			artist: mustMusician(t, "Busker", 25, []string{"Folk"}, nil, "Street Songs", ""),
			want: "My name is Busker\n" +
				"My age is 25\n" +
				"I am a MUSICIAN\n" +
				"I make these types of music: [Folk]\n" +
				"My current album is: Street Songs\n" +
				"My recording company is: ",
		},
		{
			name:   "poet angelou",
			artist: mustPoet(t, "Maya Angelou", 86, fictionGenres, []string{"Pulitzer"}, "Random House"),
			want: "My name is Maya Angelou\n" +
				"My age is 86\n" +
				"I am a POET\n" +
				"I make these types of poems: [Autobiographical Fiction]\n" +
				" My publishing company is: Random House",
		},
		{
			name:   "poet with nil genres",
			artist: mustPoet(t, "Anonymous", 40, nil, nil, "Small Press"),
			want: "My name is Anonymous\n" +
				"My age is 40\n" +
				"I am a POET\n" +
				"I make these types of poems: null\n" +
				" My publishing company is: Small Press",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.artist.Describe()); diff != "" {
				t.Errorf("Describe() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.artist.Describe(), tt.artist.String())
		})
	}
}

func TestPoetKeepsLeadingSpace(t *testing.T) {
	p := mustPoet(t, "Maya Angelou", 86, fictionGenres, []string{"Pulitzer"}, "Random House")
	assert.Contains(t, p.Describe(), "\n My publishing company is: Random House")
}

func TestAgeBounds(t *testing.T) {
	build := map[Kind]func(age int) error{
		KindActor: func(age int) error {
			_, err := NewActor("Denzel Washington", age, actionGenres, nil, denzelMovies)
			return err
		},
		KindMusician: func(age int) error {
			_, err := NewMusician("Bruce Springsteen", age, rockGenres, nil, "Only the Strong Survive", "Columbia Records")
			return err
		},
		KindPoet: func(age int) error {
			_, err := NewPoet("Maya Angelou", age, fictionGenres, nil, "Random House")
			return err
		},
	}

	for _, kind := range Kinds {
		t.Run(string(kind), func(t *testing.T) {
			for _, age := range []int{-1, 129, -1000, 1000} {
				err := build[kind](age)
				assert.True(t, errors.IsInvalidArgumentError(err), "age %d should be rejected, got %v", age, err)
			}
			for _, age := range []int{0, 1, 67, 128} {
				assert.NoError(t, build[kind](age), "age %d should be accepted", age)
			}
		})
	}
}

func TestConstructorRejections(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
	}{
		{"empty name actor", func() error {
			_, err := NewActor("", 10, actionGenres, nil, denzelMovies)
			return err
		}},
		{"empty name musician", func() error {
			_, err := NewMusician("", 10, rockGenres, nil, "Only the Strong Survive", "Columbia Records")
			return err
		}},
		{"empty name poet", func() error {
			_, err := NewPoet("", 10, fictionGenres, nil, "Random House")
			return err
		}},
		{"nil movies", func() error {
			_, err := NewActor("Denzel Washington", 67, actionGenres, nil, nil)
			return err
		}},
		{"nil musician genres", func() error {
			_, err := NewMusician("Bruce Springsteen", 73, nil, nil, "Only the Strong Survive", "Columbia Records")
			return err
		}},
		{"empty current album", func() error {
			_, err := NewMusician("Bruce Springsteen", 73, rockGenres, nil, "", "Columbia Records")
			return err
		}},
		{"empty publisher", func() error {
			_, err := NewPoet("Maya Angelou", 86, fictionGenres, nil, "")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
		})
	}
}

func TestBaseRejectionsCarryHints(t *testing.T) {
	_, err := NewPoet("", 10, nil, nil, "Random House")
	require.Error(t, err)
	assert.Contains(t, errors.GetAllHints(err), "every artist needs a name")
	assert.Contains(t, err.Error(), "poet")
}

func TestLenientFields(t *testing.T) {
	_, err := NewActor("Denzel Washington", 67, nil, nil, denzelMovies)
	assert.NoError(t, err, "actors accept nil genres")

	_, err = NewMusician("Lizzo", 34, []string{}, nil, "Special", "")
	assert.NoError(t, err, "musicians accept empty genres and record company")

	_, err = NewPoet("Maya Angelou", 86, nil, nil, "Random House")
	assert.NoError(t, err, "poets accept nil genres")
}

func TestReceiveAward(t *testing.T) {
	p := mustPoet(t, "Maya Angelou", 86, fictionGenres, []string{"Pulitzer"}, "Random House")

	p.ReceiveAward("Tony")
	assert.Equal(t, []string{"Pulitzer", "Tony"}, p.Awards())

	p.ReceiveAward("")
	p.ReceiveAward("National Medal of Arts")
	assert.Equal(t, []string{"Pulitzer", "Tony", "", "National Medal of Arts"}, p.Awards())
}

func TestReceiveAwardStartingEmpty(t *testing.T) {
	a := mustActor(t, "Newcomer", 18, nil, nil, []string{})
	assert.Empty(t, a.Awards())

	a.ReceiveAward("Best Debut")
	assert.Equal(t, []string{"Best Debut"}, a.Awards())
}

func TestGetAwards(t *testing.T) {
	a := mustActor(t, "Denzel Washington", 67, actionGenres, []string{"Academy Award", "Golden Globe"}, denzelMovies)
	assert.Equal(t, []string{"Academy Award", "Golden Globe"}, a.Awards())
}

func TestAttributesAreNotAliased(t *testing.T) {
	genres := []string{"Action", "SciFi", "Drama"}
	awards := []string{"Academy Award", "Golden Globe"}
	movies := []string{"Glory", "Flight"}
	a := mustActor(t, "Denzel Washington", 67, genres, awards, movies)

	genres[0] = "Horror"
	awards[0] = "Razzie"
	movies[0] = "Cats"
	assert.Equal(t, []string{"Action", "SciFi", "Drama"}, a.Genres())
	assert.Equal(t, []string{"Academy Award", "Golden Globe"}, a.Awards())
	assert.Equal(t, []string{"Glory", "Flight"}, a.Movies())

	got := a.Awards()
	got[1] = "Razzie"
	assert.Equal(t, []string{"Academy Award", "Golden Globe"}, a.Awards())
}

func TestGenresAsSingleString(t *testing.T) {
	assert.Equal(t, "[Action, SciFi, Drama]", mustActor(t, "Denzel Washington", 67, actionGenres, nil, denzelMovies).GenresAsSingleString())
	assert.Equal(t, "", mustActor(t, "Newcomer", 18, nil, nil, []string{}).GenresAsSingleString())
	assert.Equal(t, "", mustMusician(t, "Lizzo", 34, []string{}, nil, "Special", "").GenresAsSingleString())
}

func TestAccessorsAndKinds(t *testing.T) {
	m := mustMusician(t, "Bruce Springsteen", 73, rockGenres, nil, "Only the Strong Survive", "Columbia Records")
	assert.Equal(t, "Bruce Springsteen", m.Name())
	assert.Equal(t, 73, m.Age())
	assert.Equal(t, "Only the Strong Survive", m.CurrentAlbum())
	assert.Equal(t, "Columbia Records", m.RecordCompany())
	assert.Equal(t, KindMusician, m.Kind())

	p := mustPoet(t, "Maya Angelou", 86, fictionGenres, nil, "Random House")
	assert.Equal(t, "Random House", p.Publisher())
	assert.Equal(t, KindPoet, p.Kind())

	assert.Equal(t, KindActor, mustActor(t, "Denzel Washington", 67, nil, nil, denzelMovies).Kind())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(string(k))
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("painter")
	assert.False(t, ok)
}
