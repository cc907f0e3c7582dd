// Package artist models actors, musicians and poets.
//
// Every variant embeds a Base holding the shared attributes (name, age,
// genres, awards) and renders its own multi-line description:
//
//	a, err := artist.NewPoet("Maya Angelou", 86, []string{"Autobiographical Fiction"}, nil, "Random House")
//	if err != nil {
//	    return err
//	}
//	a.ReceiveAward("Tony")
//	fmt.Println(a.Describe())
//
// Construction is the only operation that fails; it returns an error wrapping
// errors.ErrInvalidArgument.
package artist

// Kind tags the concrete variant of an Artist.
type Kind string

const (
	KindActor    Kind = "actor"
	KindMusician Kind = "musician"
	KindPoet     Kind = "poet"
)

// Kinds lists every variant in declaration order.
var Kinds = []Kind{KindActor, KindMusician, KindPoet}

// ParseKind maps a case-sensitive kind name to a Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Artist is the contract shared by Actor, Musician and Poet.
type Artist interface {
	Name() string
	Age() int
	Genres() []string
	Awards() []string
	ReceiveAward(award string)
	GenresAsSingleString() string
	Kind() Kind
	Describe() string
	String() string
}

var (
	_ Artist = (*Actor)(nil)
	_ Artist = (*Musician)(nil)
	_ Artist = (*Poet)(nil)
)
