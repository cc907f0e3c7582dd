// Package roster keeps an in-memory registry of artists keyed by UUID.
package roster

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/atelier/artist"
	"github.com/teranos/atelier/errors"
	"github.com/teranos/atelier/logger"
)

// Entry pairs a registered artist with its roster id.
type Entry struct {
	ID     uuid.UUID
	Artist artist.Artist
}

// Roster is a registry of artists. The zero value is not usable; call New.
type Roster struct {
	mu      sync.RWMutex
	order   []uuid.UUID
	artists map[uuid.UUID]artist.Artist
	logger  *zap.SugaredLogger
}

// New creates an empty roster logging through the "roster" component logger.
func New() *Roster {
	return NewWithLogger(logger.ComponentLogger("roster"))
}

// NewWithLogger creates an empty roster with an explicit logger.
func NewWithLogger(log *zap.SugaredLogger) *Roster {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Roster{
		artists: make(map[uuid.UUID]artist.Artist),
		logger:  log,
	}
}

// Add registers a and returns its new id. An artist with the same name and
// kind can only be registered once.
func (r *Roster) Add(a artist.Artist) (uuid.UUID, error) {
	if a == nil {
		return uuid.Nil, errors.NewInvalidArgumentError("artist is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		existing := r.artists[id]
		if existing.Kind() == a.Kind() && existing.Name() == a.Name() {
			return uuid.Nil, errors.WithHintf(
				errors.NewConflictError("%s %q already registered", a.Kind(), a.Name()),
				"existing id is %s", id)
		}
	}

	id := uuid.New()
	r.artists[id] = a
	r.order = append(r.order, id)

	r.logger.Debugw("Registered artist",
		logger.FieldArtistID, id.String(),
		logger.FieldName, a.Name(),
		logger.FieldKind, string(a.Kind()))
	return id, nil
}

// Get returns the artist registered under id.
func (r *Roster) Get(id uuid.UUID) (artist.Artist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.artists[id]
	if !ok {
		return nil, errors.NewNotFoundError("artist %s", id)
	}
	return a, nil
}

// FindByName returns every entry whose artist has the given name, in
// registration order.
func (r *Roster) FindByName(name string) []Entry {
	return r.filter(func(a artist.Artist) bool { return a.Name() == name })
}

// ByKind returns every entry of the given kind, in registration order.
func (r *Roster) ByKind(kind artist.Kind) []Entry {
	return r.filter(func(a artist.Artist) bool { return a.Kind() == kind })
}

// List returns every entry in registration order.
func (r *Roster) List() []Entry {
	return r.filter(func(artist.Artist) bool { return true })
}

// Len returns the number of registered artists.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Award hands award to the artist registered under id and returns the
// artist's awards afterwards.
func (r *Roster) Award(id uuid.UUID, award string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.artists[id]
	if !ok {
		return nil, errors.NewNotFoundError("artist %s", id)
	}
	a.ReceiveAward(award)
	awards := a.Awards()

	r.logger.Infow("Award received",
		logger.FieldArtistID, id.String(),
		logger.FieldName, a.Name(),
		logger.FieldAward, award,
		logger.FieldCount, len(awards))
	return awards, nil
}

func (r *Roster) filter(keep func(artist.Artist) bool) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []Entry
	for _, id := range r.order {
		if a := r.artists[id]; keep(a) {
			entries = append(entries, Entry{ID: id, Artist: a})
		}
	}
	return entries
}
