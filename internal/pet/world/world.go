// Package world owns the fragment stores and the row id allocator behind
// the gateway. A Store holds fragments of one kind keyed by row id and
// performs no constraint checking; cross-store invariants are the
// gateway's job.
//
// The world provides no internal synchronization. Construction calls must
// be serialized by the caller; queries may run concurrently only while no
// construction is in flight.
package world

import (
	"github.com/louisbranch/menagerie/internal/pet"
)

// Store maps row ids to fragments of one kind.
type Store[T any] struct {
	frags map[pet.ID]T
}

// NewStore creates an empty fragment store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{frags: make(map[pet.ID]T)}
}

// Attach inserts or overwrites the fragment for id.
func (s *Store[T]) Attach(id pet.ID, frag T) {
	s.frags[id] = frag
}

// Get returns the fragment for id. The second result is false when the
// row has no fragment of this kind.
func (s *Store[T]) Get(id pet.ID) (T, bool) {
	frag, ok := s.frags[id]
	return frag, ok
}

// IDs returns the identifiers with a fragment present, in no particular
// order. Callers needing determinism sort the result.
func (s *Store[T]) IDs() []pet.ID {
	ids := make([]pet.ID, 0, len(s.frags))
	for id := range s.frags {
		ids = append(ids, id)
	}
	return ids
}

// Len reports the number of fragments attached.
func (s *Store[T]) Len() int {
	return len(s.frags)
}

// World holds one store per fragment kind plus the id allocator. Stores
// never reference each other; the shared row id is the only relation.
type World struct {
	nextID pet.ID

	pets    *Store[pet.PetData]
	mammals *Store[pet.MammalData]
	dogs    *Store[pet.DogTraits]
	cats    *Store[pet.CatTraits]
}

// New creates an empty world.
func New() *World {
	return &World{
		pets:    NewStore[pet.PetData](),
		mammals: NewStore[pet.MammalData](),
		dogs:    NewStore[pet.DogTraits](),
		cats:    NewStore[pet.CatTraits](),
	}
}

// AllocateID issues the next row identifier. Identifiers are strictly
// increasing and never reused, starting at 1.
func (w *World) AllocateID() pet.ID {
	w.nextID++
	return w.nextID
}

// Pets returns the base fragment store.
func (w *World) Pets() *Store[pet.PetData] {
	return w.pets
}

// Mammals returns the mid-level fragment store.
func (w *World) Mammals() *Store[pet.MammalData] {
	return w.mammals
}

// Dogs returns the dog leaf fragment store.
func (w *World) Dogs() *Store[pet.DogTraits] {
	return w.dogs
}

// Cats returns the cat leaf fragment store.
func (w *World) Cats() *Store[pet.CatTraits] {
	return w.cats
}
