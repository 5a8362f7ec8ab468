package gateway

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/louisbranch/menagerie/internal/pet"
	"github.com/louisbranch/menagerie/internal/pet/world"
)

var (
	// ErrNotFound indicates a requested row is missing.
	ErrNotFound = errors.New("pet not found")
	// ErrBrokenRow indicates a joined query found a row with a missing
	// fragment. The gateway's atomic-attach guarantee makes this an
	// internal defect, not a caller-recoverable condition.
	ErrBrokenRow = errors.New("row fragment missing")
)

// Gateway mediates all construction and query access to the world.
type Gateway struct {
	world *world.World
}

// New creates a gateway over an empty world.
func New() *Gateway {
	return &Gateway{world: world.New()}
}

// DogParams holds the caller-supplied fields for a new dog row.
type DogParams struct {
	Name          string
	HairColor     string
	Breed         string
	HasHair       bool
	TailLength    float64
	CommandsKnown int
}

// CatParams holds the caller-supplied fields for a new cat row.
type CatParams struct {
	Name           string
	HairColor      string
	Breed          string
	HasHair        bool
	Declawed       bool
	SitsOnKeyboard bool
}

// CreateDog allocates a row id and attaches the base, mammal, and dog
// fragments under it. All three attaches complete before CreateDog
// returns, so no query can observe a partially assembled row.
func (g *Gateway) CreateDog(ctx context.Context, params DogParams) (pet.ID, error) {
	if err := g.ready(ctx); err != nil {
		return 0, err
	}
	id := g.world.AllocateID()
	g.world.Pets().Attach(id, pet.PetData{ID: id, Name: params.Name})
	g.world.Mammals().Attach(id, pet.MammalData{
		HairColor: params.HairColor,
		Breed:     params.Breed,
		HasHair:   params.HasHair,
	})
	g.world.Dogs().Attach(id, pet.DogTraits{
		TailLength:    params.TailLength,
		CommandsKnown: params.CommandsKnown,
	})
	return id, nil
}

// CreateCat allocates a row id and attaches the base, mammal, and cat
// fragments under it. A row never holds both leaf fragments.
func (g *Gateway) CreateCat(ctx context.Context, params CatParams) (pet.ID, error) {
	if err := g.ready(ctx); err != nil {
		return 0, err
	}
	id := g.world.AllocateID()
	g.world.Pets().Attach(id, pet.PetData{ID: id, Name: params.Name})
	g.world.Mammals().Attach(id, pet.MammalData{
		HairColor: params.HairColor,
		Breed:     params.Breed,
		HasHair:   params.HasHair,
	})
	g.world.Cats().Attach(id, pet.CatTraits{
		Declawed:       params.Declawed,
		SitsOnKeyboard: params.SitsOnKeyboard,
	})
	return id, nil
}

// Dog returns the joined dog row for id, or ErrNotFound when no dog
// fragment is attached under it.
func (g *Gateway) Dog(ctx context.Context, id pet.ID) (pet.Dog, error) {
	if err := g.ready(ctx); err != nil {
		return pet.Dog{}, err
	}
	return g.joinDog(id)
}

// Cat returns the joined cat row for id, or ErrNotFound when no cat
// fragment is attached under it.
func (g *Gateway) Cat(ctx context.Context, id pet.ID) (pet.Cat, error) {
	if err := g.ready(ctx); err != nil {
		return pet.Cat{}, err
	}
	return g.joinCat(id)
}

// Mammal returns the joined row for id wrapped in the union, whichever
// leaf kind it holds.
func (g *Gateway) Mammal(ctx context.Context, id pet.ID) (pet.Mammal, error) {
	if err := g.ready(ctx); err != nil {
		return pet.Mammal{}, err
	}
	if _, ok := g.world.Dogs().Get(id); ok {
		dog, err := g.joinDog(id)
		if err != nil {
			return pet.Mammal{}, err
		}
		return dog.AsMammal(), nil
	}
	if _, ok := g.world.Cats().Get(id); ok {
		cat, err := g.joinCat(id)
		if err != nil {
			return pet.Mammal{}, err
		}
		return cat.AsMammal(), nil
	}
	return pet.Mammal{}, ErrNotFound
}

// AllDogs joins base, mammal, and dog fragments for every row in the dog
// store, in ascending id order.
func (g *Gateway) AllDogs(ctx context.Context) ([]pet.Dog, error) {
	if err := g.ready(ctx); err != nil {
		return nil, err
	}
	ids := sortedIDs(g.world.Dogs().IDs())
	dogs := make([]pet.Dog, 0, len(ids))
	for _, id := range ids {
		dog, err := g.joinDog(id)
		if err != nil {
			return nil, err
		}
		dogs = append(dogs, dog)
	}
	return dogs, nil
}

// AllCats joins base, mammal, and cat fragments for every row in the cat
// store, in ascending id order.
func (g *Gateway) AllCats(ctx context.Context) ([]pet.Cat, error) {
	if err := g.ready(ctx); err != nil {
		return nil, err
	}
	ids := sortedIDs(g.world.Cats().IDs())
	cats := make([]pet.Cat, 0, len(ids))
	for _, id := range ids {
		cat, err := g.joinCat(id)
		if err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

// AllMammals returns the disjoint union of AllDogs and AllCats, merged in
// ascending id order.
func (g *Gateway) AllMammals(ctx context.Context) ([]pet.Mammal, error) {
	dogs, err := g.AllDogs(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := g.AllCats(ctx)
	if err != nil {
		return nil, err
	}
	mammals := make([]pet.Mammal, 0, len(dogs)+len(cats))
	for _, dog := range dogs {
		mammals = append(mammals, dog.AsMammal())
	}
	for _, cat := range cats {
		mammals = append(mammals, cat.AsMammal())
	}
	sort.Slice(mammals, func(i, j int) bool {
		return mammals[i].ID() < mammals[j].ID()
	})
	return mammals, nil
}

// FilterMammals returns the mammals whose mid-level fragment satisfies
// pred, preserving ascending id order.
func (g *Gateway) FilterMammals(ctx context.Context, pred func(pet.MammalData) bool) ([]pet.Mammal, error) {
	if pred == nil {
		return nil, errors.New("predicate is required")
	}
	mammals, err := g.AllMammals(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]pet.Mammal, 0, len(mammals))
	for _, m := range mammals {
		if pred(m.MammalData()) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// FilterExpression evaluates an AIP-160 filter expression over the
// mid-level fields hair_color, breed, and has_hair. An empty expression
// matches every mammal.
func (g *Gateway) FilterExpression(ctx context.Context, filterStr string) ([]pet.Mammal, error) {
	parsed, err := parseFilter(filterStr)
	if err != nil {
		return nil, err
	}
	mammals, err := g.AllMammals(ctx)
	if err != nil {
		return nil, err
	}
	if parsed == nil {
		return mammals, nil
	}
	matches := make([]pet.Mammal, 0, len(mammals))
	for _, m := range mammals {
		ok, err := evaluate(parsed, mammalResolver(m.MammalData()))
		if err != nil {
			return nil, fmt.Errorf("evaluate filter: %w", err)
		}
		if ok {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// MammalsByHairColor returns the mammals with the given hair color, in
// ascending id order.
func (g *Gateway) MammalsByHairColor(ctx context.Context, color string) ([]pet.Mammal, error) {
	return g.FilterMammals(ctx, func(data pet.MammalData) bool {
		return data.HairColor == color
	})
}

func (g *Gateway) ready(ctx context.Context) error {
	if g == nil || g.world == nil {
		return errors.New("gateway is required")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gateway) joinDog(id pet.ID) (pet.Dog, error) {
	traits, ok := g.world.Dogs().Get(id)
	if !ok {
		return pet.Dog{}, ErrNotFound
	}
	base, ok := g.world.Pets().Get(id)
	if !ok {
		return pet.Dog{}, fmt.Errorf("dog row %d: pet fragment: %w", id, ErrBrokenRow)
	}
	shared, ok := g.world.Mammals().Get(id)
	if !ok {
		return pet.Dog{}, fmt.Errorf("dog row %d: mammal fragment: %w", id, ErrBrokenRow)
	}
	return pet.Dog{Pet: base, Mammal: shared, Traits: traits}, nil
}

func (g *Gateway) joinCat(id pet.ID) (pet.Cat, error) {
	traits, ok := g.world.Cats().Get(id)
	if !ok {
		return pet.Cat{}, ErrNotFound
	}
	base, ok := g.world.Pets().Get(id)
	if !ok {
		return pet.Cat{}, fmt.Errorf("cat row %d: pet fragment: %w", id, ErrBrokenRow)
	}
	shared, ok := g.world.Mammals().Get(id)
	if !ok {
		return pet.Cat{}, fmt.Errorf("cat row %d: mammal fragment: %w", id, ErrBrokenRow)
	}
	return pet.Cat{Pet: base, Mammal: shared, Traits: traits}, nil
}

func sortedIDs(ids []pet.ID) []pet.ID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
