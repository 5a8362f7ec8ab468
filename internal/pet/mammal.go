package pet

// Species discriminates the variants of the Mammal union.
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Mammal is a closed union over the leaf kinds. The zero value is invalid;
// values are built with Dog.AsMammal or Cat.AsMammal, so every Mammal in
// circulation holds exactly one variant. Consumers switch on Species and
// handle both cases, or downcast with AsDog/AsCat.
type Mammal struct {
	species Species
	dog     Dog
	cat     Cat
}

// Species reports which variant the union holds.
func (m Mammal) Species() Species {
	return m.species
}

// Pet returns the base fragment common to both variants.
func (m Mammal) Pet() PetData {
	switch m.species {
	case SpeciesCat:
		return m.cat.Pet
	default:
		return m.dog.Pet
	}
}

// MammalData returns the mid-level fragment common to both variants.
func (m Mammal) MammalData() MammalData {
	switch m.species {
	case SpeciesCat:
		return m.cat.Mammal
	default:
		return m.dog.Mammal
	}
}

// ID returns the row identifier.
func (m Mammal) ID() ID {
	return m.Pet().ID
}

// Name returns the pet's name.
func (m Mammal) Name() string {
	return m.Pet().Name
}

// HairColor returns the mammal's hair color.
func (m Mammal) HairColor() string {
	return m.MammalData().HairColor
}

// Sound returns the noise this mammal makes.
func (m Mammal) Sound() string {
	if m.species == SpeciesCat {
		return "Meow!"
	}
	return "Woof!"
}

// IsDog reports whether the union holds a dog.
func (m Mammal) IsDog() bool {
	return m.species == SpeciesDog
}

// IsCat reports whether the union holds a cat.
func (m Mammal) IsCat() bool {
	return m.species == SpeciesCat
}

// AsDog returns the dog variant when present.
func (m Mammal) AsDog() (Dog, bool) {
	if m.species != SpeciesDog {
		return Dog{}, false
	}
	return m.dog, true
}

// AsCat returns the cat variant when present.
func (m Mammal) AsCat() (Cat, bool) {
	if m.species != SpeciesCat {
		return Cat{}, false
	}
	return m.cat, true
}

func (m Mammal) String() string {
	switch m.species {
	case SpeciesCat:
		return m.cat.String()
	default:
		return m.dog.String()
	}
}
