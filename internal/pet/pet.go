package pet

import "fmt"

// ID identifies one logical row across every fragment store. IDs are
// opaque, monotonically allocated, and never reused.
type ID uint64

// PetData is the base fragment shared by every pet, mapping to the Pet
// table of the Class Table Inheritance layout.
type PetData struct {
	ID   ID
	Name string
}

// MammalData is the mid-level fragment shared by every mammal, mapping to
// the Mammal table. It is keyed by the same row id as its base fragment;
// identity is the relation, there is no foreign key field.
type MammalData struct {
	HairColor string
	Breed     string
	HasHair   bool
}

// DogTraits holds the dog-specific fragment, mapping to the Dog table.
type DogTraits struct {
	TailLength    float64
	CommandsKnown int
}

// CatTraits holds the cat-specific fragment, mapping to the Cat table.
type CatTraits struct {
	Declawed       bool
	SitsOnKeyboard bool
}

// Dog composes the three fragments of a dog row by value. Shared fields
// are reused through the embedded fragment types rather than a supertype.
type Dog struct {
	Pet    PetData
	Mammal MammalData
	Traits DogTraits
}

// Cat composes the three fragments of a cat row by value.
type Cat struct {
	Pet    PetData
	Mammal MammalData
	Traits CatTraits
}

// AsMammal wraps the dog in the closed Mammal union.
func (d Dog) AsMammal() Mammal {
	return Mammal{species: SpeciesDog, dog: d}
}

// AsMammal wraps the cat in the closed Mammal union.
func (c Cat) AsMammal() Mammal {
	return Mammal{species: SpeciesCat, cat: c}
}

func (d Dog) String() string {
	return fmt.Sprintf("Dog(%s, %s, breed: %s, commands: %d)",
		d.Pet.Name, d.Mammal.HairColor, d.Mammal.Breed, d.Traits.CommandsKnown)
}

func (c Cat) String() string {
	return fmt.Sprintf("Cat(%s, %s, keyboard sitter: %t)",
		c.Pet.Name, c.Mammal.HairColor, c.Traits.SitsOnKeyboard)
}
