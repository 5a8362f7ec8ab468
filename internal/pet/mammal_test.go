package pet

import "testing"

func sampleDog() Dog {
	return Dog{
		Pet:    PetData{ID: 1, Name: "Rex"},
		Mammal: MammalData{HairColor: "brown", Breed: "labrador", HasHair: true},
		Traits: DogTraits{TailLength: 50.0, CommandsKnown: 5},
	}
}

func sampleCat() Cat {
	return Cat{
		Pet:    PetData{ID: 2, Name: "Whiskers"},
		Mammal: MammalData{HairColor: "black", Breed: "persian", HasHair: true},
		Traits: CatTraits{Declawed: true, SitsOnKeyboard: true},
	}
}

func TestMammalDogVariant(t *testing.T) {
	m := sampleDog().AsMammal()

	if m.Species() != SpeciesDog {
		t.Fatalf("species = %s, want %s", m.Species(), SpeciesDog)
	}
	if !m.IsDog() || m.IsCat() {
		t.Fatal("expected dog variant")
	}
	if m.ID() != 1 {
		t.Fatalf("id = %d, want 1", m.ID())
	}
	if m.Name() != "Rex" {
		t.Fatalf("name = %q, want %q", m.Name(), "Rex")
	}
	if m.HairColor() != "brown" {
		t.Fatalf("hair color = %q, want %q", m.HairColor(), "brown")
	}
	if m.Sound() != "Woof!" {
		t.Fatalf("sound = %q, want %q", m.Sound(), "Woof!")
	}

	dog, ok := m.AsDog()
	if !ok {
		t.Fatal("expected AsDog to succeed")
	}
	if dog != sampleDog() {
		t.Fatalf("dog = %+v, want %+v", dog, sampleDog())
	}
	if _, ok := m.AsCat(); ok {
		t.Fatal("expected AsCat to fail for a dog")
	}
}

func TestMammalCatVariant(t *testing.T) {
	m := sampleCat().AsMammal()

	if m.Species() != SpeciesCat {
		t.Fatalf("species = %s, want %s", m.Species(), SpeciesCat)
	}
	if !m.IsCat() || m.IsDog() {
		t.Fatal("expected cat variant")
	}
	if m.Sound() != "Meow!" {
		t.Fatalf("sound = %q, want %q", m.Sound(), "Meow!")
	}

	cat, ok := m.AsCat()
	if !ok {
		t.Fatal("expected AsCat to succeed")
	}
	if cat != sampleCat() {
		t.Fatalf("cat = %+v, want %+v", cat, sampleCat())
	}
	if _, ok := m.AsDog(); ok {
		t.Fatal("expected AsDog to fail for a cat")
	}
}

func TestMammalSharedDataAccess(t *testing.T) {
	m := sampleCat().AsMammal()

	base := m.Pet()
	if base.ID != 2 || base.Name != "Whiskers" {
		t.Fatalf("pet data = %+v", base)
	}
	shared := m.MammalData()
	if shared.Breed != "persian" || !shared.HasHair {
		t.Fatalf("mammal data = %+v", shared)
	}
}

func TestStringFormats(t *testing.T) {
	dog := sampleDog()
	want := "Dog(Rex, brown, breed: labrador, commands: 5)"
	if dog.String() != want {
		t.Fatalf("dog string = %q, want %q", dog.String(), want)
	}

	cat := sampleCat()
	want = "Cat(Whiskers, black, keyboard sitter: true)"
	if cat.String() != want {
		t.Fatalf("cat string = %q, want %q", cat.String(), want)
	}

	if dog.AsMammal().String() != dog.String() {
		t.Fatalf("mammal string = %q, want dog string", dog.AsMammal().String())
	}
	if cat.AsMammal().String() != cat.String() {
		t.Fatalf("mammal string = %q, want cat string", cat.AsMammal().String())
	}
}
