// Package main walks the menagerie's query surface: it seeds a handful of
// pets through the gateway, then prints each kind-specific query, the
// polymorphic mammal collection, and a filtered view.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/louisbranch/menagerie/internal/pet"
	"github.com/louisbranch/menagerie/internal/pet/gateway"
	platformcmd "github.com/louisbranch/menagerie/internal/platform/cmd"
	"github.com/louisbranch/menagerie/internal/platform/config"
)

// defaultFilter is applied when neither MENAGERIE_FILTER nor -filter is
// set.
const defaultFilter = `hair_color = "blond"`

type appConfig struct {
	// Filter is the AIP-160 expression applied in the filtered-query step.
	Filter string `env:"MENAGERIE_FILTER"`
}

func main() {
	cfg := appConfig{}
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}
	if cfg.Filter == "" {
		cfg.Filter = defaultFilter
	}

	fs := flag.NewFlagSet(platformcmd.ServiceMenagerie, flag.ExitOnError)
	fs.StringVar(&cfg.Filter, "filter", cfg.Filter,
		"AIP-160 filter over hair_color, breed, and has_hair")
	if err := platformcmd.ParseArgs(fs, os.Args[1:]); err != nil {
		config.Exitf("parse flags: %v", err)
	}

	err := platformcmd.RunWithTelemetry(context.Background(), platformcmd.ServiceMenagerie, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
	if err != nil {
		config.Exitf("menagerie: %v", err)
	}
}

func run(ctx context.Context, cfg appConfig) error {
	g := gateway.New()

	if err := seed(ctx, g); err != nil {
		return fmt.Errorf("seed pets: %w", err)
	}

	section("All dogs (joins the Pet, Mammal, and Dog fragments)")
	dogs, err := g.AllDogs(ctx)
	if err != nil {
		return err
	}
	for _, dog := range dogs {
		fmt.Printf("  %s\n", dog)
	}

	section("All cats")
	cats, err := g.AllCats(ctx)
	if err != nil {
		return err
	}
	for _, cat := range cats {
		fmt.Printf("  %s\n", cat)
	}

	section("All mammals (closed union, creation order)")
	mammals, err := g.AllMammals(ctx)
	if err != nil {
		return err
	}
	for _, m := range mammals {
		fmt.Printf("  %s: %s (%s) - says %s\n", m.Species(), m.Name(), m.HairColor(), m.Sound())
	}

	section(fmt.Sprintf("Filtered: %s", cfg.Filter))
	matches, err := g.FilterExpression(ctx, cfg.Filter)
	if err != nil {
		return fmt.Errorf("filter %q: %w", cfg.Filter, err)
	}
	for _, m := range matches {
		fmt.Printf("  %s: %s\n", m.Species(), m.Name())
	}

	section("Composition access")
	if len(dogs) > 0 {
		dog := dogs[0]
		fmt.Printf("  dog.Pet.ID = %d\n", dog.Pet.ID)
		fmt.Printf("  dog.Pet.Name = %s\n", dog.Pet.Name)
		fmt.Printf("  dog.Mammal.Breed = %s\n", dog.Mammal.Breed)
		fmt.Printf("  dog.Mammal.HasHair = %t\n", dog.Mammal.HasHair)
		fmt.Printf("  dog.Traits.TailLength = %g\n", dog.Traits.TailLength)
	}

	section("Exhaustive species handling")
	for _, m := range mammals {
		switch m.Species() {
		case pet.SpeciesDog:
			dog, _ := m.AsDog()
			fmt.Printf("  %s knows %d commands\n", dog.Pet.Name, dog.Traits.CommandsKnown)
		case pet.SpeciesCat:
			cat, _ := m.AsCat()
			fmt.Printf("  %s sits on keyboards: %t\n", cat.Pet.Name, cat.Traits.SitsOnKeyboard)
		}
	}

	return nil
}

// seed populates the world with the demo menagerie.
func seed(ctx context.Context, g *gateway.Gateway) error {
	dogs := []gateway.DogParams{
		{Name: "Shippen", HairColor: "gray", Breed: "schnauzer", HasHair: true, TailLength: 2.0, CommandsKnown: 42},
		{Name: "Sophie", HairColor: "blond", Breed: "schnauzer", HasHair: true, TailLength: 2.0, CommandsKnown: 56},
		{Name: "Waterloo", HairColor: "blond", Breed: "labrador", HasHair: true, TailLength: 12.0, CommandsKnown: 4},
	}
	for _, params := range dogs {
		if _, err := g.CreateDog(ctx, params); err != nil {
			return err
		}
	}
	cats := []gateway.CatParams{
		{Name: "Berlioz", HairColor: "black", Breed: "shorthair", HasHair: true, Declawed: true, SitsOnKeyboard: false},
		{Name: "Simba", HairColor: "blond", Breed: "shorthair", HasHair: true, Declawed: true, SitsOnKeyboard: true},
	}
	for _, params := range cats {
		if _, err := g.CreateCat(ctx, params); err != nil {
			return err
		}
	}
	return nil
}

func section(title string) {
	fmt.Printf("\n%s\n%s\n", title, strings.Repeat("-", 70))
}
