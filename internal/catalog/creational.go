package catalog

import (
	"fmt"
	"io"

	"github.com/conneroisu/gopatterns/creational"
	"github.com/conneroisu/gopatterns/internal/types"
)

func creationalPatterns() []*types.PatternInfo {
	return []*types.PatternInfo{
		{
			Slug:     "singleton",
			Name:     "Singleton",
			Category: types.CategoryCreational,
			Intent:   "Ensure a type has one instance and provide a global point of access to it.",
			Participants: []types.Participant{
				{Role: "Singleton", Element: "creational.AuditLog"},
				{Role: "Accessor", Element: "creational.SharedAuditLog"},
			},
			Demo: demoSingleton,
		},
		{
			Slug:     "builder",
			Name:     "Builder",
			Category: types.CategoryCreational,
			Intent:   "Separate the construction of a complex object from its representation.",
			Participants: []types.Participant{
				{Role: "Builder", Element: "creational.HouseBuilder"},
				{Role: "Director", Element: "creational.Director"},
				{Role: "Product", Element: "creational.House"},
			},
			Demo: demoBuilder,
		},
		{
			Slug:        "factory-method",
			Name:        "Factory Method",
			Category:    types.CategoryCreational,
			Intent:      "Define an interface for creating an object, letting the factory decide the concrete type.",
			AlsoKnownAs: []string{"Virtual Constructor"},
			Participants: []types.Participant{
				{Role: "Product", Element: "creational.Shape"},
				{Role: "ConcreteProduct", Element: "creational.Circle, creational.Square"},
				{Role: "Creator", Element: "creational.NewShape"},
			},
			Demo: demoFactoryMethod,
		},
		{
			Slug:        "abstract-factory",
			Name:        "Abstract Factory",
			Category:    types.CategoryCreational,
			Intent:      "Provide an interface for creating families of related objects without naming their concrete types.",
			AlsoKnownAs: []string{"Kit"},
			Participants: []types.Participant{
				{Role: "AbstractFactory", Element: "creational.WidgetFactory"},
				{Role: "ConcreteFactory", Element: "creational.DarkFactory, creational.LightFactory"},
				{Role: "AbstractProduct", Element: "creational.Button, creational.Checkbox"},
			},
			Demo: demoAbstractFactory,
		},
		{
			Slug:     "prototype",
			Name:     "Prototype",
			Category: types.CategoryCreational,
			Intent:   "Create new objects by copying a prototypical instance.",
			Participants: []types.Participant{
				{Role: "Prototype", Element: "creational.Report"},
				{Role: "Clone operation", Element: "(*creational.Report).Clone"},
			},
			Demo: demoPrototype,
		},
	}
}

func demoSingleton(w io.Writer) error {
	first := creational.SharedAuditLog()
	second := creational.SharedAuditLog()
	fmt.Fprintf(w, "both accesses share one instance: %t\n", first == second)
	first.Record("demo entry")
	fmt.Fprintf(w, "entries visible through either handle: %d\n", len(second.Lines()))
	return nil
}

func demoBuilder(w io.Writer) error {
	var director creational.Director
	cottage := director.Cottage()
	fmt.Fprintf(w, "cottage: %d walls, %s roof, garden=%t\n", cottage.Walls, cottage.Roof, cottage.HasGarden)

	custom := creational.NewHouseBuilder().Walls(5).Doors(2).Roof("slate").Build()
	fmt.Fprintf(w, "custom: %d walls, %d doors, %s roof\n", custom.Walls, custom.Doors, custom.Roof)
	return nil
}

func demoFactoryMethod(w io.Writer) error {
	for _, kind := range []string{"circle", "square"} {
		shape, err := creational.NewShape(kind, 2)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s area: %.2f\n", shape.Name(), shape.Area())
	}
	return nil
}

func demoAbstractFactory(w io.Writer) error {
	for _, theme := range []string{"dark", "light"} {
		factory, err := creational.FactoryFor(theme)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, factory.NewButton().Press())
		fmt.Fprintln(w, factory.NewCheckbox().Toggle())
	}
	return nil
}

func demoPrototype(w io.Writer) error {
	original := &creational.Report{
		Title:    "Quarterly",
		Sections: []string{"intro"},
		Labels:   map[string]string{"owner": "ops"},
	}
	clone := original.Clone()
	clone.Title = "Annual"
	clone.Sections[0] = "overview"

	fmt.Fprintf(w, "original untouched: %s / %s\n", original.Title, original.Sections[0])
	fmt.Fprintf(w, "clone diverged: %s / %s\n", clone.Title, clone.Sections[0])
	return nil
}
