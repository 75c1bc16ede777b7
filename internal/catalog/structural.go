package catalog

import (
	"fmt"
	"io"

	"github.com/conneroisu/gopatterns/internal/types"
	"github.com/conneroisu/gopatterns/structural"
)

func structuralPatterns() []*types.PatternInfo {
	return []*types.PatternInfo{
		{
			Slug:        "adapter",
			Name:        "Adapter",
			Category:    types.CategoryStructural,
			Intent:      "Convert the interface of a type into another interface clients expect.",
			AlsoKnownAs: []string{"Wrapper"},
			Participants: []types.Participant{
				{Role: "Target", Element: "structural.Printer"},
				{Role: "Adaptee", Element: "structural.LegacyPrinter"},
				{Role: "Adapter", Element: "structural.PrinterAdapter"},
			},
			Demo: demoAdapter,
		},
		{
			Slug:        "bridge",
			Name:        "Bridge",
			Category:    types.CategoryStructural,
			Intent:      "Decouple an abstraction from its implementation so the two vary independently.",
			AlsoKnownAs: []string{"Handle/Body"},
			Participants: []types.Participant{
				{Role: "Abstraction", Element: "structural.CircleFigure"},
				{Role: "Implementor", Element: "structural.Sketcher"},
				{Role: "ConcreteImplementor", Element: "structural.VectorSketcher, structural.RasterSketcher"},
			},
			Demo: demoBridge,
		},
		{
			Slug:     "composite",
			Name:     "Composite",
			Category: types.CategoryStructural,
			Intent:   "Compose objects into tree structures and treat leaves and composites uniformly.",
			Participants: []types.Participant{
				{Role: "Component", Element: "structural.Entry"},
				{Role: "Leaf", Element: "structural.File"},
				{Role: "Composite", Element: "structural.Folder"},
			},
			Demo: demoComposite,
		},
		{
			Slug:        "decorator",
			Name:        "Decorator",
			Category:    types.CategoryStructural,
			Intent:      "Attach additional responsibilities to an object dynamically.",
			AlsoKnownAs: []string{"Wrapper"},
			Participants: []types.Participant{
				{Role: "Component", Element: "structural.Window"},
				{Role: "ConcreteComponent", Element: "structural.PlainWindow"},
				{Role: "Decorator", Element: "structural.BorderDecorator, structural.ScrollDecorator"},
			},
			Demo: demoDecorator,
		},
		{
			Slug:     "facade",
			Name:     "Facade",
			Category: types.CategoryStructural,
			Intent:   "Provide a unified interface to a set of interfaces in a subsystem.",
			Participants: []types.Participant{
				{Role: "Facade", Element: "structural.HomeTheater"},
				{Role: "Subsystems", Element: "amplifier, projector, lights"},
			},
			Demo: demoFacade,
		},
		{
			Slug:     "flyweight",
			Name:     "Flyweight",
			Category: types.CategoryStructural,
			Intent:   "Share fine-grained state between many objects instead of storing it in each.",
			Participants: []types.Participant{
				{Role: "Flyweight", Element: "structural.TreeKind"},
				{Role: "FlyweightFactory", Element: "structural.TreeKindFactory"},
				{Role: "Context", Element: "structural.Tree"},
			},
			Demo: demoFlyweight,
		},
		{
			Slug:        "proxy",
			Name:        "Proxy",
			Category:    types.CategoryStructural,
			Intent:      "Provide a placeholder for another object to control access to it.",
			AlsoKnownAs: []string{"Surrogate"},
			Participants: []types.Participant{
				{Role: "Subject", Element: "structural.Image"},
				{Role: "RealSubject", Element: "structural.RealImage"},
				{Role: "Proxy", Element: "structural.ImageProxy"},
			},
			Demo: demoProxy,
		},
	}
}

func demoAdapter(w io.Writer) error {
	var printer structural.Printer = structural.PrinterAdapter{Legacy: structural.LegacyPrinter{}}
	fmt.Fprintln(w, printer.Print("hello"))
	return nil
}

func demoBridge(w io.Writer) error {
	circle := structural.CircleFigure{Radius: 2, Sketcher: structural.VectorSketcher{}}
	fmt.Fprintln(w, circle.Draw())
	circle.Sketcher = structural.RasterSketcher{}
	fmt.Fprintln(w, circle.Grow(2).Draw())
	return nil
}

func demoComposite(w io.Writer) error {
	root := structural.NewFolder("root",
		structural.NewFolder("photos",
			structural.File{FileName: "a.jpg", Bytes: 1200},
			structural.File{FileName: "b.jpg", Bytes: 800},
		),
		structural.File{FileName: "readme.txt", Bytes: 50},
	)
	fmt.Fprintf(w, "%s totals %d bytes\n", root.Name(), root.Size())
	return nil
}

func demoDecorator(w io.Writer) error {
	var window structural.Window = structural.PlainWindow{}
	window = structural.BorderDecorator{Inner: window}
	window = structural.ScrollDecorator{Inner: window}
	fmt.Fprintln(w, window.Describe())
	return nil
}

func demoFacade(w io.Writer) error {
	theater := structural.NewHomeTheater()
	for _, line := range theater.WatchMovie("Metropolis") {
		fmt.Fprintln(w, line)
	}
	return nil
}

func demoFlyweight(w io.Writer) error {
	factory := structural.NewTreeKindFactory()
	for i := 0; i < 1000; i++ {
		_ = structural.Tree{X: i, Y: i, Kind: factory.Kind("oak", "green")}
	}
	fmt.Fprintf(w, "1000 trees share %d kind(s)\n", factory.Count())
	return nil
}

func demoProxy(w io.Writer) error {
	proxy := &structural.ImageProxy{Path: "cat.png"}
	fmt.Fprintf(w, "loaded before display: %t\n", proxy.Real() != nil)
	fmt.Fprintln(w, proxy.Display())
	fmt.Fprintf(w, "loaded after display: %t\n", proxy.Real() != nil)
	return nil
}
