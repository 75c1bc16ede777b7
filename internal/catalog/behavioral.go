package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/conneroisu/gopatterns/behavioral"
	"github.com/conneroisu/gopatterns/internal/types"
)

func behavioralPatterns() []*types.PatternInfo {
	return []*types.PatternInfo{
		{
			Slug:     "chain-of-responsibility",
			Name:     "Chain of Responsibility",
			Category: types.CategoryBehavioral,
			Intent:   "Pass a request along a chain of handlers until one handles it.",
			Participants: []types.Participant{
				{Role: "Handler", Element: "behavioral.SupportHandler"},
			},
			Demo: demoChain,
		},
		{
			Slug:        "command",
			Name:        "Command",
			Category:    types.CategoryBehavioral,
			Intent:      "Encapsulate a request as an object, supporting undoable operations.",
			AlsoKnownAs: []string{"Action", "Transaction"},
			Participants: []types.Participant{
				{Role: "Command", Element: "behavioral.Command"},
				{Role: "ConcreteCommand", Element: "behavioral.SwitchOn, behavioral.SwitchOff"},
				{Role: "MacroCommand", Element: "behavioral.Macro"},
				{Role: "Receiver", Element: "behavioral.Lamp"},
				{Role: "Invoker", Element: "behavioral.Remote"},
			},
			Demo: demoCommand,
		},
		{
			Slug:     "interpreter",
			Name:     "Interpreter",
			Category: types.CategoryBehavioral,
			Intent:   "Define a representation for a grammar along with an interpreter for it.",
			Participants: []types.Participant{
				{Role: "AbstractExpression", Element: "behavioral.Expr"},
				{Role: "TerminalExpression", Element: "behavioral.Number"},
				{Role: "NonterminalExpression", Element: "behavioral.Plus, behavioral.Minus"},
			},
			Demo: demoInterpreter,
		},
		{
			Slug:        "iterator",
			Name:        "Iterator",
			Category:    types.CategoryBehavioral,
			Intent:      "Access the elements of an aggregate sequentially without exposing its representation.",
			AlsoKnownAs: []string{"Cursor"},
			Participants: []types.Participant{
				{Role: "Aggregate", Element: "behavioral.NameCollection"},
				{Role: "Iterator", Element: "behavioral.NameIterator"},
			},
			Demo: demoIterator,
		},
		{
			Slug:     "mediator",
			Name:     "Mediator",
			Category: types.CategoryBehavioral,
			Intent:   "Encapsulate how a set of objects interact so they never reference each other directly.",
			Participants: []types.Participant{
				{Role: "Mediator", Element: "behavioral.FormMediator"},
				{Role: "Colleagues", Element: "behavioral.TermsCheckbox, behavioral.SubmitButton"},
			},
			Demo: demoMediator,
		},
		{
			Slug:        "memento",
			Name:        "Memento",
			Category:    types.CategoryBehavioral,
			Intent:      "Capture an object's internal state so it can be restored later, without breaking encapsulation.",
			AlsoKnownAs: []string{"Token"},
			Participants: []types.Participant{
				{Role: "Originator", Element: "behavioral.TextEditor"},
				{Role: "Memento", Element: "behavioral.Memento"},
				{Role: "Caretaker", Element: "behavioral.History"},
			},
			Demo: demoMemento,
		},
		{
			Slug:        "observer",
			Name:        "Observer",
			Category:    types.CategoryBehavioral,
			Intent:      "Notify all dependents automatically when an object changes state.",
			AlsoKnownAs: []string{"Publish-Subscribe"},
			Participants: []types.Participant{
				{Role: "Subject", Element: "behavioral.NewsFeed"},
				{Role: "Observer", Element: "behavioral.Observer"},
			},
			Demo: demoObserver,
		},
		{
			Slug:     "state",
			Name:     "State",
			Category: types.CategoryBehavioral,
			Intent:   "Let an object alter its behavior when its internal state changes.",
			Participants: []types.Participant{
				{Role: "Context", Element: "behavioral.Turnstile"},
				{Role: "State", Element: "lockedState, unlockedState"},
			},
			Demo: demoState,
		},
		{
			Slug:        "strategy",
			Name:        "Strategy",
			Category:    types.CategoryBehavioral,
			Intent:      "Define a family of interchangeable algorithms behind one interface.",
			AlsoKnownAs: []string{"Policy"},
			Participants: []types.Participant{
				{Role: "Strategy", Element: "behavioral.ShippingStrategy"},
				{Role: "ConcreteStrategy", Element: "behavioral.RoadShipping, behavioral.AirShipping"},
				{Role: "Context", Element: "behavioral.Parcel"},
			},
			Demo: demoStrategy,
		},
		{
			Slug:     "template-method",
			Name:     "Template Method",
			Category: types.CategoryBehavioral,
			Intent:   "Define the skeleton of an algorithm, deferring some steps to the supplied parts.",
			Participants: []types.Participant{
				{Role: "Template", Element: "behavioral.Brew"},
				{Role: "Steps", Element: "behavioral.Brewable"},
			},
			Demo: demoTemplateMethod,
		},
		{
			Slug:     "visitor",
			Name:     "Visitor",
			Category: types.CategoryBehavioral,
			Intent:   "Represent an operation on an object structure separately from the structure itself.",
			Participants: []types.Participant{
				{Role: "Element", Element: "behavioral.Figure"},
				{Role: "Visitor", Element: "behavioral.FigureVisitor"},
				{Role: "ConcreteVisitor", Element: "behavioral.AreaVisitor, behavioral.PerimeterVisitor"},
			},
			Demo: demoVisitor,
		},
	}
}

func demoChain(w io.Writer) error {
	frontline := &behavioral.SupportHandler{Name: "frontline", MaxLevel: behavioral.SeverityLow}
	frontline.
		SetNext(&behavioral.SupportHandler{Name: "specialist", MaxLevel: behavioral.SeverityMedium}).
		SetNext(&behavioral.SupportHandler{Name: "engineer", MaxLevel: behavioral.SeverityHigh})

	for severity := behavioral.SeverityLow; severity <= behavioral.SeverityHigh; severity++ {
		fmt.Fprintln(w, frontline.Handle(severity))
	}
	return nil
}

func demoCommand(w io.Writer) error {
	lamp := &behavioral.Lamp{}
	remote := &behavioral.Remote{}

	remote.Press(&behavioral.SwitchOn{Lamp: lamp})
	fmt.Fprintf(w, "after on: %t\n", lamp.On)
	remote.UndoLast()
	fmt.Fprintf(w, "after undo: %t\n", lamp.On)

	remote.Press(behavioral.Macro{
		&behavioral.SwitchOn{Lamp: lamp},
		&behavioral.SwitchOff{Lamp: lamp},
		&behavioral.SwitchOn{Lamp: lamp},
	})
	fmt.Fprintf(w, "after macro: %t\n", lamp.On)
	remote.UndoLast()
	fmt.Fprintf(w, "after macro undo: %t\n", lamp.On)
	return nil
}

func demoInterpreter(w io.Writer) error {
	const input = "10 - 4 + 1"
	expr, err := behavioral.ParseExpr(input)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s = %d\n", input, expr.Interpret())
	return nil
}

func demoIterator(w io.Writer) error {
	it := behavioral.NewNameCollection("ada", "grace", "edsger").Iterator()
	for it.HasNext() {
		name, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, name)
	}
	if _, err := it.Next(); errors.Is(err, behavioral.ErrStopIteration) {
		fmt.Fprintln(w, "iterator exhausted")
	}
	return nil
}

func demoMediator(w io.Writer) error {
	form := behavioral.NewFormMediator()
	fmt.Fprintf(w, "submit enabled: %t\n", form.Button().Enabled)
	form.Checkbox().Set(true)
	fmt.Fprintf(w, "after accepting terms: %t\n", form.Button().Enabled)
	return nil
}

func demoMemento(w io.Writer) error {
	editor := &behavioral.TextEditor{Text: "draft one"}
	history := &behavioral.History{}

	history.Push(editor.Save())
	editor.Text = "draft two"
	if m, ok := history.Pop(); ok {
		editor.Restore(m)
	}
	fmt.Fprintf(w, "restored: %s\n", editor.Text)
	return nil
}

func demoObserver(w io.Writer) error {
	feed := &behavioral.NewsFeed{}
	first := &behavioral.Recorder{}
	second := &behavioral.Recorder{}

	feed.Subscribe(first)
	feed.Subscribe(second)
	feed.Publish("headline")
	feed.Unsubscribe(second)
	feed.Publish("update")

	fmt.Fprintf(w, "first saw %d, second saw %d\n", len(first.Seen), len(second.Seen))
	return nil
}

func demoState(w io.Writer) error {
	turnstile := behavioral.NewTurnstile()
	fmt.Fprintln(w, turnstile.Push())
	fmt.Fprintln(w, turnstile.Coin())
	fmt.Fprintln(w, turnstile.Push())
	return nil
}

func demoStrategy(w io.Writer) error {
	parcel := behavioral.NewParcel(10)
	fmt.Fprintln(w, parcel.Quote())
	parcel.SetStrategy(behavioral.AirShipping{})
	fmt.Fprintln(w, parcel.Quote())
	return nil
}

func demoTemplateMethod(w io.Writer) error {
	for _, step := range behavioral.Brew(behavioral.Tea{}) {
		fmt.Fprintln(w, step)
	}
	return nil
}

func demoVisitor(w io.Writer) error {
	figures := []behavioral.Figure{
		behavioral.Dot{},
		behavioral.Disc{Radius: 2},
		behavioral.Box{Width: 3, Height: 4},
	}
	fmt.Fprintf(w, "total area: %.2f\n", behavioral.TotalArea(figures))
	return nil
}
