package behavioral

// Brewable supplies the varying steps of the brewing template. Go composes
// the skeleton with an interface value instead of subclassing.
type Brewable interface {
	Ingredient() string
	Condiment() string
}

// Brew is the template method: the step order is fixed here and only the
// steps themselves vary per drink.
func Brew(b Brewable) []string {
	steps := []string{
		"boil water",
		"steep " + b.Ingredient(),
		"pour into cup",
	}
	if condiment := b.Condiment(); condiment != "" {
		steps = append(steps, "add "+condiment)
	}
	return steps
}

// Tea is one concrete drink.
type Tea struct{}

func (Tea) Ingredient() string { return "tea leaves" }
func (Tea) Condiment() string  { return "lemon" }

// Coffee is another concrete drink; it skips the optional condiment step.
type Coffee struct{}

func (Coffee) Ingredient() string { return "ground coffee" }
func (Coffee) Condiment() string  { return "" }
