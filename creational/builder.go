package creational

// House is the builder pattern's toy product.
type House struct {
	Walls     int
	Doors     int
	Windows   int
	Roof      string
	HasGarage bool
	HasGarden bool
}

// HouseBuilder assembles a House step by step. Each step returns the builder
// so construction reads as a chain.
type HouseBuilder struct {
	house House
}

// NewHouseBuilder starts a build with nothing assembled yet.
func NewHouseBuilder() *HouseBuilder {
	return &HouseBuilder{}
}

// Walls sets the wall count.
func (b *HouseBuilder) Walls(n int) *HouseBuilder {
	b.house.Walls = n
	return b
}

// Doors sets the door count.
func (b *HouseBuilder) Doors(n int) *HouseBuilder {
	b.house.Doors = n
	return b
}

// Windows sets the window count.
func (b *HouseBuilder) Windows(n int) *HouseBuilder {
	b.house.Windows = n
	return b
}

// Roof picks the roof style.
func (b *HouseBuilder) Roof(style string) *HouseBuilder {
	b.house.Roof = style
	return b
}

// Garage adds a garage.
func (b *HouseBuilder) Garage() *HouseBuilder {
	b.house.HasGarage = true
	return b
}

// Garden adds a garden.
func (b *HouseBuilder) Garden() *HouseBuilder {
	b.house.HasGarden = true
	return b
}

// Build returns the assembled House.
func (b *HouseBuilder) Build() House {
	return b.house
}

// Director knows the build recipes for the documented presets.
type Director struct{}

// Cottage builds the small preset.
func (Director) Cottage() House {
	return NewHouseBuilder().
		Walls(4).
		Doors(1).
		Windows(4).
		Roof("thatched").
		Garden().
		Build()
}

// Villa builds the large preset.
func (Director) Villa() House {
	return NewHouseBuilder().
		Walls(8).
		Doors(3).
		Windows(12).
		Roof("tiled").
		Garage().
		Garden().
		Build()
}
