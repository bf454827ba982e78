package gamedata

// ItemState is the physical form of an item as declared by the game docs.
type ItemState string

const (
	StateSolid  ItemState = "RF_SOLID"
	StateLiquid ItemState = "RF_LIQUID"
	StateGas    ItemState = "RF_GAS"
	StateHeat   ItemState = "RF_HEAT"
)

// Solid reports whether quantities of this state are encoded in whole units.
// Fluid and gas quantities arrive in milli-units and need the /1000 conversion.
func (s ItemState) Solid() bool {
	return s == StateSolid
}

// Building is a normalized production building. Power sign convention:
// negative = produces power (generators), positive = consumes power.
type Building struct {
	Name                    string  `json:"name"`
	Power                   float64 `json:"power"`
	PowerExponent           float64 `json:"power_exponent"`
	SomersloopMult          float64 `json:"somersloop_mult"`
	SomersloopPowerExponent float64 `json:"somersloop_power_exponent"`
	VariablePower           bool    `json:"variable_power"`
}

// Item is a normalized item. State and Energy are pipeline-internal; the
// catalog file only carries name, icon and sink.
type Item struct {
	Name   string
	Icon   string
	State  ItemState
	Energy float64
	Sink   int
}

// CountedItem is an item reference with a unit-normalized amount.
type CountedItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Recipe is a normalized production recipe. PowerConstant/PowerRange are only
// set for recipes produced in a variable-power building.
type Recipe struct {
	Name          string        `json:"name"`
	Alternate     bool          `json:"alternate"`
	Time          RecipeTime    `json:"time"`
	Building      string        `json:"building"`
	Inputs        []CountedItem `json:"inputs"`
	Outputs       []CountedItem `json:"outputs"`
	PowerConstant *float64      `json:"power_constant,omitempty"`
	PowerRange    *float64      `json:"power_range,omitempty"`
}

// Catalog is the fully normalized data set in construction order.
type Catalog struct {
	Version   string
	Buildings []Building
	Items     []Item
	Recipes   []Recipe
}
