package meal

// Protein identifies the primary protein category of a meal. The empty
// value means the meal has no protein category (e.g. vegetarian dishes).
type Protein string

const (
	ProteinNone    Protein = ""
	ProteinBeef    Protein = "beef"
	ProteinChicken Protein = "chicken"
	ProteinFish    Protein = "fish"
	ProteinLamb    Protein = "lamb"
	ProteinPork    Protein = "pork"
	ProteinTurkey  Protein = "turkey"
)

// Meal describes a single dish in the catalog. Meals are immutable
// reference data: built once at startup and only ever read afterwards.
type Meal struct {
	Name          string  `json:"name" validate:"required"`
	Protein       Protein `json:"protein,omitempty" validate:"omitempty,oneof=beef chicken fish lamb pork turkey"`
	Favourite     bool    `json:"favourite,omitempty"`
	Pasta         bool    `json:"pasta,omitempty"`
	Roast         bool    `json:"roast,omitempty"`
	TimeConsuming bool    `json:"time_consuming,omitempty"`

	// Ingredients maps ingredient name to a quantity description,
	// e.g. "Onion" -> "1". Consumed by the shopping list builder.
	Ingredients map[string]string `json:"ingredients,omitempty"`
}

// IsFish reports whether the meal is a fish dish.
func (m Meal) IsFish() bool {
	return m.Protein == ProteinFish
}
