package catalog

// DealItem is one (flavor, quantity) pair inside a combo.
type DealItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Deal is a named Friday combo. DisplayPriceCents is informational only:
// the cart always prices a combo as the sum of its expanded lines, the two
// are never reconciled.
type Deal struct {
	ID                string     `json:"id"`
	Label             string     `json:"label"`
	Badge             string     `json:"badge"`
	DisplayPriceCents int        `json:"display_price_cents,omitempty"`
	Items             []DealItem `json:"items"`
}

var deals = []Deal{
	{
		ID:                "friday-trio",
		Label:             "Buy 3 Pies - Get FREE Drink!",
		Badge:             "Save with every 3 pies!",
		DisplayPriceCents: 8997,
		Items: []DealItem{
			{Name: "Chicken Mild", Quantity: 3},
			{Name: "Small Chips", Quantity: 1},
		},
	},
	{
		ID:                "friday-2chicken-1beef",
		Label:             "2 Chicken + 1 Beef Pie = FREE Drink!",
		Badge:             "Perfect combo deal!",
		DisplayPriceCents: 9997,
		Items: []DealItem{
			{Name: "Chicken Mild", Quantity: 2},
			{Name: "Beef Mild", Quantity: 1},
			{Name: "Small Chips", Quantity: 1},
		},
	},
	{
		ID:                "friday-2beef-1chicken",
		Label:             "2 Beef + 1 Chicken Pie = FREE Drink!",
		Badge:             "Beef lovers special!",
		DisplayPriceCents: 10997,
		Items: []DealItem{
			{Name: "Beef Mild", Quantity: 2},
			{Name: "Chicken Mild", Quantity: 1},
			{Name: "Small Chips", Quantity: 1},
		},
	},
}

func Deals() []Deal {
	out := make([]Deal, len(deals))
	copy(out, deals)
	return out
}

func DealByID(id string) (Deal, bool) {
	for _, d := range deals {
		if d.ID == id {
			return d, true
		}
	}
	return Deal{}, false
}
