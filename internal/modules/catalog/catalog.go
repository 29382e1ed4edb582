// Package catalog holds the fixed Heavenly Pies menu. Items are defined at
// process start and never mutated; pricing is in ZAR cents.
package catalog

type Item struct {
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	Category   string `json:"category"`
	Available  bool   `json:"available"`
	IsNew      bool   `json:"is_new"`
	IsSpicy    bool   `json:"is_spicy"`
}

var items = []Item{
	{Name: "Chicken Mild", PriceCents: 2999, Category: "pie", Available: true},
	{Name: "Chicken Hot", PriceCents: 2999, Category: "pie", Available: true, IsSpicy: true},
	{Name: "Beef Mild", PriceCents: 3999, Category: "pie", Available: true},
	{Name: "Beef Hot", PriceCents: 3999, Category: "pie", Available: true, IsSpicy: true},
	{Name: "Chicken and Mushroom", PriceCents: 3499, Category: "pie", Available: true, IsNew: true},
	{Name: "Cheesy Chicken Pie", PriceCents: 3499, Category: "pie", Available: true, IsNew: true},
	{Name: "Chips Rolls", PriceCents: 2499, Category: "roll", Available: true, IsNew: true},
	{Name: "Russian Roll", PriceCents: 1999, Category: "roll", Available: true, IsNew: true},
	{Name: "Wors Rolls", PriceCents: 2900, Category: "roll", Available: true},
	{Name: "Small Chips", PriceCents: 0, Category: "side", Available: true},
}

var byName = func() map[string]Item {
	m := make(map[string]Item, len(items))
	for _, it := range items {
		m[it.Name] = it
	}
	return m
}()

// List returns the menu in its display order.
func List() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Lookup returns the item for a flavor name. Unknown names return false;
// callers treat that as a no-op, never an error.
func Lookup(name string) (Item, bool) {
	it, ok := byName[name]
	return it, ok
}
