package store

import "github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"

// Document keys in the shared store. One document per store, each
// loaded whole, mutated in memory and written back whole.
const (
	CartKey    = "cart"
	SalesKey   = "sales"
	CatalogKey = "menuConfig"
)

const (
	brownie250gImage = "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=400&h=400&fit=crop&q=80"
	brownie500gImage = "https://images.unsplash.com/photo-1607920591413-4ec007e70023?w=400&h=400&fit=crop&q=80"
	brownie750gImage = "https://images.unsplash.com/photo-1606312619070-d48b4bc98fb8?w=400&h=400&fit=crop&q=80"
	brownie1kgImage  = "https://images.unsplash.com/photo-1606312619070-d48b4bc98fb8?w=400&h=400&fit=crop&q=80"

	toppingDarkImage  = "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=200&h=200&fit=crop&q=80"
	toppingLightImage = "https://images.unsplash.com/photo-1606312619070-d48b4bc98fb8?w=200&h=200&fit=crop&q=80"
	toppingNutImage   = "https://images.unsplash.com/photo-1607920591413-4ec007e70023?w=200&h=200&fit=crop&q=80"
)

// DefaultCatalog returns the fixed default menu used when no catalog
// document exists or the persisted one is unreadable. A fresh value is
// built on every call so callers can mutate it freely.
func DefaultCatalog() core.CatalogConfig {
	return core.CatalogConfig{
		Sizes: map[int]core.SizeOption{
			250:  {Price: 249, Image: brownie250gImage},
			500:  {Price: 499, Image: brownie500gImage},
			750:  {Price: 749, Image: brownie750gImage},
			1000: {Price: 999, Image: brownie1kgImage},
		},
		Toppings: map[string]core.ToppingOption{
			"Dark Chocolate":   {Price250: 30, Price500: 60, Image: toppingDarkImage},
			"White Chocolate":  {Price250: 35, Price500: 70, Image: toppingLightImage},
			"Milk Chocolate":   {Price250: 35, Price500: 70, Image: toppingDarkImage},
			"Double Chocolate": {Price250: 45, Price500: 90, Image: toppingLightImage},
			"Triple Chocolate": {Price250: 45, Price500: 90, Image: toppingDarkImage},
			"Mixed Nuts":       {Price250: 35, Price500: 70, Image: toppingNutImage},
			"Walnuts":          {Price250: 60, Price500: 120, Image: toppingNutImage},
			"Almonds":          {Price250: 30, Price500: 60, Image: toppingNutImage},
			"Oreo":             {Price250: 20, Price500: 40, Image: toppingLightImage},
			"Nutella":          {Price250: 60, Price500: 120, Image: toppingDarkImage},
			"Biscoff":          {Price250: 60, Price500: 120, Image: toppingLightImage},
			"Hazelnut":         {Price250: 55, Price500: 110, Image: toppingNutImage},
		},
	}
}
