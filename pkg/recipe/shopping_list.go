package recipe

import (
	"fmt"
	"strings"

	"foodgram-backend/entities"
)

// BuildShoppingList collapses cart ingredient edges into one line per
// ingredient name. Buckets are keyed by name, not id: two ingredients that
// share a name are summed together and the first-seen measurement unit wins.
// Lines come out in first-seen order.
func BuildShoppingList(edges []*entities.IngredientInRecipe) string {
	type bucket struct {
		unit  string
		total int
	}

	buckets := make(map[string]*bucket, len(edges))
	var order []string

	for _, edge := range edges {
		if edge.Ingredient == nil {
			continue
		}
		name := edge.Ingredient.Name
		b, ok := buckets[name]
		if !ok {
			b = &bucket{unit: edge.Ingredient.MeasurementUnit}
			buckets[name] = b
			order = append(order, name)
		}
		b.total += edge.Amount
	}

	lines := make([]string, 0, len(order))
	for _, name := range order {
		b := buckets[name]
		lines = append(lines, fmt.Sprintf("%s - %d %s", name, b.total, b.unit))
	}
	return strings.Join(lines, "\n")
}
