package recipe

import (
	"testing"

	"foodgram-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func edge(name, unit string, amount int) *entities.IngredientInRecipe {
	return &entities.IngredientInRecipe{
		ID:     uuid.New(),
		Amount: amount,
		Ingredient: &entities.Ingredient{
			ID:              uuid.New(),
			Name:            name,
			MeasurementUnit: unit,
		},
	}
}

func TestBuildShoppingListSumsByName(t *testing.T) {
	list := BuildShoppingList([]*entities.IngredientInRecipe{
		edge("Salt", "g", 5),
		edge("Flour", "g", 200),
		edge("Salt", "g", 10),
	})

	assert.Equal(t, "Salt - 15 g\nFlour - 200 g", list)
}

func TestBuildShoppingListFirstSeenUnitWins(t *testing.T) {
	list := BuildShoppingList([]*entities.IngredientInRecipe{
		edge("Milk", "ml", 100),
		edge("Milk", "l", 2),
	})

	assert.Equal(t, "Milk - 102 ml", list)
}

func TestBuildShoppingListKeepsFirstSeenOrder(t *testing.T) {
	list := BuildShoppingList([]*entities.IngredientInRecipe{
		edge("Eggs", "pcs", 2),
		edge("Butter", "g", 50),
		edge("Eggs", "pcs", 4),
		edge("Sugar", "g", 30),
	})

	assert.Equal(t, "Eggs - 6 pcs\nButter - 50 g\nSugar - 30 g", list)
}

func TestBuildShoppingListEmptyCart(t *testing.T) {
	assert.Equal(t, "", BuildShoppingList(nil))
}

func TestBuildShoppingListSkipsEdgesWithoutIngredient(t *testing.T) {
	list := BuildShoppingList([]*entities.IngredientInRecipe{
		{ID: uuid.New(), Amount: 3},
		edge("Salt", "g", 5),
	})

	assert.Equal(t, "Salt - 5 g", list)
}
