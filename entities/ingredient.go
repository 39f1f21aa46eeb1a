package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `gorm:"type:varchar(64);index:idx_ingredient_name_unit,unique" json:"name"`
	MeasurementUnit string    `gorm:"type:varchar(32);index:idx_ingredient_name_unit,unique" json:"measurement_unit"`

	Timestamp
}

// IngredientInRecipe carries the amount of one ingredient in one recipe.
// Deliberately no unique (recipe, ingredient) pair: duplicate ingredient ids
// in a create request produce duplicate rows.
type IngredientInRecipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;index" json:"ingredient_id"`
	Amount       int       `json:"amount"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
}
