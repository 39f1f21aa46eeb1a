package entities

import (
	"time"
)

const (
	CookingTimeMinValue = 1
	CookingTimeMaxValue = 32000

	IngredientAmountMin = 1
	IngredientAmountMax = 32000

	TagNameMaxLength           = 64
	TagSlugMaxLength           = 32
	IngredientNameMaxLength    = 64
	MeasurementUnitMaxLength   = 32
	RecipeNameMaxLength        = 128
	UserNameMaxLength          = 64
	SubscriptionPageSize       = 6
	SubscriptionRecipePreviews = 3
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}
