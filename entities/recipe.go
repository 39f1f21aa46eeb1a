package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AuthorID    uuid.UUID `gorm:"type:uuid;index:idx_recipe_text_author,unique" json:"author_id"`
	Name        string    `gorm:"type:varchar(128)" json:"name"`
	Text        string    `gorm:"type:text;index:idx_recipe_text_author,unique" json:"text"`
	CookingTime int       `json:"cooking_time"`
	ImageURL    string    `json:"image_url,omitempty"`

	Author      *User                `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Tags        []TagToRecipe        `gorm:"foreignKey:RecipeID" json:"-"`
	Ingredients []IngredientInRecipe `gorm:"foreignKey:RecipeID" json:"-"`
	Timestamp
}

type Favorite struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index:idx_favorite_user_recipe,unique" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index:idx_favorite_user_recipe,unique" json:"recipe_id"`

	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

type Cart struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index:idx_cart_user_recipe,unique" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index:idx_cart_user_recipe,unique" json:"recipe_id"`

	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}
