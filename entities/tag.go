package entities

import (
	"github.com/google/uuid"
)

type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name  string    `gorm:"type:varchar(64);uniqueIndex" json:"name"`
	Color string    `gorm:"type:varchar(7);uniqueIndex" json:"color"`
	Slug  string    `gorm:"type:varchar(32);uniqueIndex" json:"slug"`

	Timestamp
}

type TagToRecipe struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TagID    uuid.UUID `gorm:"type:uuid;index:idx_tag_recipe,unique" json:"tag_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index:idx_tag_recipe,unique" json:"recipe_id"`

	Tag    *Tag    `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"tag,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}
