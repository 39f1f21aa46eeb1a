package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"foodgram-backend/entities"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var defaultTags = []struct {
	Name  string
	Color string
}{
	{"Breakfast", "#E26C2D"},
	{"Lunch", "#49B64E"},
	{"Dinner", "#8775D2"},
}

type ingredientRow struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// Seed loads the default tag set and, when a data file is given, the
// ingredient catalog. Existing rows are left untouched.
func Seed(db *gorm.DB, ingredientsPath string) error {
	for _, t := range defaultTags {
		tag := entities.Tag{
			Name:  t.Name,
			Color: t.Color,
			Slug:  slug.Make(t.Name),
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error; err != nil {
			return fmt.Errorf("seeding tag %q: %w", t.Name, err)
		}
	}

	if ingredientsPath == "" {
		return nil
	}

	raw, err := os.ReadFile(ingredientsPath)
	if err != nil {
		return fmt.Errorf("reading ingredient data: %w", err)
	}
	var rows []ingredientRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("parsing ingredient data: %w", err)
	}

	for _, row := range rows {
		ingredient := entities.Ingredient{
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&ingredient).Error; err != nil {
			return fmt.Errorf("seeding ingredient %q: %w", row.Name, err)
		}
	}

	fmt.Printf("Database seeding complete (%d ingredients)\n", len(rows))
	return nil
}
