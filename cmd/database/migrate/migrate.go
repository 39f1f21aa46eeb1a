package migration

import (
	"fmt"
	"log"

	"foodgram-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Follow{}); err != nil {
		log.Fatalf("Error migrating follow database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Tag{}); err != nil {
		log.Fatalf("Error migrating tag database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.TagToRecipe{}); err != nil {
		log.Fatalf("Error migrating tag edge database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.IngredientInRecipe{}); err != nil {
		log.Fatalf("Error migrating ingredient edge database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Favorite{}); err != nil {
		log.Fatalf("Error migrating favorite database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Cart{}); err != nil {
		log.Fatalf("Error migrating cart database: %v", err)
		return err
	}

	// Self-follows are rejected in the service layer too; this keeps the
	// invariant even for writes that bypass the API.
	db.Exec(`
		ALTER TABLE follows
		DROP CONSTRAINT IF EXISTS no_self_follow;
	`)
	db.Exec(`
		ALTER TABLE follows
		ADD CONSTRAINT no_self_follow CHECK (subscriber_id <> subscribed_to_id);
	`)

	fmt.Println("Database migration complete")
	return nil
}
