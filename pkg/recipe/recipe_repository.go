package recipe

import (
	"context"
	"errors"
	"time"

	"foodgram-backend/domain"
	"foodgram-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.IngredientInRecipe, tagIDs []uuid.UUID) error
		ReplaceRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.IngredientInRecipe, tagIDs []uuid.UUID) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID string, page, limit int) ([]*entities.Recipe, int64, error)
		DeleteRecipe(ctx context.Context, id string) error
		RecipeTextExists(ctx context.Context, authorID, text, excludeID string) (bool, error)
		SetRecipeImage(ctx context.Context, id, imageURL string) error

		AddFavorite(ctx context.Context, userID, recipeID string) error
		RemoveFavorite(ctx context.Context, userID, recipeID string) (int64, error)
		IsFavorited(ctx context.Context, userID, recipeID string) (bool, error)

		AddToCart(ctx context.Context, userID, recipeID string) error
		RemoveFromCart(ctx context.Context, userID, recipeID string) (int64, error)
		IsInCart(ctx context.Context, userID, recipeID string) (bool, error)
		GetCartIngredients(ctx context.Context, userID string) ([]*entities.IngredientInRecipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.IngredientInRecipe, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}

		edges := tagEdges(recipe.ID, tagIDs)
		return tx.Create(&edges).Error
	})
}

// ReplaceRecipe wipes and reinserts both edge sets and updates the scalar
// fields in one transaction, so concurrent readers only ever observe the old
// set or the new set. Tag edges go first, ingredient edges second; reinsert
// runs in the reverse order.
func (r *recipeRepository) ReplaceRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.IngredientInRecipe, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.TagToRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.IngredientInRecipe{}).Error; err != nil {
			return err
		}

		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}
		edges := tagEdges(recipe.ID, tagIDs)
		if err := tx.Create(&edges).Error; err != nil {
			return err
		}

		// Updates with a struct skips zero values, which keeps the stored
		// image when no new one was supplied.
		return tx.Model(&entities.Recipe{ID: recipe.ID}).Updates(entities.Recipe{
			Name:        recipe.Name,
			Text:        recipe.Text,
			CookingTime: recipe.CookingTime,
			ImageURL:    recipe.ImageURL,
		}).Error
	})
}

func tagEdges(recipeID uuid.UUID, tagIDs []uuid.UUID) []entities.TagToRecipe {
	edges := make([]entities.TagToRecipe, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		edges = append(edges, entities.TagToRecipe{
			ID:       uuid.New(),
			TagID:    tagID,
			RecipeID: recipeID,
		})
	}
	return edges
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags.Tag").
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})

	if len(filter.TagSlugs) > 0 {
		// At-least-one-tag semantics: membership, not subset.
		query = query.Where("recipes.id IN (?)", r.db.
			Model(&entities.TagToRecipe{}).
			Select("tag_to_recipes.recipe_id").
			Joins("JOIN tags ON tags.id = tag_to_recipes.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs))
	}

	if filter.AuthorID != "" {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}

	if filter.OnlyFavorited && viewerID != "" {
		query = query.Where("recipes.id IN (?)", r.db.
			Model(&entities.Favorite{}).
			Select("recipe_id").
			Where("user_id = ?", viewerID))
	}

	if filter.OnlyInCart && viewerID != "" {
		query = query.Where("recipes.id IN (?)", r.db.
			Model(&entities.Cart{}).
			Select("recipe_id").
			Where("user_id = ?", viewerID))
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Author").
		Preload("Tags.Tag").
		Preload("Ingredients.Ingredient").
		Order("recipes.created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.Recipe{}, "id = ?", id).Error
}

func (r *recipeRepository) RecipeTextExists(ctx context.Context, authorID, text, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("author_id = ? AND text = ?", authorID, text)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) SetRecipeImage(ctx context.Context, id, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

func (r *recipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	favorite := entities.Favorite{
		ID:        uuid.New(),
		UserID:    userUUID,
		RecipeID:  recipeUUID,
		CreatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).Create(&favorite).Error
}

func (r *recipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{})
	return result.RowsAffected, result.Error
}

func (r *recipeRepository) IsFavorited(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) AddToCart(ctx context.Context, userID, recipeID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	item := entities.Cart{
		ID:        uuid.New(),
		UserID:    userUUID,
		RecipeID:  recipeUUID,
		CreatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).Create(&item).Error
}

func (r *recipeRepository) RemoveFromCart(ctx context.Context, userID, recipeID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Cart{})
	return result.RowsAffected, result.Error
}

func (r *recipeRepository) IsInCart(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Cart{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetCartIngredients(ctx context.Context, userID string) ([]*entities.IngredientInRecipe, error) {
	var edges []*entities.IngredientInRecipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Joins("JOIN carts ON carts.recipe_id = ingredient_in_recipes.recipe_id").
		Where("carts.user_id = ?", userID).
		Order("ingredient_in_recipes.id").
		Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

// IsNotFound reports whether err is the storage-level missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
