package recipe

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/internal/utils/storage"
	"foodgram-backend/pkg/ingredient"
	"foodgram-backend/pkg/tag"
	"foodgram-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, callerID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID, callerID string) error
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int, viewerID string) ([]domain.RecipeResponse, int64, error)
		GetRecipeDetail(ctx context.Context, recipeID, viewerID string) (domain.RecipeResponse, error)

		AddFavorite(ctx context.Context, recipeID, userID string) error
		RemoveFavorite(ctx context.Context, recipeID, userID string) error
		AddToCart(ctx context.Context, recipeID, userID string) error
		RemoveFromCart(ctx context.Context, recipeID, userID string) error
		DownloadShoppingCart(ctx context.Context, userID string) (string, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		userRepository       user.UserRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	userRepository user.UserRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		userRepository:       userRepository,
		s3:                   s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error) {
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	tagIDs, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	ingredients, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	// Fast path; the (text, author) unique index remains the source of truth.
	if exists, err := s.recipeRepository.RecipeTextExists(ctx, authorID, req.Text, ""); err != nil {
		return domain.RecipeResponse{}, err
	} else if exists {
		return domain.RecipeResponse{}, domain.ErrRecipeExists
	}

	recipe := entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorUUID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe, ingredients, tagIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeResponse{}, domain.ErrRecipeExists
		}
		return domain.RecipeResponse{}, err
	}

	// Uploaded only after the insert commits, so a rejected create cannot
	// leave an orphan object in the bucket.
	if req.Image != "" {
		imageURL, err := s.uploadImage(ctx, recipe.ID.String(), req.Image)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		if err := s.recipeRepository.SetRecipeImage(ctx, recipe.ID.String(), imageURL); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	return s.GetRecipeDetail(ctx, recipe.ID.String(), authorID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, callerID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if recipe.AuthorID.String() != callerID {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	if len(req.Ingredients) == 0 {
		return domain.RecipeResponse{}, domain.ErrNoIngredients
	}

	tagIDs, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	ingredients, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if exists, err := s.recipeRepository.RecipeTextExists(ctx, callerID, req.Text, recipeID); err != nil {
		return domain.RecipeResponse{}, err
	} else if exists {
		return domain.RecipeResponse{}, domain.ErrRecipeExists
	}

	updated := entities.Recipe{
		ID:          recipe.ID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	if req.Image != "" {
		imageURL, err := s.uploadImage(ctx, recipe.ID.String(), req.Image)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		updated.ImageURL = imageURL
	}

	if err := s.recipeRepository.ReplaceRecipe(ctx, &updated, ingredients, tagIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeResponse{}, domain.ErrRecipeExists
		}
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeDetail(ctx, recipeID, callerID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID, callerID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.AuthorID.String() != callerID {
		return domain.ErrUnauthorizedRecipeAccess
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int, viewerID string) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, viewerID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		shaped, err := s.shapeRecipe(ctx, recipe, viewerID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, shaped)
	}
	return result, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID, viewerID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return s.shapeRecipe(ctx, recipe, viewerID)
}

func (s *recipeService) AddFavorite(ctx context.Context, recipeID, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if favorited, err := s.recipeRepository.IsFavorited(ctx, userID, recipeID); err != nil {
		return err
	} else if favorited {
		return domain.ErrAlreadyFavorited
	}

	if err := s.recipeRepository.AddFavorite(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

func (s *recipeService) RemoveFavorite(ctx context.Context, recipeID, userID string) error {
	rows, err := s.recipeRepository.RemoveFavorite(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

func (s *recipeService) AddToCart(ctx context.Context, recipeID, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if inCart, err := s.recipeRepository.IsInCart(ctx, userID, recipeID); err != nil {
		return err
	} else if inCart {
		return domain.ErrAlreadyInCart
	}

	if err := s.recipeRepository.AddToCart(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyInCart
		}
		return err
	}
	return nil
}

func (s *recipeService) RemoveFromCart(ctx context.Context, recipeID, userID string) error {
	rows, err := s.recipeRepository.RemoveFromCart(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (s *recipeService) DownloadShoppingCart(ctx context.Context, userID string) (string, error) {
	edges, err := s.recipeRepository.GetCartIngredients(ctx, userID)
	if err != nil {
		return "", err
	}
	return BuildShoppingList(edges), nil
}

func (s *recipeService) resolveTags(ctx context.Context, ids []string) ([]uuid.UUID, error) {
	tagIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		tagID, err := uuid.Parse(id)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		tagIDs = append(tagIDs, tagID)
	}
	// Repeated tag ids collapse to one edge; the unique (tag, recipe) pair
	// would otherwise reject the insert.
	tagIDs = uniqueIDs(tagIDs)

	tags, err := s.tagRepository.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, domain.ErrTagNotFound
	}
	return tagIDs, nil
}

func (s *recipeService) resolveIngredients(ctx context.Context, reqs []domain.RecipeIngredientRequest) ([]entities.IngredientInRecipe, error) {
	ids := make([]uuid.UUID, 0, len(reqs))
	edges := make([]entities.IngredientInRecipe, 0, len(reqs))
	for _, req := range reqs {
		ingredientID, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		ids = append(ids, ingredientID)
		// Duplicate ids in the request intentionally produce duplicate edges.
		edges = append(edges, entities.IngredientInRecipe{
			ID:           uuid.New(),
			IngredientID: ingredientID,
			Amount:       req.Amount,
		})
	}

	found, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(uniqueIDs(ids)) {
		return nil, domain.ErrIngredientNotFound
	}
	return edges, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func (s *recipeService) shapeRecipe(ctx context.Context, recipe *entities.Recipe, viewerID string) (domain.RecipeResponse, error) {
	isFavorited, isInCart := false, false
	isSubscribed := false
	if viewerID != "" {
		var err error
		if isFavorited, err = s.recipeRepository.IsFavorited(ctx, viewerID, recipe.ID.String()); err != nil {
			return domain.RecipeResponse{}, err
		}
		if isInCart, err = s.recipeRepository.IsInCart(ctx, viewerID, recipe.ID.String()); err != nil {
			return domain.RecipeResponse{}, err
		}
		if isSubscribed, err = s.userRepository.IsSubscribed(ctx, viewerID, recipe.AuthorID.String()); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	author := domain.UserResponse{ID: recipe.AuthorID.String(), IsSubscribed: isSubscribed}
	if recipe.Author != nil {
		author.Username = recipe.Author.Username
		author.Email = recipe.Author.Email
		author.FirstName = recipe.Author.FirstName
		author.LastName = recipe.Author.LastName
	}

	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, edge := range recipe.Tags {
		if edge.Tag == nil {
			continue
		}
		tags = append(tags, domain.TagResponse{
			ID:    edge.Tag.ID.String(),
			Name:  edge.Tag.Name,
			Color: edge.Tag.Color,
			Slug:  edge.Tag.Slug,
		})
	}

	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, edge := range recipe.Ingredients {
		item := domain.RecipeIngredientResponse{
			ID:     edge.IngredientID.String(),
			Amount: edge.Amount,
		}
		if edge.Ingredient != nil {
			item.Name = edge.Ingredient.Name
			item.MeasurementUnit = edge.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, item)
	}

	return domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Name:             recipe.Name,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
		ImageURL:         recipe.ImageURL,
		Author:           author,
		Tags:             tags,
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		CreatedAt:        recipe.CreatedAt,
	}, nil
}

// uploadImage decodes a data-URI or raw base64 payload and stores it through
// the object storage collaborator.
func (s *recipeService) uploadImage(ctx context.Context, recipeID, image string) (string, error) {
	contentType := "image/png"
	payload := image

	if strings.HasPrefix(image, "data:") {
		parts := strings.SplitN(image, ",", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("invalid image payload")
		}
		meta := strings.TrimPrefix(parts[0], "data:")
		contentType = strings.TrimSuffix(strings.SplitN(meta, ";", 2)[0], ";")
		payload = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("invalid image payload: %w", err)
	}

	ext := "png"
	if idx := strings.Index(contentType, "/"); idx >= 0 && idx+1 < len(contentType) {
		ext = contentType[idx+1:]
	}

	key := fmt.Sprintf("recipes/image/%s.%s", recipeID, ext)
	return s.s3.UploadFile(ctx, key, data, contentType)
}
