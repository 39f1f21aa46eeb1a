package domain

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validCreateRequest() CreateRecipeRequest {
	return CreateRecipeRequest{
		Name:        "Soup",
		Text:        "Boil everything.",
		CookingTime: 30,
		Tags:        []string{uuid.New().String()},
		Ingredients: []RecipeIngredientRequest{
			{ID: uuid.New().String(), Amount: 100},
		},
	}
}

func TestCreateRecipeRequestCookingTimeBounds(t *testing.T) {
	validate := validator.New()

	cases := []struct {
		cookingTime int
		valid       bool
	}{
		{0, false},
		{1, true},
		{32000, true},
		{32001, false},
	}

	for _, tc := range cases {
		req := validCreateRequest()
		req.CookingTime = tc.cookingTime
		err := validate.Struct(req)
		if tc.valid {
			assert.NoError(t, err, "cooking_time %d", tc.cookingTime)
		} else {
			assert.Error(t, err, "cooking_time %d", tc.cookingTime)
		}
	}
}

func TestCreateRecipeRequestAmountBounds(t *testing.T) {
	validate := validator.New()

	cases := []struct {
		amount int
		valid  bool
	}{
		{0, false},
		{1, true},
		{32000, true},
		{32001, false},
	}

	for _, tc := range cases {
		req := validCreateRequest()
		req.Ingredients[0].Amount = tc.amount
		err := validate.Struct(req)
		if tc.valid {
			assert.NoError(t, err, "amount %d", tc.amount)
		} else {
			assert.Error(t, err, "amount %d", tc.amount)
		}
	}
}

func TestCreateRecipeRequestRequiresTagsAndIngredients(t *testing.T) {
	validate := validator.New()

	req := validCreateRequest()
	req.Tags = nil
	assert.Error(t, validate.Struct(req))

	req = validCreateRequest()
	req.Ingredients = nil
	assert.Error(t, validate.Struct(req))

	req = validCreateRequest()
	req.Tags = []string{"not-a-uuid"}
	assert.Error(t, validate.Struct(req))
}

func TestUpdateRecipeRequestAllowsEmptyIngredients(t *testing.T) {
	validate := validator.New()

	req := UpdateRecipeRequest{
		Name:        "Soup",
		Text:        "Boil everything.",
		CookingTime: 30,
		Tags:        []string{uuid.New().String()},
	}
	assert.NoError(t, validate.Struct(req))
}

func TestCreateTagRequestColor(t *testing.T) {
	validate := validator.New()

	assert.NoError(t, validate.Struct(CreateTagRequest{Name: "Breakfast", Color: "#E26C2D"}))
	assert.Error(t, validate.Struct(CreateTagRequest{Name: "Breakfast", Color: "orange"}))
	assert.Error(t, validate.Struct(CreateTagRequest{Name: "Breakfast", Color: "#FFF"}))
}
