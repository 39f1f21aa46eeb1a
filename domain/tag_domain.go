package domain

import (
	"errors"
)

var (
	MessageSuccessGetTags        = "success get tags"
	MessageSuccessGetTagDetail   = "success get tag detail"
	MessageSuccessCreateTag      = "tag created successfully"
	MessageSuccessGetIngredients = "success get ingredients"
	MessageSuccessGetIngredient  = "success get ingredient detail"

	MessageFailedGetTags        = "failed to get tags"
	MessageFailedGetTagDetail   = "failed to get tag detail"
	MessageFailedCreateTag      = "failed to create tag"
	MessageFailedGetIngredients = "failed to get ingredients"
	MessageFailedGetIngredient  = "failed to get ingredient detail"

	ErrTagNotFound        = errors.New("tag not found")
	ErrTagAlreadyExists   = errors.New("tag already exists")
	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	CreateTagRequest struct {
		Name  string `json:"name" validate:"required,max=64"`
		Color string `json:"color" validate:"required,len=7,hexcolor"`
	}

	TagResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Slug  string `json:"slug"`
	}

	IngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}
)
