package repository

import (
	"context"
	"net/url"

	recipeserrors "misteri/internal/recipes/errors"
	"misteri/pkg/model"
	"misteri/pkg/payload"
)

const (
	categoriesPath = "/categories.php"
	filterPath     = "/filter.php"
	searchPath     = "/search.php"
	lookupPath     = "/lookup.php"
	randomPath     = "/random.php"
)

// RecipeRepository reads raw meal records from the recipe API. List
// methods return a nil slice when the API reports no results.
type RecipeRepository interface {
	Categories(ctx context.Context) ([]*model.RawCategory, error)
	FindByCategory(ctx context.Context, category string) ([]*model.RawRecipe, error)
	Search(ctx context.Context, query string) ([]*model.RawRecipe, error)
	FindByID(ctx context.Context, id string) (*model.RawRecipe, error)
	Random(ctx context.Context) (*model.RawRecipe, error)
}

type httpRecipeRepository struct {
	api Getter
}

func NewHttpRecipeRepository(api Getter) RecipeRepository {
	return &httpRecipeRepository{api: api}
}

func (r *httpRecipeRepository) Categories(ctx context.Context) ([]*model.RawCategory, error) {
	body, err := fetch(ctx, r.api, RecipeAPI, categoriesPath, nil, nil)
	if err != nil {
		return nil, err
	}
	categories, err := payload.DecodeCategories(body)
	if err != nil {
		return nil, badPayload(RecipeAPI, err)
	}
	return categories, nil
}

func (r *httpRecipeRepository) FindByCategory(ctx context.Context, category string) ([]*model.RawRecipe, error) {
	return r.meals(ctx, filterPath, url.Values{"c": {category}})
}

func (r *httpRecipeRepository) Search(ctx context.Context, query string) ([]*model.RawRecipe, error) {
	return r.meals(ctx, searchPath, url.Values{"s": {query}})
}

// FindByID returns the first meal of a lookup. The entry itself may be nil
// when the API sent a non-object element.
func (r *httpRecipeRepository) FindByID(ctx context.Context, id string) (*model.RawRecipe, error) {
	meals, err := r.meals(ctx, lookupPath, url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, recipeserrors.ErrRecipeNotFound
	}
	return meals[0], nil
}

func (r *httpRecipeRepository) Random(ctx context.Context) (*model.RawRecipe, error) {
	meals, err := r.meals(ctx, randomPath, nil)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, recipeserrors.ErrEmptyDraw
	}
	return meals[0], nil
}

func (r *httpRecipeRepository) meals(ctx context.Context, path string, query url.Values) ([]*model.RawRecipe, error) {
	body, err := fetch(ctx, r.api, RecipeAPI, path, query, nil)
	if err != nil {
		return nil, err
	}
	meals, err := payload.DecodeMeals(body)
	if err != nil {
		return nil, badPayload(RecipeAPI, err)
	}
	return meals, nil
}
