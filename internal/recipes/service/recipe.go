package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/sourcegraph/conc/pool"

	recipeserrors "misteri/internal/recipes/errors"
	"misteri/internal/recipes/repository"
	"misteri/internal/recipes/validator"
	"misteri/pkg/config"
	apperrors "misteri/pkg/errors"
	"misteri/pkg/events"
	"misteri/pkg/middleware"
	"misteri/pkg/model"
	"misteri/pkg/normalizer"
)

const eventSource = "recipes"

type RecipeService interface {
	Categories(ctx context.Context) ([]model.Category, error)
	RecipesByCategory(ctx context.Context, category string) ([]model.RecipeSummary, error)
	Search(ctx context.Context, query string) ([]model.Recipe, error)
	GetByID(ctx context.Context, id string) (*model.Recipe, error)
	Gacha(ctx context.Context, count int) ([]model.Recipe, error)
}

type recipeService struct {
	repo      repository.RecipeRepository
	validator *validator.ViewValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewRecipeService(
	repo repository.RecipeRepository,
	validator *validator.ViewValidator,
	publisher events.Publisher,
	cfg *config.Config,
) RecipeService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &recipeService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *recipeService) Categories(ctx context.Context) ([]model.Category, error) {
	raws, err := s.repo.Categories(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch categories", "error", err)
		return nil, err
	}

	categories := normalizer.NormalizeCategoryList(raws, s.cfg.Log)
	valid := categories[:0]
	for i := range categories {
		if err := s.validator.ValidateCategory(&categories[i]); err != nil {
			s.cfg.Log.Warn("Dropping category that failed validation", "id", categories[i].ID, "error", err)
			continue
		}
		valid = append(valid, categories[i])
	}
	return valid, nil
}

func (s *recipeService) RecipesByCategory(ctx context.Context, category string) ([]model.RecipeSummary, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperrors.InvalidInput("category is required")
	}

	raws, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch category recipes", "category", category, "error", err)
		return nil, err
	}
	return normalizer.SummarizeRecipes(s.validRecipes(raws)), nil
}

func (s *recipeService) Search(ctx context.Context, query string) ([]model.Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.InvalidInput("search query is required")
	}

	raws, err := s.repo.Search(ctx, query)
	if err != nil {
		s.cfg.Log.Error("Failed to search recipes", "query", query, "error", err)
		return nil, err
	}
	return s.validRecipes(raws), nil
}

func (s *recipeService) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.InvalidInput("recipe id is required")
	}

	raw, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, recipeserrors.ErrRecipeNotFound) {
			return nil, apperrors.NotFoundWithID("Recipe", id)
		}
		s.cfg.Log.Error("Failed to look up recipe", "id", id, "error", err)
		return nil, err
	}

	recipe, err := s.normalize(raw)
	if err != nil {
		s.cfg.Log.Error("Recipe lookup returned an unusable record", "id", id, "error", err)
		return nil, err
	}

	s.publish(ctx, events.EventRecipeViewed, recipe)
	return &recipe, nil
}

type draw struct {
	index  int
	recipe model.Recipe
}

// Gacha draws count random recipes concurrently. Failed or empty draws are
// skipped; the call fails only when no draw succeeds. Successful draws keep
// their draw order.
func (s *recipeService) Gacha(ctx context.Context, count int) ([]model.Recipe, error) {
	if count < 0 {
		return nil, apperrors.InvalidInput("draw count cannot be negative")
	}
	draws := s.cfg.NormalizeGachaDraws(count)

	p := pool.NewWithResults[draw]().
		WithContext(ctx).
		WithMaxGoroutines(s.cfg.GachaConcurrency)

	for i := range draws {
		p.Go(func(ctx context.Context) (draw, error) {
			recipe, err := s.drawOne(ctx)
			if err != nil {
				s.cfg.Log.Warn("Skipping failed gacha draw", "draw", i, "error", err)
				return draw{}, err
			}
			return draw{index: i, recipe: recipe}, nil
		})
	}

	results, err := p.Wait()
	if len(results) == 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, apperrors.Timeout("gacha draws did not finish in time")
		}
		s.cfg.Log.Error("Every gacha draw failed", "draws", draws, "error", err)
		return nil, apperrors.Upstream(repository.RecipeAPI, errors.Join(recipeserrors.ErrNoDraws, err))
	}

	slices.SortFunc(results, func(a, b draw) int { return a.index - b.index })

	recipes := make([]model.Recipe, 0, len(results))
	for _, d := range results {
		recipes = append(recipes, d.recipe)
		s.publish(ctx, events.EventGachaDrawn, d.recipe)
	}

	s.cfg.Log.Debug("Gacha completed", "requested", draws, "succeeded", len(recipes))
	return recipes, nil
}

func (s *recipeService) drawOne(ctx context.Context) (model.Recipe, error) {
	raw, err := s.repo.Random(ctx)
	if err != nil {
		return model.Recipe{}, err
	}
	return s.normalize(raw)
}

// normalize turns a single upstream record into a validated view model. A
// record the normalizer rejects is the upstream's fault, not the caller's.
func (s *recipeService) normalize(raw *model.RawRecipe) (model.Recipe, error) {
	recipe, err := normalizer.NormalizeRecipe(raw)
	if err != nil {
		if apperrors.IsInvalidInput(err) {
			return model.Recipe{}, apperrors.Upstream(repository.RecipeAPI, err)
		}
		return model.Recipe{}, err
	}
	if err := s.validator.ValidateRecipe(&recipe); err != nil {
		return model.Recipe{}, apperrors.Internal("Normalized recipe failed validation", err)
	}
	return recipe, nil
}

func (s *recipeService) validRecipes(raws []*model.RawRecipe) []model.Recipe {
	recipes := normalizer.NormalizeRecipeList(raws, s.cfg.Log)
	valid := recipes[:0]
	for i := range recipes {
		if err := s.validator.ValidateRecipe(&recipes[i]); err != nil {
			s.cfg.Log.Warn("Dropping recipe that failed validation", "id", recipes[i].ID, "error", err)
			continue
		}
		valid = append(valid, recipes[i])
	}
	return valid
}

// publish emits a view event. Failures are logged and never reach the caller.
func (s *recipeService) publish(ctx context.Context, eventType string, recipe model.Recipe) {
	msg, err := events.NewMessage().
		WithKey(recipe.ID).
		WithEventType(eventType).
		WithSource(eventSource).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithValue(normalizer.SummarizeRecipe(recipe)).
		Build()
	if err != nil {
		s.cfg.Log.Error("Failed to build event", "event_type", eventType, "recipe_id", recipe.ID, "error", err)
		return
	}

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish event", "event_type", eventType, "recipe_id", recipe.ID, "error", err)
	}
}
