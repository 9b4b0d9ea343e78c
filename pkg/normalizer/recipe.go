package normalizer

import (
	apperrors "misteri/pkg/errors"
	"misteri/pkg/logger"
	"misteri/pkg/model"
)

// NormalizeRecipe builds the recipe view model from one raw meal record.
// A nil record fails with INVALID_INPUT; missing fields never do.
func NormalizeRecipe(raw *model.RawRecipe) (model.Recipe, error) {
	if raw == nil {
		return model.Recipe{}, apperrors.InvalidInput("recipe payload is null")
	}

	return model.Recipe{
		ID:               raw.ID,
		Name:             raw.Name,
		Category:         raw.Category,
		Area:             raw.Area,
		ThumbnailURL:     raw.ThumbnailURL,
		YoutubeURL:       raw.YoutubeURL,
		Ingredients:      collectIngredients(raw),
		InstructionSteps: SplitSteps(raw.InstructionsText),
		Tags:             SplitTags(raw.TagsText),
	}, nil
}

// collectIngredients walks every slot in order. Upstream data is not
// guaranteed contiguous, so an empty slot does not end the walk.
func collectIngredients(raw *model.RawRecipe) []model.Ingredient {
	out := make([]model.Ingredient, 0, model.MaxIngredientSlots)
	for i := range model.MaxIngredientSlots {
		name := Trim(raw.Ingredients[i])
		if name == "" {
			continue
		}
		out = append(out, model.Ingredient{
			Name:    name,
			Measure: raw.Measures[i],
			Display: IngredientLine(raw.Measures[i], name),
		})
	}
	return out
}

// IngredientLine renders "<measure> <ingredient>", dropping the measure
// when it is blank.
func IngredientLine(measure, name string) string {
	return Trim(Trim(measure) + " " + name)
}

// NormalizeRecipeList normalizes a result list. A nil list is the search
// API's "no matches" and yields an empty slice. Entries that fail are
// dropped and reported to log at warn level; log may be nil.
func NormalizeRecipeList(raws []*model.RawRecipe, log *logger.Logger) []model.Recipe {
	out := make([]model.Recipe, 0, len(raws))
	for i, raw := range raws {
		recipe, err := NormalizeRecipe(raw)
		if err != nil {
			if log != nil {
				log.Warn("Skipping recipe list entry",
					"index", i,
					"error", err,
				)
			}
			continue
		}
		out = append(out, recipe)
	}
	return out
}

func SummarizeRecipe(r model.Recipe) model.RecipeSummary {
	return model.RecipeSummary{
		ID:           r.ID,
		Name:         r.Name,
		ThumbnailURL: r.ThumbnailURL,
		Category:     r.Category,
		Area:         r.Area,
	}
}

func SummarizeRecipes(recipes []model.Recipe) []model.RecipeSummary {
	out := make([]model.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, SummarizeRecipe(r))
	}
	return out
}
