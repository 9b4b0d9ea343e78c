package normalizer

import (
	apperrors "misteri/pkg/errors"
	"misteri/pkg/logger"
	"misteri/pkg/model"
)

func NormalizeCategory(raw *model.RawCategory) (model.Category, error) {
	if raw == nil {
		return model.Category{}, apperrors.InvalidInput("category payload is null")
	}

	return model.Category{
		ID:           raw.ID,
		Name:         displayName.Apply(raw.Name),
		ThumbnailURL: Trim(raw.ThumbnailURL),
		Description:  Trim(raw.Description),
	}, nil
}

// NormalizeCategoryList follows the same nil and soft-failure rules as
// NormalizeRecipeList.
func NormalizeCategoryList(raws []*model.RawCategory, log *logger.Logger) []model.Category {
	out := make([]model.Category, 0, len(raws))
	for i, raw := range raws {
		category, err := NormalizeCategory(raw)
		if err != nil {
			if log != nil {
				log.Warn("Skipping category list entry",
					"index", i,
					"error", err,
				)
			}
			continue
		}
		out = append(out, category)
	}
	return out
}
