// Package payload reads upstream JSON responses into raw records.
//
// Field types coming from the recipe and profile APIs are not trusted: a
// field holding null, a number where text is expected or any other
// surprise degrades to its zero value instead of failing the decode. Only a
// top-level payload that is not a JSON object is rejected, with
// INVALID_INPUT.
package payload

import (
	"fmt"

	"github.com/tidwall/gjson"

	apperrors "misteri/pkg/errors"
	"misteri/pkg/model"
)

const (
	mealsKey      = "meals"
	categoriesKey = "categories"
)

// DecodeMeals reads a {"meals": [...]} envelope as returned by the search,
// filter, lookup and random endpoints. "meals": null or a missing key is
// the API's "no results" and decodes to a nil slice. Array elements that
// are not objects decode to nil entries so list normalization can skip them.
func DecodeMeals(data []byte) ([]*model.RawRecipe, error) {
	items, err := envelope(data, mealsKey)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return nil, nil
	}

	out := make([]*model.RawRecipe, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			out = append(out, nil)
			continue
		}
		out = append(out, recipeFrom(item))
	}
	return out, nil
}

// DecodeCategories reads a {"categories": [...]} envelope with the same
// null and element rules as DecodeMeals.
func DecodeCategories(data []byte) ([]*model.RawCategory, error) {
	items, err := envelope(data, categoriesKey)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return nil, nil
	}

	out := make([]*model.RawCategory, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			out = append(out, nil)
			continue
		}
		out = append(out, &model.RawCategory{
			ID:           text(item, "idCategory"),
			Name:         text(item, "strCategory"),
			ThumbnailURL: text(item, "strCategoryThumb"),
			Description:  text(item, "strCategoryDescription"),
		})
	}
	return out, nil
}

// DecodeProfile reads a developer-profile user object.
func DecodeProfile(data []byte) (*model.RawProfile, error) {
	obj, err := object(data, "profile")
	if err != nil {
		return nil, err
	}

	return &model.RawProfile{
		Login:           text(obj, "login"),
		Name:            text(obj, "name"),
		Bio:             text(obj, "bio"),
		AvatarURL:       text(obj, "avatar_url"),
		Followers:       count(obj, "followers"),
		Following:       count(obj, "following"),
		PublicRepoCount: count(obj, "public_repos"),
	}, nil
}

func recipeFrom(obj gjson.Result) *model.RawRecipe {
	raw := &model.RawRecipe{
		ID:               text(obj, "idMeal"),
		Name:             text(obj, "strMeal"),
		Category:         text(obj, "strCategory"),
		Area:             text(obj, "strArea"),
		ThumbnailURL:     text(obj, "strMealThumb"),
		InstructionsText: text(obj, "strInstructions"),
		TagsText:         text(obj, "strTags"),
		YoutubeURL:       text(obj, "strYoutube"),
	}
	for i := range model.MaxIngredientSlots {
		raw.Ingredients[i] = text(obj, IngredientKey(i+1))
		raw.Measures[i] = text(obj, MeasureKey(i+1))
	}
	return raw
}

// IngredientKey returns the field name of the 1-based ingredient slot.
func IngredientKey(slot int) string {
	return fmt.Sprintf("strIngredient%d", slot)
}

// MeasureKey returns the field name of the 1-based measure slot.
func MeasureKey(slot int) string {
	return fmt.Sprintf("strMeasure%d", slot)
}

func object(data []byte, what string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, apperrors.InvalidInput(what + " payload is not valid JSON")
	}
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return gjson.Result{}, apperrors.InvalidInput(fmt.Sprintf("%s payload is not an object", what))
	}
	return obj, nil
}

func envelope(data []byte, key string) ([]gjson.Result, error) {
	obj, err := object(data, key)
	if err != nil {
		return nil, err
	}

	list := obj.Get(key)
	switch {
	case !list.Exists(), list.Type == gjson.Null:
		return nil, nil
	case !list.IsArray():
		return nil, apperrors.InvalidInput(fmt.Sprintf("%s is not a list", key))
	}
	return list.Array(), nil
}

// text reads a display field. Strings are returned as-is, numbers keep
// their literal form, anything else is "".
func text(obj gjson.Result, key string) string {
	v := obj.Get(key)
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	default:
		return ""
	}
}

// count reads a numeric field; nil when null, missing or not a number.
func count(obj gjson.Result, key string) *int64 {
	v := obj.Get(key)
	if v.Type != gjson.Number {
		return nil
	}
	n := v.Int()
	return &n
}
