package errors

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")

	ErrProfileNotFound = errors.New("profile not found")

	// ErrEmptyDraw is a random draw that came back without a meal.
	ErrEmptyDraw = errors.New("random draw returned no recipe")

	ErrNoDraws = errors.New("every gacha draw failed")
)
