package model

// MaxIngredientSlots is the number of positional ingredient/measure pairs a
// recipe record carries upstream (strIngredient1..20, strMeasure1..20).
const MaxIngredientSlots = 20

// RawRecipe is one meal record as the recipe API sends it. Slot i of
// Ingredients/Measures holds strIngredient{i+1}/strMeasure{i+1}; absent
// fields are empty strings.
type RawRecipe struct {
	ID               string
	Name             string
	Category         string
	Area             string
	ThumbnailURL     string
	InstructionsText string
	TagsText         string
	YoutubeURL       string
	Ingredients      [MaxIngredientSlots]string
	Measures         [MaxIngredientSlots]string
}

// Ingredient is one filled slot. Display is the line the detail view lists,
// "<measure> <ingredient>".
type Ingredient struct {
	Name    string `json:"ingredient" validate:"required,clean_text"`
	Measure string `json:"measure"`
	Display string `json:"display"`
}

// Recipe is the normalized view model. Absent display fields are "" and
// absent sequences are empty, never nil.
type Recipe struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Category         string       `json:"category"`
	Area             string       `json:"area"`
	ThumbnailURL     string       `json:"thumbnail_url"`
	YoutubeURL       string       `json:"youtube_url"`
	Ingredients      []Ingredient `json:"ingredients" validate:"max=20,dive"`
	InstructionSteps []string     `json:"instruction_steps" validate:"dive,required,clean_text"`
	Tags             []string     `json:"tags" validate:"dive,required,clean_text"`
}

// RecipeSummary is the card shown in category and search listings.
type RecipeSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `json:"category,omitempty"`
	Area         string `json:"area,omitempty"`
}
