// Package prompt builds the payloads sent to the completion endpoint.
// Every builder is a pure function: identical input produces an
// identical payload, which the orchestrators rely on for cache-key
// determinism.
package prompt

import (
	"encoding/json"
	"fmt"

	"recipe-recommender/internal/pkg/common"
)

// Response formats the completion endpoint understands.
const (
	FormatJSONObject = "json_object"
	FormatText       = "text"
)

// Payload is a fully assembled prompt for one completion call.
type Payload struct {
	System         string
	User           string
	ResponseFormat string
}

const suggestSystemPrompt = "You are a helpful Indian chef specializing in diverse regional Indian dishes. " +
	"Given ingredients, diet, spice level, and time, suggest practical recipes. " +
	"Use commonly available Indian ingredients. Always respect dietary restrictions " +
	"and avoid listed ingredients. Respond ONLY with valid JSON matching the schema."

const detailSystemPrompt = "You are an expert Indian chef and nutritionist. Respond ONLY with strict JSON for a single detailed recipe. " +
	"Use friendly text and you MAY include relevant food emojis INSIDE string values (ingredients, steps, tips), " +
	"but never add text outside JSON. Follow the RecipeSuggestion schema exactly. " +
	"CRITICAL: You MUST generate ALL required fields: ingredients (array), steps (array), tips (array), and nutrition (object). " +
	"Do not omit any of these fields. Each should have meaningful content."

const translateSystemPrompt = "You are a precise translator for short app UI and recipe-related text. " +
	"Supported languages: English (en), Hindi (hi), Marathi (mr). " +
	"Return ONLY the translated text, no quotes, no JSON, no extra commentary."

// SuggestRecipes builds the payload for a recipe suggestion request.
func SuggestRecipes(query common.RecipeQuery) Payload {
	// Struct marshaling keeps the field order fixed, so the same query
	// always yields the same prompt text.
	input, _ := json.Marshal(query)

	return Payload{
		System: suggestSystemPrompt,
		User: `Generate 3 Indian recipes as JSON object with shape {"recipes": RecipeSuggestion[]}. ` +
			"Return ONLY JSON. Input: " + string(input),
		ResponseFormat: FormatJSONObject,
	}
}

// detailContext is the subset of the base recipe embedded in the
// enrichment prompt. Lists that will be regenerated (steps, tips) are
// deliberately left out; existing ingredients travel along as hints.
type detailContext struct {
	ID                   string                    `json:"id"`
	Title                string                    `json:"title"`
	ShortDescription     string                    `json:"shortDescription"`
	CuisineRegion        string                    `json:"cuisineRegion"`
	IsVegetarian         bool                      `json:"isVegetarian"`
	Tags                 []string                  `json:"tags"`
	EstimatedTimeMinutes int                       `json:"estimatedTimeMinutes"`
	Difficulty           string                    `json:"difficulty"`
	ExistingIngredients  []common.RecipeIngredient `json:"existingIngredients"`
}

// RecipeDetails builds the payload for a detail enrichment request.
func RecipeDetails(base common.RecipeSuggestion) Payload {
	input, _ := json.Marshal(detailContext{
		ID:                   base.ID,
		Title:                base.Title,
		ShortDescription:     base.ShortDescription,
		CuisineRegion:        base.CuisineRegion,
		IsVegetarian:         base.IsVegetarian,
		Tags:                 base.Tags,
		EstimatedTimeMinutes: base.EstimatedTimeMinutes,
		Difficulty:           base.Difficulty,
		ExistingIngredients:  base.Ingredients,
	})

	return Payload{
		System: detailSystemPrompt,
		User: "Given this rough recipe idea, return ONE enriched RecipeSuggestion JSON object. " +
			"CRITICAL REQUIREMENTS: " +
			"1. ingredients: Array with 5-10 specific ingredients with quantities " +
			"2. steps: Array with 4-8 clear cooking steps " +
			"3. tips: Array with 2-4 helpful cooking tips " +
			"4. nutrition: Object with estimated nutritional values PER SERVING: " +
			"   { calories: number, protein: number (grams), carbs: number (grams), fat: number (grams), fiber: number (grams), sugar: number (grams) } " +
			"All fields MUST be populated with meaningful content. Estimate realistic nutritional values based on the ingredients. " +
			"Base recipe: " + string(input),
		ResponseFormat: FormatJSONObject,
	}
}

// Languages supported by the translation flow.
var languageLabels = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"mr": "Marathi",
}

// SupportedLanguage reports whether lang is a valid translation target.
func SupportedLanguage(lang string) bool {
	_, ok := languageLabels[lang]
	return ok
}

// Translate builds the payload for a plain-text translation request.
// The passthrough rule keeps text already in the target language
// unchanged.
func Translate(text, lang string) Payload {
	label, ok := languageLabels[lang]
	if !ok {
		label = lang
	}

	return Payload{
		System: translateSystemPrompt,
		User: fmt.Sprintf(
			"Translate this text into %s. If it is already in that language, return it unchanged. Text: %q",
			label, text),
		ResponseFormat: FormatText,
	}
}
