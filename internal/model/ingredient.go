package model

import (
	"fmt"
	"strings"
)

// Unit is the measurement unit of an ingredient quantity.
type Unit string

const (
	UnitCount Unit = "count"
	UnitGrams Unit = "grams"
)

// IngredientEntry is a single ingredient the user has on hand.
type IngredientEntry struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`
}

// Validate enforces the finalized-entry invariants: non-empty name,
// positive quantity, known unit.
func (e IngredientEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("ingredient name must not be empty")
	}
	if e.Quantity <= 0 {
		return fmt.Errorf("ingredient quantity must be positive, got %v", e.Quantity)
	}
	if e.Unit != UnitCount && e.Unit != UnitGrams {
		return fmt.Errorf("unknown unit %q", e.Unit)
	}
	return nil
}

// Display renders the entry as the "qty unit name" string used in prompts.
func (e IngredientEntry) Display() string {
	if e.Unit == UnitGrams {
		return fmt.Sprintf("%gg %s", e.Quantity, e.Name)
	}
	return fmt.Sprintf("%g %s", e.Quantity, e.Name)
}

// DetectedFoodItem is an ingredient guess produced from an image. The user
// may rename, recount or delete it before it is promoted to a plain
// ingredient string.
type DetectedFoodItem struct {
	IngredientEntry
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

// DetectionSource marks where a detection result came from, so callers can
// tell a real model call apart from the degraded path.
type DetectionSource string

const (
	SourceMock         DetectionSource = "mock"
	SourceVisionModel  DetectionSource = "vision-model"
	SourceMockFallback DetectionSource = "mock-fallback"
)

// FoodDetectionResult is the detector's output. Foods may be empty; the
// caller decides whether that is a user-facing error. Ingredients carries
// the same detections rendered as ready-to-use ingredient strings.
type FoodDetectionResult struct {
	Foods            []DetectedFoodItem `json:"foods"`
	Ingredients      []string           `json:"ingredients"`
	Source           DetectionSource    `json:"source"`
	ProcessingTimeMS int64              `json:"processing_time_ms"`
}

// IngredientStrings renders each detected food via Display, in detection
// order, for the ingredient search and generation flows.
func (r *FoodDetectionResult) IngredientStrings() []string {
	out := make([]string, 0, len(r.Foods))
	for _, f := range r.Foods {
		out = append(out, f.Display())
	}
	return out
}

// NormalizeIngredients trims entries, drops empties, and removes
// consecutive duplicates (case-insensitive) while preserving insertion
// order.
func NormalizeIngredients(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if len(out) > 0 && strings.EqualFold(out[len(out)-1], s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
