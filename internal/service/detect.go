package service

import (
	"context"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/cookifyai/backend/internal/model"
)

const (
	// DetectorMock always uses the random generator.
	DetectorMock = "mock"
	// DetectorVision sends the image to the vision model, falling back
	// to the mock on any failure.
	DetectorVision = "vision"
)

const visionPrompt = `Identify the food items visible in this photo. Respond ONLY with JSON shaped like:
{"foods": [{"name": "tomato", "count": 3, "confidence": 0.92}]}
Use singular lowercase names, count as a whole number of items, and confidence between 0 and 1.`

// DetectionService converts an image into a list of detected food items.
// It is total: whatever the image bytes or the vision model do, Detect
// returns a well-formed result.
type DetectionService struct {
	vision   VisionModel
	strategy string
}

// NewDetectionService creates a new DetectionService instance. vision may
// be nil, in which case the mock strategy is used regardless of strategy.
func NewDetectionService(vision VisionModel, strategy string) *DetectionService {
	return &DetectionService{vision: vision, strategy: strategy}
}

// Detect runs the configured strategy on a base64-encoded image. The
// result carries its provenance so callers can tell a real model call
// apart from the fallback.
func (s *DetectionService) Detect(ctx context.Context, imageB64 string) *model.FoodDetectionResult {
	start := time.Now()

	var result *model.FoodDetectionResult
	if s.strategy == DetectorVision && s.vision != nil {
		detected, err := s.detectWithVision(ctx, imageB64)
		if err != nil {
			log.Printf("[DetectionService] vision detection failed, falling back to mock: %v", err)
			result = s.mockDetect()
			result.Source = model.SourceMockFallback
		} else {
			result = detected
			result.Source = model.SourceVisionModel
		}
	} else {
		result = s.mockDetect()
		result.Source = model.SourceMock
	}

	result.Ingredients = result.IngredientStrings()
	result.ProcessingTimeMS = time.Since(start).Milliseconds()
	return result
}

func (s *DetectionService) detectWithVision(ctx context.Context, imageB64 string) (*model.FoodDetectionResult, error) {
	content, err := s.vision.DescribeFoodImage(ctx, visionPrompt, imageB64)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Foods []struct {
			Name       string  `json:"name"`
			Count      int     `json:"count"`
			Confidence float64 `json:"confidence"`
		} `json:"foods"`
	}
	if err := ExtractJSONObject(content, &parsed); err != nil {
		return nil, err
	}

	foods := make([]model.DetectedFoodItem, 0, len(parsed.Foods))
	for _, f := range parsed.Foods {
		if f.Name == "" {
			continue
		}
		count := f.Count
		if count < 1 {
			count = 1
		}
		confidence := f.Confidence
		if confidence < 0 {
			confidence = 0
		} else if confidence > 1 {
			confidence = 1
		}
		foods = append(foods, model.DetectedFoodItem{
			IngredientEntry: model.IngredientEntry{
				Name:     f.Name,
				Quantity: float64(count),
				Unit:     model.UnitCount,
			},
			Confidence: confidence,
			Category:   lookupFoodCategory(f.Name),
		})
	}

	sort.SliceStable(foods, func(i, j int) bool {
		return foods[i].Confidence > foods[j].Confidence
	})

	return &model.FoodDetectionResult{Foods: foods}, nil
}

// mockDetect selects 3-10 distinct items uniformly at random from the food
// table, assigning each a random count 1-5 and a confidence in
// [0.70, 0.95], sorted descending by confidence.
func (s *DetectionService) mockDetect() *model.FoodDetectionResult {
	numDetections := 3 + rand.Intn(8)

	picked := make(map[string]bool, numDetections)
	foods := make([]model.DetectedFoodItem, 0, numDetections)
	for len(foods) < numDetections {
		name := foodNames[rand.Intn(len(foodNames))]
		if picked[name] {
			continue
		}
		picked[name] = true

		foods = append(foods, model.DetectedFoodItem{
			IngredientEntry: model.IngredientEntry{
				Name:     name,
				Quantity: float64(1 + rand.Intn(5)),
				Unit:     model.UnitCount,
			},
			Confidence: 0.70 + rand.Float64()*0.25,
			Category:   foodCategories[name],
		})
	}

	sort.SliceStable(foods, func(i, j int) bool {
		return foods[i].Confidence > foods[j].Confidence
	})

	return &model.FoodDetectionResult{Foods: foods}
}
