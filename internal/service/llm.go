package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cookifyai/backend/config"
	"github.com/cookifyai/backend/internal/model"
)

// LLMService handles interactions with the chat-completion API.
type LLMService struct {
	apiKey    string
	apiURL    string
	chatModel string
	client    *http.Client
}

// NewLLMService creates a new LLMService instance.
func NewLLMService(cfg *config.Config) (*LLMService, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
	}

	return &LLMService{
		apiKey:    cfg.OpenAIAPIKey,
		apiURL:    cfg.OpenAIAPIURL,
		chatModel: cfg.ChatModel,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

type chatMessage struct {
	Role string `json:"role"`
	// Content is a string for plain messages or a part array for image
	// input messages.
	Content interface{} `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// chat sends one chat-completion request and returns the first choice's
// content. No retries, no caching: identical inputs trigger identical
// fresh calls.
func (s *LLMService) chat(ctx context.Context, messages []chatMessage, temperature float64) (string, error) {
	reqBody := chatRequest{
		Model:       s.chatModel,
		Messages:    messages,
		Temperature: temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}

const recipeSystemPrompt = `You are a professional chef and nutritionist. Respond ONLY with a JSON array of exactly 3 recipe objects shaped like:
[
    {
        "title": "Recipe name",
        "ingredients": ["2 cups flour", "1 cup sugar"],
        "macros": {"calories": 350, "protein": 15, "carbs": 45, "fat": 12}
    }
]
The calories, protein, carbs and fat fields must be numbers, not strings.
Use only the available ingredients listed by the user, plus common pantry staples.`

// GenerateRecipes asks the model for exactly 3 recipes that respect the
// available ingredients and approximate the macro target. Network and
// parse failures propagate to the caller unretried.
func (s *LLMService) GenerateRecipes(ctx context.Context, target model.MacroTarget, ingredients []string, preference string) ([]model.SimpleRecipe, error) {
	prompt := buildRecipePrompt(target, ingredients, preference)
	messages := []chatMessage{
		{Role: "system", Content: recipeSystemPrompt},
		{Role: "user", Content: prompt},
	}

	content, err := s.chat(ctx, messages, 0.7)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipes: %w", err)
	}

	var recipes []model.SimpleRecipe
	if err := ExtractJSONArray(content, &recipes); err != nil {
		return nil, err
	}

	for _, r := range recipes {
		if err := r.Validate(); err != nil {
			return nil, &ParseError{Reason: "recipe failed validation", Err: err}
		}
	}

	return recipes, nil
}

func buildRecipePrompt(target model.MacroTarget, ingredients []string, preference string) string {
	var b strings.Builder
	b.WriteString("Generate 3 recipes")

	var goals []string
	appendGoal := func(name string, v *float64, unit string) {
		if v != nil {
			goals = append(goals, fmt.Sprintf("about %.0f%s %s", *v, unit, name))
		}
	}
	appendGoal("calories", target.Calories, "")
	appendGoal("of protein", target.Protein, "g")
	appendGoal("of carbs", target.Carbs, "g")
	appendGoal("of fat", target.Fat, "g")
	appendGoal("of sugar", target.Sugar, "g")
	appendGoal("of sodium", target.Sodium, "mg")
	appendGoal("of fiber", target.Fiber, "g")
	if len(goals) > 0 {
		b.WriteString(" with " + strings.Join(goals, ", ") + " each")
	}

	if len(ingredients) > 0 {
		b.WriteString(". Available ingredients: " + strings.Join(ingredients, ", "))
	}
	if preference != "" {
		b.WriteString(". " + preference)
	}
	return b.String()
}

const analyzeSystemPrompt = `You are a helpful assistant that extracts the following information from user queries about recipes:
1. Ingredients they mentioned
2. Macro nutrient requirements (calories, protein, carbs, fat, sugar, sodium, fiber)
3. Any other search terms or food types

Respond with a JSON object containing:
{
    "ingredients": ["ingredient1", "ingredient2"],
    "macros": {"calories": 500, "protein": 30},
    "query": "any other search terms"
}

If a field is not present in the user query, omit it from the JSON.`

// AnalyzeSearchQuery extracts ingredients, macro requirements and residual
// search terms from a free-text query.
func (s *LLMService) AnalyzeSearchQuery(ctx context.Context, input string) (*model.SearchIntent, error) {
	messages := []chatMessage{
		{Role: "system", Content: analyzeSystemPrompt},
		{Role: "user", Content: input},
	}

	content, err := s.chat(ctx, messages, 0.3)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze query: %w", err)
	}

	var intent model.SearchIntent
	if err := ExtractJSONObject(content, &intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

// SuggestionResult is the outcome of the AI macro-suggestion flow.
type SuggestionResult struct {
	Suggestions []string `json:"suggestions"`
	Explanation string   `json:"explanation"`
}

const suggestionPlaceholder = "Please enter at least one macro nutrient value to get recipe suggestions"

const suggestSystemPrompt = `You are a nutrition coach. Given macro nutrient goals, suggest 4 recipe ideas that fit them. Respond ONLY with JSON shaped like:
{"suggestions": ["idea 1", "idea 2", "idea 3", "idea 4"], "explanation": "one short paragraph"}`

// SuggestRecipes returns recipe ideas for a macro target. With no macro
// fields set it returns the fixed placeholder without performing a network
// call; on any network or parse failure it falls back to a templated
// suggestion set, so it never fails.
func (s *LLMService) SuggestRecipes(ctx context.Context, target model.MacroTarget) (*SuggestionResult, error) {
	if target.IsEmpty() {
		return &SuggestionResult{
			Suggestions: []string{suggestionPlaceholder},
			Explanation: "Set a calorie or macro goal and the assistant will suggest matching recipe ideas.",
		}, nil
	}

	content, err := s.chat(ctx, []chatMessage{
		{Role: "system", Content: suggestSystemPrompt},
		{Role: "user", Content: describeTarget(target)},
	}, 0.7)
	if err != nil {
		return fallbackSuggestions(target), nil
	}

	var result SuggestionResult
	if err := ExtractJSONObject(content, &result); err != nil || len(result.Suggestions) == 0 {
		return fallbackSuggestions(target), nil
	}

	return &result, nil
}

func describeTarget(target model.MacroTarget) string {
	var parts []string
	appendPart := func(name string, v *float64, unit string) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s: %.0f%s", name, *v, unit))
		}
	}
	appendPart("calories", target.Calories, "")
	appendPart("protein", target.Protein, "g")
	appendPart("carbs", target.Carbs, "g")
	appendPart("fat", target.Fat, "g")
	appendPart("sugar", target.Sugar, "g")
	appendPart("sodium", target.Sodium, "mg")
	appendPart("fiber", target.Fiber, "g")
	return "My macro goals are " + strings.Join(parts, ", ")
}

// fallbackSuggestions is the hand-written suggestion set keyed off simple
// macro thresholds, used when the model response is unusable.
func fallbackSuggestions(target model.MacroTarget) *SuggestionResult {
	switch {
	case target.Protein != nil && *target.Protein >= 30:
		return &SuggestionResult{
			Suggestions: []string{
				"Grilled chicken breast with quinoa and roasted vegetables",
				"Greek yogurt bowl with nuts and berries",
				"Baked salmon with lentils and spinach",
				"Egg white omelette with cottage cheese and turkey",
			},
			Explanation: "High-protein picks that keep you full while supporting muscle recovery.",
		}
	case target.Calories != nil && *target.Calories <= 500:
		return &SuggestionResult{
			Suggestions: []string{
				"Zucchini noodle stir-fry with shrimp",
				"Cauliflower rice bowl with grilled vegetables",
				"Clear vegetable soup with tofu",
				"Garden salad with grilled chicken and light vinaigrette",
			},
			Explanation: "Light meals that stay comfortably under your calorie goal.",
		}
	case target.Carbs != nil && *target.Carbs <= 50:
		return &SuggestionResult{
			Suggestions: []string{
				"Lettuce-wrapped turkey burgers",
				"Baked cod with asparagus and butter",
				"Steak with garlic mushrooms and greens",
				"Cheese and vegetable frittata",
			},
			Explanation: "Low-carb dishes built around protein and vegetables.",
		}
	default:
		return &SuggestionResult{
			Suggestions: []string{
				"Chicken and brown rice burrito bowl",
				"Whole wheat pasta with turkey meatballs",
				"Teriyaki salmon with jasmine rice and broccoli",
				"Mediterranean chickpea and feta salad",
			},
			Explanation: "Balanced meals that spread calories across protein, carbs and fat.",
		}
	}
}

// DescribeFoodImage sends the image as inline encoded bytes with the given
// instruction to the chat-completion endpoint and returns the raw text
// response.
func (s *LLMService) DescribeFoodImage(ctx context.Context, prompt, imageB64 string) (string, error) {
	content := []interface{}{
		map[string]interface{}{"type": "text", "text": prompt},
		map[string]interface{}{
			"type": "image_url",
			"image_url": map[string]string{
				"url": "data:image/jpeg;base64," + imageB64,
			},
		},
	}
	messages := []chatMessage{{Role: "user", Content: content}}
	return s.chat(ctx, messages, 0.2)
}
