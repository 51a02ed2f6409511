package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookifyai/backend/config"
	"github.com/cookifyai/backend/internal/model"
)

// newChatServer returns an LLMService pointed at a fake chat-completion
// endpoint that replies with the given content, counting requests.
func newChatServer(t *testing.T, status int, content string) (*LLMService, *int) {
	t.Helper()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)

	svc, err := NewLLMService(&config.Config{
		OpenAIAPIKey: "test-key",
		OpenAIAPIURL: srv.URL,
		ChatModel:    "gpt-4o-mini",
	})
	require.NoError(t, err)
	return svc, &calls
}

func TestNewLLMServiceRequiresKey(t *testing.T) {
	_, err := NewLLMService(&config.Config{})
	assert.Error(t, err)
}

func TestGenerateRecipes(t *testing.T) {
	content := "Here are your recipes:\n" + `[
		{"title": "Oatmeal Bowl", "ingredients": ["1 cup oats", "1 banana"], "macros": {"calories": 350, "protein": 12, "carbs": 60, "fat": 8}},
		{"title": "Chicken Wrap", "ingredients": ["1 tortilla", "100g chicken"], "macros": {"calories": 450, "protein": 35, "carbs": 40, "fat": 15}},
		{"title": "Salmon Plate", "ingredients": ["150g salmon", "1 cup rice"], "macros": {"calories": 550, "protein": 40, "carbs": 50, "fat": 20}}
	]`
	svc, _ := newChatServer(t, http.StatusOK, content)

	recipes, err := svc.GenerateRecipes(context.Background(),
		model.MacroTarget{Calories: model.Float(450)},
		[]string{"oats", "chicken", "salmon"}, "")
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Oatmeal Bowl", recipes[0].Title)
	assert.Equal(t, 350.0, recipes[0].Macros.Calories)
}

func TestGenerateRecipesServerError(t *testing.T) {
	svc, _ := newChatServer(t, http.StatusInternalServerError, "")

	_, err := svc.GenerateRecipes(context.Background(), model.MacroTarget{}, nil, "")
	assert.Error(t, err)
}

func TestGenerateRecipesUnparseable(t *testing.T) {
	svc, _ := newChatServer(t, http.StatusOK, "Sorry, I can't help with that.")

	_, err := svc.GenerateRecipes(context.Background(), model.MacroTarget{}, nil, "")
	require.Error(t, err)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestAnalyzeSearchQuery(t *testing.T) {
	content := `{"ingredients": ["chicken", "rice"], "macros": {"protein": 40}, "query": "dinner"}`
	svc, _ := newChatServer(t, http.StatusOK, content)

	intent, err := svc.AnalyzeSearchQuery(context.Background(), "high protein chicken and rice dinner")
	require.NoError(t, err)
	assert.Equal(t, []string{"chicken", "rice"}, intent.Ingredients)
	require.NotNil(t, intent.Macros.Protein)
	assert.Equal(t, 40.0, *intent.Macros.Protein)
	assert.Equal(t, "dinner", intent.Query)
}

func TestSuggestRecipesPlaceholder(t *testing.T) {
	svc, calls := newChatServer(t, http.StatusOK, "should never be requested")

	result, err := svc.SuggestRecipes(context.Background(), model.MacroTarget{})
	require.NoError(t, err)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, suggestionPlaceholder, result.Suggestions[0])
	assert.Equal(t, 0, *calls, "empty target must not hit the network")
}

func TestSuggestRecipesFromModel(t *testing.T) {
	content := `{"suggestions": ["a", "b", "c", "d"], "explanation": "fits your goals"}`
	svc, _ := newChatServer(t, http.StatusOK, content)

	result, err := svc.SuggestRecipes(context.Background(), model.MacroTarget{Calories: model.Float(1800)})
	require.NoError(t, err)
	assert.Len(t, result.Suggestions, 4)
	assert.Equal(t, "fits your goals", result.Explanation)
}

func TestSuggestRecipesFallback(t *testing.T) {
	tests := []struct {
		name   string
		target model.MacroTarget
		first  string
	}{
		{
			name:   "high protein",
			target: model.MacroTarget{Protein: model.Float(40)},
			first:  "Grilled chicken breast with quinoa and roasted vegetables",
		},
		{
			name:   "low calorie",
			target: model.MacroTarget{Calories: model.Float(400)},
			first:  "Zucchini noodle stir-fry with shrimp",
		},
		{
			name:   "low carb",
			target: model.MacroTarget{Carbs: model.Float(30)},
			first:  "Lettuce-wrapped turkey burgers",
		},
		{
			name:   "balanced",
			target: model.MacroTarget{Fat: model.Float(60)},
			first:  "Chicken and brown rice burrito bowl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newChatServer(t, http.StatusOK, "no JSON in this reply")

			result, err := svc.SuggestRecipes(context.Background(), tt.target)
			require.NoError(t, err)
			require.Len(t, result.Suggestions, 4)
			assert.Equal(t, tt.first, result.Suggestions[0])
			assert.NotEmpty(t, result.Explanation)
		})
	}
}

func TestSuggestRecipesFallbackOnServerError(t *testing.T) {
	svc, _ := newChatServer(t, http.StatusBadGateway, "")

	result, err := svc.SuggestRecipes(context.Background(), model.MacroTarget{Protein: model.Float(50)})
	require.NoError(t, err)
	assert.Len(t, result.Suggestions, 4)
}

func TestDescribeFoodImage(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"foods": []}`}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)

	svc, err := NewLLMService(&config.Config{
		OpenAIAPIKey: "test-key",
		OpenAIAPIURL: srv.URL,
		ChatModel:    "gpt-4o-mini",
	})
	require.NoError(t, err)

	content, err := svc.DescribeFoodImage(context.Background(), "what is this", "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, `{"foods": []}`, content)

	require.Len(t, captured.Messages, 1)
	parts, ok := captured.Messages[0].Content.([]interface{})
	require.True(t, ok)
	require.Len(t, parts, 2)
	image, ok := parts[1].(map[string]interface{})
	require.True(t, ok)
	imageURL, ok := image["image_url"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", imageURL["url"])
}
