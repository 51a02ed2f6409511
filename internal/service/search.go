package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cookifyai/backend/config"
	"github.com/cookifyai/backend/internal/model"
)

const defaultSearchNumber = 10

// SearchService is a thin parameter-encoding wrapper over the Spoonacular
// recipe API. Every lookup contains its own failures: non-OK statuses and
// network errors are logged and surface as empty results, never as errors.
type SearchService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSearchService creates a new SearchService instance.
func NewSearchService(cfg *config.Config) (*SearchService, error) {
	if cfg.SpoonacularAPIKey == "" {
		return nil, fmt.Errorf("SPOONACULAR_API_KEY or SPOONACULAR_API_KEY_FILE must be set")
	}

	return &SearchService{
		apiKey:  cfg.SpoonacularAPIKey,
		baseURL: strings.TrimRight(cfg.SpoonacularAPIURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// get performs a GET and decodes the JSON body into v. Returns an error
// for the callers above to contain.
func (s *SearchService) get(ctx context.Context, rawURL string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// complexSearch runs /recipes/complexSearch with the given parameters plus
// the standard ones every search carries.
func (s *SearchService) complexSearch(ctx context.Context, params url.Values) []model.Recipe {
	if params.Get("number") == "" {
		params.Set("number", strconv.Itoa(defaultSearchNumber))
	}
	params.Set("apiKey", s.apiKey)
	params.Set("addRecipeNutrition", "true")
	params.Set("instructionsRequired", "true")

	var result model.RecipeSearchResult
	if err := s.get(ctx, s.baseURL+"/recipes/complexSearch?"+params.Encode(), &result); err != nil {
		log.Printf("[SearchService] complex search failed: %v", err)
		return []model.Recipe{}
	}
	if result.Results == nil {
		return []model.Recipe{}
	}
	return result.Results
}

// SearchRecipes searches recipes by free-text query.
func (s *SearchService) SearchRecipes(ctx context.Context, query string, number int) []model.Recipe {
	params := url.Values{}
	params.Set("query", query)
	setNumber(params, number)
	return s.complexSearch(ctx, params)
}

// FetchPopularRecipes returns a list of popular recipes.
func (s *SearchService) FetchPopularRecipes(ctx context.Context, number int) []model.Recipe {
	return s.SearchRecipes(ctx, "popular", number)
}

// FetchRecipesByCategory searches recipes matching a category keyword.
func (s *SearchService) FetchRecipesByCategory(ctx context.Context, category string, number int) []model.Recipe {
	return s.SearchRecipes(ctx, category, number)
}

// FetchRecipesByMealType searches recipes by Spoonacular meal type.
func (s *SearchService) FetchRecipesByMealType(ctx context.Context, mealType string, number int) []model.Recipe {
	params := url.Values{}
	params.Set("type", mealType)
	setNumber(params, number)
	return s.complexSearch(ctx, params)
}

// SearchRecipesByMacros searches recipes bounded by the macro fields
// present on the target.
func (s *SearchService) SearchRecipesByMacros(ctx context.Context, target model.MacroTarget, number int) []model.Recipe {
	params := url.Values{}
	setNumber(params, number)
	setMacro := func(param string, v *float64) {
		if v != nil {
			params.Set(param, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}
	setMacro("maxCalories", target.Calories)
	setMacro("minProtein", target.Protein)
	setMacro("maxCarbs", target.Carbs)
	setMacro("maxFat", target.Fat)
	setMacro("maxSugar", target.Sugar)
	return s.complexSearch(ctx, params)
}

// FetchRecipeByID looks up one recipe with full nutrition. Returns nil on
// not-found or any failure; not-found is a normal empty result, not an
// error.
func (s *SearchService) FetchRecipeByID(ctx context.Context, id int64) *model.Recipe {
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("includeNutrition", "true")

	var recipe model.Recipe
	rawURL := fmt.Sprintf("%s/recipes/%d/information?%s", s.baseURL, id, params.Encode())
	if err := s.get(ctx, rawURL, &recipe); err != nil {
		log.Printf("[SearchService] recipe %d lookup failed: %v", id, err)
		return nil
	}
	return &recipe
}

// SearchRecipesByIngredients finds recipes using the given ingredients,
// then resolves full details for each lightweight match concurrently.
// Matches whose detail lookup failed are filtered out.
func (s *SearchService) SearchRecipesByIngredients(ctx context.Context, ingredients []string, number int) []model.Recipe {
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("ingredients", strings.Join(ingredients, ","))
	setNumber(params, number)
	if params.Get("number") == "" {
		params.Set("number", strconv.Itoa(defaultSearchNumber))
	}
	params.Set("ranking", "1")
	params.Set("ignorePantry", "false")

	var matches []struct {
		ID int64 `json:"id"`
	}
	if err := s.get(ctx, s.baseURL+"/recipes/findByIngredients?"+params.Encode(), &matches); err != nil {
		log.Printf("[SearchService] ingredient search failed: %v", err)
		return []model.Recipe{}
	}

	resolved := make([]*model.Recipe, len(matches))
	var wg sync.WaitGroup
	for i, match := range matches {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			resolved[i] = s.FetchRecipeByID(ctx, id)
		}(i, match.ID)
	}
	wg.Wait()

	recipes := make([]model.Recipe, 0, len(resolved))
	for _, r := range resolved {
		if r != nil {
			recipes = append(recipes, *r)
		}
	}
	return recipes
}

func setNumber(params url.Values, number int) {
	if number > 0 {
		params.Set("number", strconv.Itoa(number))
	}
}
