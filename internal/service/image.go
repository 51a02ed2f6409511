package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/cookifyai/backend/config"
)

// ImageGenerationRequest represents a request to the image-generation API.
type ImageGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	Quality        string `json:"quality"`
	Style          string `json:"style"`
	ResponseFormat string `json:"response_format"`
}

// ImageGenerationResponse represents the response from the image API.
type ImageGenerationResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		URL           string `json:"url,omitempty"`
		B64JSON       string `json:"b64_json,omitempty"`
		RevisedPrompt string `json:"revised_prompt,omitempty"`
	} `json:"data"`
}

// ImageService generates food images and optionally stores them in S3.
type ImageService struct {
	apiKey   string
	apiURL   string
	s3Config *config.S3Config
	client   *http.Client
}

// NewImageService creates a new ImageService instance. s3Config may be
// nil; generated images are then served from the upstream URL.
func NewImageService(cfg *config.Config, s3Config *config.S3Config) (*ImageService, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
	}

	return &ImageService{
		apiKey:   cfg.OpenAIAPIKey,
		apiURL:   cfg.OpenAIImagesAPIURL,
		s3Config: s3Config,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// GenerateFoodImage generates an image for a recipe title and description.
func (s *ImageService) GenerateFoodImage(ctx context.Context, title, description string) (string, error) {
	prompt := buildFoodImagePrompt(title, description)
	log.Printf("[ImageService] Generating image for %q", title)
	return s.generateImageFromPrompt(ctx, prompt, "1024x1024")
}

// generateImageFromPrompt generates an image from a text prompt with a
// bounded retry.
func (s *ImageService) generateImageFromPrompt(ctx context.Context, prompt string, size string) (string, error) {
	const maxRetries = 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		imageURL, err := s.generateImageAttempt(ctx, prompt, size)
		if err != nil {
			log.Printf("[ImageService] Attempt %d/%d failed: %v", attempt, maxRetries, err)
			if attempt == maxRetries {
				return "", fmt.Errorf("failed to generate image after %d attempts: %w", maxRetries, err)
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}
		return imageURL, nil
	}

	return "", fmt.Errorf("failed to generate image after %d attempts", maxRetries)
}

func (s *ImageService) generateImageAttempt(ctx context.Context, prompt string, size string) (string, error) {
	reqBody := ImageGenerationRequest{
		Model:          "dall-e-3",
		Prompt:         prompt,
		N:              1,
		Size:           size,
		Quality:        "standard",
		Style:          "vivid",
		ResponseFormat: "url",
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

	var result ImageGenerationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Data) == 0 {
		return "", fmt.Errorf("no image data in API response")
	}

	imageURL := result.Data[0].URL
	if imageURL == "" {
		return "", fmt.Errorf("empty image URL in API response")
	}

	if s.s3Config == nil {
		return imageURL, nil
	}

	s3URL, err := s.downloadAndUploadToS3(ctx, imageURL)
	if err != nil {
		log.Printf("[ImageService] Failed to upload to S3, returning original URL: %v", err)
		return imageURL, nil
	}

	return s3URL, nil
}

// downloadAndUploadToS3 downloads an image from URL and uploads it to S3.
func (s *ImageService) downloadAndUploadToS3(ctx context.Context, imageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download image, status: %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	fileName := fmt.Sprintf("food-images/%s.png", uuid.New().String())
	return s.uploadImageToS3(ctx, imageData, fileName)
}

// presignTTL is the lifetime of presigned object URLs, the SigV4 maximum.
const presignTTL = 7 * 24 * time.Hour

// uploadImageToS3 uploads image data to S3 and returns a URL for it: the
// public object URL when the bucket is public, a presigned one otherwise.
func (s *ImageService) uploadImageToS3(ctx context.Context, imageData []byte, fileName string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	log.Printf("[ImageService] Successfully uploaded image to S3: %s", fileName)

	if s.s3Config.PublicBucket {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName), nil
	}

	presignedURL, err := s.s3Config.GeneratePresignedURL(ctx, fileName, presignTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign object URL: %w", err)
	}
	return presignedURL, nil
}

// buildFoodImagePrompt creates a food-photography prompt for a recipe.
func buildFoodImagePrompt(title, description string) string {
	prompt := "A professional food photography shot of " + strings.ToLower(title)
	if description != "" {
		prompt += ", " + strings.ToLower(description)
	}
	prompt += ", shot with natural lighting, shallow depth of field, garnished beautifully, restaurant quality presentation, appetizing colors"

	// Keep the prompt inside typical API limits.
	if len(prompt) > 900 {
		prompt = prompt[:900]
	}
	return prompt
}
