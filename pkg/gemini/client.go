package gemini

import (
	"context"
	"fmt"
	"log"

	"plateplan-backend/domain"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// maxAttempts bounds re-asks when the model returns a response that fails
// the contract checks. Network or API errors are not retried.
const maxAttempts = 3

type (
	Generator interface {
		GenerateRecipe(ctx context.Context, params domain.MealPlanParams, req domain.GenerateRecipeRequest) (*domain.GeneratedRecipe, error)
		GenerateWeeklyPlan(ctx context.Context, params domain.MealPlanParams) (*domain.GeneratedWeeklyPlan, error)
	}

	client struct {
		model *genai.GenerativeModel
	}
)

func NewClient(ctx context.Context, apiKey string, modelName string) (Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := genaiClient.GenerativeModel(modelName)
	model.GenerationConfig.ResponseMIMEType = "application/json"

	return &client{model: model}, nil
}

func (c *client) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGenerationFailed
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", domain.ErrGenerationFailed
	}
	return string(text), nil
}

func (c *client) GenerateRecipe(ctx context.Context, params domain.MealPlanParams, req domain.GenerateRecipeRequest) (*domain.GeneratedRecipe, error) {
	prompt := BuildRecipePrompt(params, req)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := c.generateText(ctx, prompt)
		if err != nil {
			return nil, err
		}

		recipe, err := ParseRecipeResponse(text)
		if err == nil {
			return recipe, nil
		}
		lastErr = err
		log.Printf("recipe generation attempt %d failed contract check: %v", attempt, err)
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, lastErr)
}

func (c *client) GenerateWeeklyPlan(ctx context.Context, params domain.MealPlanParams) (*domain.GeneratedWeeklyPlan, error) {
	prompt := BuildWeeklyPlanPrompt(params)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := c.generateText(ctx, prompt)
		if err != nil {
			return nil, err
		}

		plan, err := ParseWeeklyPlanResponse(text)
		if err == nil {
			return plan, nil
		}
		lastErr = err
		log.Printf("weekly plan generation attempt %d failed contract check: %v", attempt, err)
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, lastErr)
}
