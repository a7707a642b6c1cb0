package traffic

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/models"
)

// Annotator produces the one-sentence congestion explanation attached
// to a prediction. The text is passed through verbatim; nothing in the
// core depends on its content.
type Annotator interface {
	Explain(ctx context.Context, route models.CommuteRoute, congestion int, peak string) (string, error)
}

// StaticAnnotator is the no-dependency fallback.
type StaticAnnotator struct{}

func (StaticAnnotator) Explain(ctx context.Context, route models.CommuteRoute, congestion int, peak string) (string, error) {
	if StatusFor(congestion) == constants.TrafficRed {
		return "Traffic is heavy.", nil
	}
	return "Traffic is moving.", nil
}

// OpenAIAnnotator asks a chat model for a short explanation.
type OpenAIAnnotator struct {
	client *openai.Client
	model  string
}

// NewOpenAIAnnotator creates an annotator using the given API key and model.
func NewOpenAIAnnotator(apiKey, model string) *OpenAIAnnotator {
	return &OpenAIAnnotator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (a *OpenAIAnnotator) Explain(ctx context.Context, route models.CommuteRoute, congestion int, peak string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a traffic assistant. Give a very short, 1-sentence explanation for traffic congestion.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Route: %s to %s. Current congestion is %d/100. Peak is at %s. Explain why briefly.",
					route.Origin, route.Destination, congestion, peak,
				),
			},
		},
		MaxCompletionTokens: 50,
	})
	if err != nil {
		return "", fmt.Errorf("annotation request failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("annotation response was empty")
	}
	return resp.Choices[0].Message.Content, nil
}
