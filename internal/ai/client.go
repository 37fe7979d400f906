// Package ai generates the island's flavor text with Gemini. Everything
// here is best-effort: callers keep a canned fallback for every prompt.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/appengine-ltd/cozy-camp/internal/game"
)

const (
	maxAttempts      = 3
	retryBaseDelay   = 2 * time.Second
	maxThoughtLength = 120
)

var _ game.ThoughtGenerator = (*Client)(nil)

type Client struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{
		client:  client,
		model:   client.GenerativeModel(cfg.Model),
		timeout: time.Duration(cfg.Timeout) * time.Second,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// PetThought asks for one short line in the pet's voice.
func (c *Client) PetThought(ctx context.Context, pet game.Pet, weather game.WeatherType, tod game.TimeOfDay) (string, error) {
	prompt := fmt.Sprintf(
		"You are %s, a %s camping on a tiny cozy island. The weather is %s and it is %s. "+
			"Reply with one short, cute first-person thought (under 12 words, an emoji is fine). "+
			"No quotes, no narration.",
		pet.Name, pet.Species, strings.ToLower(string(weather)), strings.ToLower(string(tod)),
	)
	return c.generate(ctx, prompt)
}

// Atmosphere asks for a one-line mood caption for the island overlay.
func (c *Client) Atmosphere(ctx context.Context, theme string, weather game.WeatherType, tod game.TimeOfDay) (string, error) {
	prompt := fmt.Sprintf(
		"Write one short atmospheric caption (under 15 words) for a cozy %s camping island. "+
			"Weather: %s. Time: %s. No quotes.",
		theme, strings.ToLower(string(weather)), strings.ToLower(string(tod)),
	)
	return c.generate(ctx, prompt)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryBaseDelay

	text, err := backoff.Retry(ctx, func() (string, error) {
		resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", err
		}
		return firstText(resp)
	}, backoff.WithBackOff(bo), backoff.WithMaxTries(maxAttempts))
	if err != nil {
		return "", err
	}
	return clampThought(text), nil
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", backoff.Permanent(fmt.Errorf("empty response"))
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", backoff.Permanent(fmt.Errorf("unexpected response part %T", resp.Candidates[0].Content.Parts[0]))
	}
	out := strings.TrimSpace(string(text))
	if out == "" {
		return "", backoff.Permanent(fmt.Errorf("blank response"))
	}
	return out, nil
}

func clampThought(s string) string {
	s = strings.Trim(s, "\"")
	if len(s) > maxThoughtLength {
		s = s[:maxThoughtLength]
	}
	return s
}
