package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI translates through a chat-completion model. A base URL override
// points the client at any OpenAI-compatible endpoint, so a self-hosted
// translation model works the same way as the hosted API.
type OpenAI struct {
	client     *openai.Client
	model      string
	sourceLang string
	targetLang string
}

type OpenAIOptions struct {
	APIKey     string
	BaseURL    string
	Model      string
	SourceLang string
	TargetLang string
}

func NewOpenAI(opts OpenAIOptions) (*OpenAI, error) {
	if opts.APIKey == "" {
		return nil, errors.New("missing OPENAI_API_KEY")
	}
	if opts.Model == "" {
		return nil, errors.New("missing model name")
	}
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return &OpenAI{
		client:     openai.NewClientWithConfig(cfg),
		model:      opts.Model,
		sourceLang: opts.SourceLang,
		targetLang: opts.TargetLang,
	}, nil
}

func (o *OpenAI) Name() string { return "openai/" + o.model }

func (o *OpenAI) prompt(text string) []openai.ChatCompletionMessage {
	system := fmt.Sprintf(
		"You are a translation engine. Translate the user's text from %s to %s. Reply with the translation only.",
		o.sourceLang, o.targetLang)
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: text},
	}
}

func (o *OpenAI) Translate(ctx context.Context, text string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: o.prompt(text),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (o *OpenAI) TranslateStream(ctx context.Context, text string, onToken func(string) error) error {
	stream, err := o.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: o.prompt(text),
		Stream:   true,
	})
	if err != nil {
		return fmt.Errorf("open completion stream: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("completion stream: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if delta := resp.Choices[0].Delta.Content; delta != "" {
			if err := onToken(delta); err != nil {
				return err
			}
		}
	}
}
