package utils

import (
	"context"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

type ChatClientInterface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type openAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient() ChatClientInterface {
	return &openAIChatClient{
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		model:  openai.GPT4oMini,
	}
}

func (c *openAIChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
