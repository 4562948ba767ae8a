package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an empty or unusable OpenAI response.
	ErrOpenAIResponse = errors.New("empty OpenAI response")
)

// chatTimeout bounds a single chat completion call. The underlying HTTP
// client has its own defaults, but a runaway completion should not hold a
// stress refresh open indefinitely.
const chatTimeout = 30 * time.Second

// Role tags a chat message. Only user and assistant turns exist here; the
// profile context is injected separately as a system message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single role-tagged message in a conversation.
type ChatMessage struct {
	Role Role
	Text string
	// Optional image URL attached to a user message
	ImageURL string
}

const defaultInstructions = `You are a supportive wellness assistant for a student.

Base your answers only on the provided data. Do not give medical advice.`

const profileTemplate = `%s

Profile:
- Average daily screen time: %.1f hours
- Resting heart rate: %d bpm
- Enrolled classes: %s`

// ChatClient is the interface for sending chat conversations to an LLM.
type ChatClient interface {
	// SendChat sends the ordered message list with the profile injected as
	// leading context and returns the model's text reply.
	SendChat(ctx context.Context, messages []ChatMessage, profile domain.ProfileContext) (string, error)
}

// OpenAIClient implements ChatClient using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	instructions string
}

// NewOpenAIClient creates a new OpenAI chat client.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// SetInstructions replaces the default system instructions, e.g. with a
// prompt managed in Langfuse. Blank input keeps the default.
func (c *OpenAIClient) SetInstructions(instructions string) {
	if c == nil {
		return
	}
	if s := strings.TrimSpace(instructions); s != "" {
		c.instructions = s
	}
}

// SendChat calls the OpenAI chat completions endpoint.
func (c *OpenAIClient) SendChat(ctx context.Context, messages []ChatMessage, profile domain.ProfileContext) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	classes := profile.EnrolledClasses
	if classes == "" {
		classes = "none listed"
	}
	instructions := c.instructions
	if instructions == "" {
		instructions = defaultInstructions
	}
	systemPrompt := fmt.Sprintf(profileTemplate, instructions, profile.ScreenTimeHours, profile.RestingHeartRate, classes)

	params := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
	}
	for _, m := range messages {
		switch m.Role {
		case RoleAssistant:
			params = append(params, openai.AssistantMessage(m.Text))
		default:
			text := m.Text
			if m.ImageURL != "" {
				text += "\n\nAttached image: " + m.ImageURL
			}
			params = append(params, openai.UserMessage(text))
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: params,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	// Concatenate content from all returned choices
	var sb strings.Builder
	for _, choice := range resp.Choices {
		sb.WriteString(choice.Message.Content)
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrOpenAIResponse
	}

	return text, nil
}
