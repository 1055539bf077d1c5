package llmprovider

import (
	"context"
	"fmt"

	"adaptive-response-engine/pkg/gemini"
	"adaptive-response-engine/pkg/openrouter"
	"adaptive-response-engine/pkg/qwen"
)

// OpenRouterAdapter adapts pkg/openrouter to llmprovider.Provider interface
type OpenRouterAdapter struct {
	client openrouter.IOpenRouter
}

// NewOpenRouterAdapter creates a new OpenRouter adapter
func NewOpenRouterAdapter(client openrouter.IOpenRouter) *OpenRouterAdapter {
	return &OpenRouterAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenRouterAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	orReq := &openrouter.Request{
		Messages:    convertToOpenRouterMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// System instruction goes first
	if req.SystemInstruction != nil {
		systemMsg := openrouter.Message{
			Role:    RoleSystem,
			Content: req.SystemInstruction.Text(),
		}
		orReq.Messages = append([]openrouter.Message{systemMsg}, orReq.Messages...)
	}

	resp, err := a.client.GenerateContent(ctx, orReq)
	if err != nil {
		return nil, fmt.Errorf("openrouter: %w", err)
	}

	return convertFromOpenRouterResponse(resp), nil
}

// Name returns the provider name
func (a *OpenRouterAdapter) Name() string {
	return "openrouter"
}

// Model returns the model name
func (a *OpenRouterAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenRouterMessages(msgs []Message) []openrouter.Message {
	messages := make([]openrouter.Message, 0, len(msgs))
	for _, msg := range msgs {
		messages = append(messages, openrouter.Message{
			Role:    msg.Role,
			Content: msg.Text(),
		})
	}
	return messages
}

func convertFromOpenRouterResponse(resp *openrouter.Response) *Response {
	out := &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{}},
		ProviderName: "openrouter",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: resp.Choices[0].Message.Content})
	}
	return out
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		SystemInstruction: convertToQwenContent(req.SystemInstruction),
		Messages:          convertToQwenContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromQwenContent(resp.Content),
		ProviderName: "qwen",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Qwen
func convertToQwenContent(msg *Message) *qwen.Content {
	if msg == nil {
		return nil
	}
	parts := make([]qwen.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = qwen.Part{Text: p.Text}
	}
	return &qwen.Content{Role: msg.Role, Parts: parts}
}

func convertToQwenContents(msgs []Message) []qwen.Content {
	contents := make([]qwen.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToQwenContent(&msgs[i])
	}
	return contents
}

func convertFromQwenContent(content qwen.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          make([]gemini.Content, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for i := range req.Messages {
		geminiReq.Messages[i] = *convertToGeminiContent(&req.Messages[i])
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}
