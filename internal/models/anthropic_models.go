package models

// Wire shapes for the Anthropic messages API.

type AnthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type AnthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []AnthropicMessage `json:"messages"`
}

type AnthropicContentBlock struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text"`
}

type AnthropicResponse struct {
	ID      string                  `json:"id,omitempty"`
	Model   string                  `json:"model,omitempty"`
	Content []AnthropicContentBlock `json:"content"`
}
