package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"
)

// Client is a minimal generateContent client for the Gemini REST API. Every
// call is single-shot: no retries, no streaming.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(apiKey string, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type prompt struct {
	system string
	parts  []part
	schema *Schema
}

func textPrompt(system string, text string) prompt {
	return prompt{system: system, parts: []part{{Text: text}}}
}

func (p prompt) withImage(imageData []byte, mimeType string) prompt {
	if len(imageData) == 0 {
		return p
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	imagePart := part{InlineData: &inlineData{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(imageData),
	}}
	p.parts = append([]part{imagePart}, p.parts...)
	return p
}

func (p prompt) withSchema(schema *Schema) prompt {
	p.schema = schema
	return p
}

// generate sends one prompt and returns the model's text response, with
// markdown code fences stripped.
func (client *Client) generate(ctx context.Context, p prompt) (string, error) {
	request := generateRequest{
		Contents: []content{{Role: "user", Parts: p.parts}},
	}
	if p.system != "" {
		request.SystemInstruction = &content{Parts: []part{{Text: p.system}}}
	}
	if p.schema != nil {
		request.GenerationConfig = &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   p.schema,
		}
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", client.baseURL, client.model)
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("X-Goog-Api-Key", client.apiKey)

	httpResponse, err := client.httpClient.Do(httpRequest)
	if err != nil {
		return "", fmt.Errorf("call model: %w", err)
	}
	defer httpResponse.Body.Close()

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if httpResponse.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model returned %d: %s", httpResponse.StatusCode, strings.TrimSpace(string(body)))
	}

	var response generateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	var output strings.Builder
	for _, candidatePart := range response.Candidates[0].Content.Parts {
		output.WriteString(candidatePart.Text)
	}
	return stripCodeFences(output.String()), nil
}

func stripCodeFences(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		if index := strings.Index(text, "\n"); index >= 0 {
			text = text[index+1:]
		}
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-3]
	}
	return strings.TrimSpace(text)
}
