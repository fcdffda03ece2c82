// Package genimage generates sticker artwork through the OpenAI Images API.
package genimage

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-image-1"
	defaultSize    = "1024x1024"
)

// promptTemplate frames the subject as printable die-cut sticker artwork.
const promptTemplate = "A die-cut sticker of %s, bold outlines, vivid colors, plain white background, no text"

// Client calls the image-generation API. Zero-value fields fall back to
// package defaults at request time.
type Client struct {
	APIKey     string
	Model      string
	Size       string
	BaseURL    string
	HTTPClient *http.Client
}

// New builds a client from the OPENAI_API_KEY environment variable.
func New() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return &Client{
		APIKey:     apiKey,
		Model:      defaultModel,
		Size:       defaultSize,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// Generate renders one sticker image for the subject and returns the raw
// decoded image bytes.
func (c *Client) Generate(ctx context.Context, subject string) ([]byte, error) {
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	size := c.Size
	if size == "" {
		size = defaultSize
	}
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	requestBody, err := json.Marshal(map[string]interface{}{
		"model":           model,
		"prompt":          fmt.Sprintf(promptTemplate, subject),
		"n":               1,
		"size":            size,
		"response_format": "b64_json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/images/generations", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(response.Data) == 0 {
		return nil, fmt.Errorf("no images returned")
	}

	img, err := base64.StdEncoding.DecodeString(response.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return img, nil
}
