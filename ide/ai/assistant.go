// Package ai provides the HTTP client for the IDE's chat assistant.
package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Assistant talks to an assistant service over HTTP.
type Assistant struct {
	url    string
	client *http.Client
}

// NewAssistant creates a client for the assistant endpoint. An empty url
// leaves the assistant offline; Ask then returns a canned reply so the chat
// panel stays usable in smoke runs without a backend.
func NewAssistant(url string) *Assistant {
	return &Assistant{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

type askResponse struct {
	Reply string `json:"reply"`
}

// Ask sends the prompt and returns the assistant's reply.
func (a *Assistant) Ask(prompt string) (string, error) {
	if a.url == "" {
		return "Assistant offline. Set the assistant URL to enable replies.", nil
	}

	payload, err := json.Marshal(askRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	resp, err := a.client.Post(a.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("assistant request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("assistant response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d: %s", resp.StatusCode, body)
	}

	var out askResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("assistant reply is not valid JSON: %w", err)
	}
	return out.Reply, nil
}
