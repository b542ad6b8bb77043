package gemini

import (
	"errors"
	"net/http"
	"time"
)

// Config holds client configuration. APIKey is required; everything else
// falls back to package defaults.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate checks required fields.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("gemini: api key is required")
	}
	return nil
}

// Request is a normalized text-generation request. The prompt is a single
// pre-formatted text block; generation parameters ride along with every call.
type Request struct {
	Prompt          string
	Temperature     float64
	TopP            float64
	MaxOutputTokens int
}

// Response is a normalized generation response, unwrapped to plain text.
type Response struct {
	Text      string
	ModelName string
}

// ---- Gemini wire types ----

type geminiRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}
