package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-chat-service/pkg/gemini"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
			GenerationConfig struct {
				Temperature     float64 `json:"temperature"`
				TopP            float64 `json:"topP"`
				MaxOutputTokens int     `json:"maxOutputTokens"`
			} `json:"generationConfig"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		prompt := req.Contents[0].Parts[0].Text
		switch {
		case strings.Contains(prompt, "cause_500"):
			w.WriteHeader(http.StatusInternalServerError)
		case strings.Contains(prompt, "cause_empty"):
			w.Write([]byte(`{"candidates": []}`))
		default:
			if req.GenerationConfig.TopP != 0.9 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{
				"candidates": [
					{"content": {"parts": [{"text": "  Hi there  "}]}}
				]
			}`))
		}
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := &gemini.Request{
		Prompt:          "Hello",
		Temperature:     0.5,
		TopP:            0.9,
		MaxOutputTokens: 1000,
	}

	t.Run("success trims whitespace", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("GenerateContent: %v", err)
		}
		if resp.Text != "Hi there" {
			t.Errorf("expected trimmed text, got %q", resp.Text)
		}
		if resp.ModelName != client.Model() {
			t.Errorf("expected model %q, got %q", client.Model(), resp.ModelName)
		}
	})

	t.Run("api error", func(t *testing.T) {
		bad := *req
		bad.Prompt = "cause_500"
		if _, err := client.GenerateContent(context.Background(), &bad); err == nil {
			t.Error("expected error on API 500")
		}
	})

	t.Run("empty candidates", func(t *testing.T) {
		bad := *req
		bad.Prompt = "cause_empty"
		if _, err := client.GenerateContent(context.Background(), &bad); err == nil {
			t.Error("expected error on empty candidates")
		}
	})
}
