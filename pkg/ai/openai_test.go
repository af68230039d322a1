package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mockmind/mockmind-api/pkg/config"
)

func newTestClient(baseURL string) *OpenAIClient {
	return NewOpenAIClient(&config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
	})
}

func TestChat_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Got it. That makes sense."}},
			},
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	content, err := client.Chat(context.Background(), []ChatMessage{
		{Role: "user", Content: "hello"},
	}, ChatOptions{Temperature: 0.9, MaxTokens: 50})
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if content != "Got it. That makes sense." {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestChat_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	if _, err := client.Chat(context.Background(), nil, ChatOptions{}); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestChat_JSONMode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)
		rf, ok := payload["response_format"].(map[string]interface{})
		if !ok || rf["type"] != "json_object" {
			t.Fatalf("expected json_object response_format, got %v", payload["response_format"])
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "{}"}},
			},
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	if _, err := client.Chat(context.Background(), nil, ChatOptions{JSONMode: true}); err != nil {
		t.Fatalf("chat failed: %v", err)
	}
}

func TestSynthesize_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/speech" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var payload speechRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Voice != "nova" {
			t.Fatalf("unexpected voice %q", payload.Voice)
		}
		// Speed 9.0 must arrive clamped to the maximum
		if payload.Speed != MaxSpeechSpeed {
			t.Fatalf("speed = %v, want %v", payload.Speed, MaxSpeechSpeed)
		}
		w.Write([]byte("fake-mp3-bytes"))
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	result, err := client.Synthesize(context.Background(), "Tell me about yourself", "nova", 9.0)
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	if !strings.HasPrefix(result.Audio, "data:audio/mp3;base64,") {
		t.Fatalf("audio is not a data URL: %.40q", result.Audio)
	}
	if result.DurationSeconds <= 0 {
		t.Fatalf("duration estimate = %v, want > 0", result.DurationSeconds)
	}
}

func TestSynthesize_InvalidVoice(t *testing.T) {
	client := newTestClient("http://unused.invalid")
	if _, err := client.Synthesize(context.Background(), "hi", "robot", 1.0); err == nil {
		t.Fatal("expected error for invalid voice")
	}
}

func TestSynthesize_EmptyText(t *testing.T) {
	client := newTestClient("http://unused.invalid")
	if _, err := client.Synthesize(context.Background(), "", "alloy", 1.0); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestClampSpeechSpeed(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0.1, 0.25},
		{0.25, 0.25},
		{0.95, 0.95},
		{4.0, 4.0},
		{10, 4.0},
	}
	for _, tc := range cases {
		if got := ClampSpeechSpeed(tc.in); got != tc.want {
			t.Errorf("ClampSpeechSpeed(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
