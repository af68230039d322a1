package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
)

// Voices supported by the speech endpoint
var validVoices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}

// Speed multiplier bounds accepted by the speech endpoint
const (
	MinSpeechSpeed = 0.25
	MaxSpeechSpeed = 4.0
)

// ValidVoices returns the supported voice identifiers
func ValidVoices() []string {
	out := make([]string, len(validVoices))
	copy(out, validVoices)
	return out
}

// IsValidVoice reports whether the voice identifier is supported
func IsValidVoice(voice string) bool {
	for _, v := range validVoices {
		if v == voice {
			return true
		}
	}
	return false
}

// ClampSpeechSpeed bounds the speed multiplier to [0.25, 4.0]
func ClampSpeechSpeed(speed float64) float64 {
	return math.Max(MinSpeechSpeed, math.Min(MaxSpeechSpeed, speed))
}

// SpeechResult is a synthesized utterance
type SpeechResult struct {
	// Audio is an mp3 payload encoded as a data URL
	Audio string `json:"audio"`
	// DurationSeconds is a rough estimate based on average speaking rate
	DurationSeconds float64 `json:"duration_seconds"`
}

// speechRequest is payload for /v1/audio/speech
type speechRequest struct {
	Model          string  `json:"model"`
	Input          string  `json:"input"`
	Voice          string  `json:"voice"`
	Speed          float64 `json:"speed"`
	ResponseFormat string  `json:"response_format"`
}

// Synthesize converts text to speech. The voice must be one of ValidVoices and
// the speed multiplier is clamped to the accepted range before the call.
func (c *OpenAIClient) Synthesize(ctx context.Context, text, voice string, speed float64) (*SpeechResult, error) {
	if text == "" {
		return nil, fmt.Errorf("no text provided")
	}
	if !IsValidVoice(voice) {
		return nil, fmt.Errorf("invalid voice %q, must be one of: %s", voice, strings.Join(validVoices, ", "))
	}

	reqBody := speechRequest{
		Model:          c.ttsModel,
		Input:          text,
		Voice:          voice,
		Speed:          ClampSpeechSpeed(speed),
		ResponseFormat: "mp3",
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/v1/audio/speech"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("speech endpoint returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &SpeechResult{
		Audio:           "data:audio/mp3;base64," + base64.StdEncoding.EncodeToString(audio),
		DurationSeconds: EstimateSpeechDuration(text),
	}, nil
}

// EstimateSpeechDuration approximates how long the synthesized clip will run.
// Average speech is about 150 words per minute (2.5 words per second), scaled
// by the 0.95 default speed factor.
func EstimateSpeechDuration(text string) float64 {
	wordCount := len(strings.Fields(text))
	seconds := float64(wordCount) / 2.5 * 0.95
	return math.Round(seconds*1000) / 1000
}
