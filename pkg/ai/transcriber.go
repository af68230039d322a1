package ai

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/mockmind/mockmind-api/pkg/config"
)

// Transcriber converts recorded answer audio to text using AssemblyAI.
// Transcription is synchronous: the call polls until the transcript is done
// or the job fails.
type Transcriber struct {
	client *aai.Client
}

// NewTranscriber creates a transcriber using the provided config.
// If cfg is nil, falls back to environment variables.
func NewTranscriber(cfg *config.AssemblyAIConfig) *Transcriber {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &Transcriber{
		client: aai.NewClient(apiKey),
	}
}

// TranscribeFromURL transcribes the audio at the given URL and returns the
// transcript text together with the measured audio duration in seconds.
func (t *Transcriber) TranscribeFromURL(ctx context.Context, audioURL string) (string, float64, error) {
	if audioURL == "" {
		return "", 0, fmt.Errorf("audio URL is required")
	}

	transcript, err := t.client.Transcripts.TranscribeFromURL(ctx, audioURL, &aai.TranscriptOptionalParams{})
	if err != nil {
		return "", 0, fmt.Errorf("transcription request failed: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", 0, fmt.Errorf("transcription failed: %s", msg)
	}

	text := ""
	if transcript.Text != nil {
		text = *transcript.Text
	}

	duration := 0.0
	if transcript.AudioDuration != nil {
		duration = *transcript.AudioDuration
	}

	return text, duration, nil
}
