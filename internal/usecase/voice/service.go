package voice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mockmind/mockmind-api/internal/infrastructure/cache"
	"github.com/mockmind/mockmind-api/pkg/ai"
)

// ErrEmptyText is returned when synthesis is requested without text
var ErrEmptyText = errors.New("text is required")

// Synthesizer converts text to speech
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string, speed float64) (*ai.SpeechResult, error)
}

// SynthesizeInput carries one synthesis request. Voice and Speed fall back to
// the configured defaults when zero.
type SynthesizeInput struct {
	Text  string
	Voice string
	Speed float64
}

// Service defines the interface for the voice use case
type Service interface {
	// Synthesize converts text to speech, serving repeated utterances from
	// the cache
	Synthesize(ctx context.Context, input SynthesizeInput) (*ai.SpeechResult, error)
}

// Ensure VoiceService implements Service interface
var _ Service = (*VoiceService)(nil)

// VoiceService handles speech synthesis with caching. Interview questions are
// repeated across sessions, so synthesized clips are cached by content.
type VoiceService struct {
	synthesizer  Synthesizer
	store        cache.Store
	defaultVoice string
	defaultSpeed float64
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewVoiceService creates a new voice service
func NewVoiceService(
	synthesizer Synthesizer,
	store cache.Store,
	defaultVoice string,
	defaultSpeed float64,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *VoiceService {
	return &VoiceService{
		synthesizer:  synthesizer,
		store:        store,
		defaultVoice: defaultVoice,
		defaultSpeed: defaultSpeed,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// Synthesize converts text to speech
func (s *VoiceService) Synthesize(ctx context.Context, input SynthesizeInput) (*ai.SpeechResult, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrEmptyText
	}

	voice := input.Voice
	if voice == "" {
		voice = s.defaultVoice
	}
	speed := input.Speed
	if speed == 0 {
		speed = s.defaultSpeed
	}
	speed = ai.ClampSpeechSpeed(speed)

	key := cacheKey(input.Text, voice, speed)
	if cached, ok := s.store.Get(ctx, key); ok {
		var result ai.SpeechResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
		s.store.Delete(ctx, key)
	}

	result, err := s.synthesizer.Synthesize(ctx, input.Text, voice, speed)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(result); err == nil {
		s.store.Set(ctx, key, string(payload), s.cacheTTL)
	} else {
		s.logger.Warn("failed to marshal speech result for cache", zap.Error(err))
	}
	return result, nil
}

// cacheKey digests the utterance and synthesis parameters
func cacheKey(text, voice string, speed float64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%.2f", text, voice, speed)))
	return "tts:" + hex.EncodeToString(sum[:])
}
