package voice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mockmind/mockmind-api/internal/infrastructure/cache"
	"github.com/mockmind/mockmind-api/pkg/ai"
)

type fakeSynthesizer struct {
	calls []struct {
		text  string
		voice string
		speed float64
	}
	err error
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, text, voice string, speed float64) (*ai.SpeechResult, error) {
	f.calls = append(f.calls, struct {
		text  string
		voice string
		speed float64
	}{text, voice, speed})
	if f.err != nil {
		return nil, f.err
	}
	return &ai.SpeechResult{
		Audio:           "data:audio/mp3;base64,ZmFrZQ==",
		DurationSeconds: 2.5,
	}, nil
}

func newTestService(synth *fakeSynthesizer) *VoiceService {
	return NewVoiceService(synth, cache.NewMemoryStore(), "alloy", 0.95, time.Hour, zap.NewNop())
}

func TestSynthesize_AppliesDefaults(t *testing.T) {
	synth := &fakeSynthesizer{}
	svc := newTestService(synth)

	result, err := svc.Synthesize(context.Background(), SynthesizeInput{Text: "Tell me about yourself."})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Audio)

	require.Len(t, synth.calls, 1)
	assert.Equal(t, "alloy", synth.calls[0].voice)
	assert.Equal(t, 0.95, synth.calls[0].speed)
}

func TestSynthesize_CachesByContent(t *testing.T) {
	synth := &fakeSynthesizer{}
	svc := newTestService(synth)
	ctx := context.Background()

	first, err := svc.Synthesize(ctx, SynthesizeInput{Text: "Same question."})
	require.NoError(t, err)

	second, err := svc.Synthesize(ctx, SynthesizeInput{Text: "Same question."})
	require.NoError(t, err)
	assert.Equal(t, first.Audio, second.Audio)
	assert.Len(t, synth.calls, 1, "repeated utterance should come from cache")

	// A different voice misses the cache
	_, err = svc.Synthesize(ctx, SynthesizeInput{Text: "Same question.", Voice: "nova"})
	require.NoError(t, err)
	assert.Len(t, synth.calls, 2)
}

func TestSynthesize_EmptyText(t *testing.T) {
	svc := newTestService(&fakeSynthesizer{})
	_, err := svc.Synthesize(context.Background(), SynthesizeInput{Text: "  "})
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestSynthesize_ErrorNotCached(t *testing.T) {
	synth := &fakeSynthesizer{err: errors.New("upstream unavailable")}
	svc := newTestService(synth)
	ctx := context.Background()

	_, err := svc.Synthesize(ctx, SynthesizeInput{Text: "Hello"})
	require.Error(t, err)

	synth.err = nil
	_, err = svc.Synthesize(ctx, SynthesizeInput{Text: "Hello"})
	require.NoError(t, err)
	assert.Len(t, synth.calls, 2)
}

func TestSynthesize_ClampsSpeed(t *testing.T) {
	synth := &fakeSynthesizer{}
	svc := newTestService(synth)

	_, err := svc.Synthesize(context.Background(), SynthesizeInput{Text: "Fast", Speed: 9})
	require.NoError(t, err)
	require.Len(t, synth.calls, 1)
	assert.Equal(t, ai.MaxSpeechSpeed, synth.calls[0].speed)
}
