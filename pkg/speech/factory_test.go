package speech

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptive-response-engine/config"
)

func TestInitializeSynthesizer(t *testing.T) {
	ctx := context.Background()

	synth, err := InitializeSynthesizer(ctx, &config.SpeechConfig{})
	require.NoError(t, err)
	assert.Nil(t, synth)

	synth, err = InitializeSynthesizer(ctx, &config.SpeechConfig{
		TTSProvider: ProviderElevenLabs,
		ElevenLabs:  config.ElevenLabsConfig{APIKey: "k"},
	})
	require.NoError(t, err)
	assert.Equal(t, "elevenlabs", synth.Name())

	_, err = InitializeSynthesizer(ctx, &config.SpeechConfig{TTSProvider: ProviderElevenLabs})
	assert.Error(t, err)

	_, err = InitializeSynthesizer(ctx, &config.SpeechConfig{TTSProvider: "espeak"})
	assert.Error(t, err)
}

func TestInitializeTranscriber_Disabled(t *testing.T) {
	stt, err := InitializeTranscriber(context.Background(), &config.SpeechConfig{})
	require.NoError(t, err)
	assert.Nil(t, stt)
}

func TestVoices(t *testing.T) {
	assert.Equal(t, []string{"a"}, Voices(&config.SpeechConfig{TTSProvider: ProviderGoogle, Voices: []string{"a"}}))
	assert.Equal(t, StudentVoices, Voices(&config.SpeechConfig{TTSProvider: ProviderElevenLabs}))
	assert.Nil(t, Voices(&config.SpeechConfig{TTSProvider: ProviderGoogle}))
}
