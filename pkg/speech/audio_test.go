package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileExtension(t *testing.T) {
	tests := map[string]string{
		MIMETypeMP3:                ".mp3",
		"audio/wav":                ".wav",
		"Audio/MPEG":               ".mp3",
		"audio/ogg; codecs=opus":   ".ogg",
		"application/octet-stream": ".bin",
		"":                         ".bin",
	}
	for in, want := range tests {
		assert.Equal(t, want, FileExtension(in), in)
	}
}
