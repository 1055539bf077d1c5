package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageCode(t *testing.T) {
	tests := map[string]string{
		"":        "en-US",
		"English": "en-US",
		"spanish": "es-ES",
		"en":      "en-US",
		"fr":      "fr-FR",
		"pt-PT":   "pt-PT",
		"klingon": "en-US",
	}
	for in, want := range tests {
		assert.Equal(t, want, LanguageCode(in), in)
	}
}

func TestLanguageName(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"en":      "English",
		"es-ES":   "Spanish",
		"english": "English",
		"German":  "German",
		"xx":      "xx",
	}
	for in, want := range tests {
		assert.Equal(t, want, LanguageName(in), in)
	}
}

func TestModelFor(t *testing.T) {
	assert.Equal(t, ElevenLabsEnglishModel, ModelFor("English"))
	assert.Equal(t, ElevenLabsEnglishModel, ModelFor("en"))
	assert.Equal(t, ElevenLabsEnglishModel, ModelFor("EN"))
	assert.Equal(t, ElevenLabsEnglishModel, ModelFor(""))
	assert.Equal(t, ElevenLabsMultilingual, ModelFor("Spanish"))
	assert.Equal(t, ElevenLabsMultilingual, ModelFor("fr"))
}
