package speech

import "time"

const (
	// ElevenLabs
	ElevenLabsBaseURL         = "https://api.elevenlabs.io/v1"
	ElevenLabsEnglishModel    = "eleven_turbo_v2_5"
	ElevenLabsMultilingual    = "eleven_multilingual_v2"
	ElevenLabsOutputFormat    = "mp3_44100_128"
	ElevenLabsDefaultVoice    = "21m00Tcm4TlvDq8ikWAM"
	ElevenLabsDefaultTimeout  = 30 * time.Second
	ElevenLabsDefaultStable   = 0.5
	ElevenLabsDefaultSimBoost = 0.75

	// Google Cloud
	GoogleAudioEncodingMP3 = "MP3"

	MIMETypeMP3 = "audio/mpeg"
	MIMETypeWAV = "audio/wav"
	MIMETypeOGG = "audio/ogg"

	DefaultLanguageCode = "en-US"
)

// StudentVoices are the ElevenLabs voices handed out to agents in order.
var StudentVoices = []string{
	"21m00Tcm4TlvDq8ikWAM",
	"AZnzlk1XvdvUeBnXmlld",
	"EXAVITQu4vr4xnSDxMaL",
	"ErXwobaYiN019PkySvjV",
	"MF3mGyEYCl7XYWbV9V6O",
	"TxGEqnHWrfWFTfGW9XjX",
}
