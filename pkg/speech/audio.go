package speech

import "strings"

var extensionByMIME = map[string]string{
	MIMETypeMP3:    ".mp3",
	"audio/mp3":    ".mp3",
	MIMETypeWAV:    ".wav",
	"audio/x-wav":  ".wav",
	"audio/wave":   ".wav",
	MIMETypeOGG:    ".ogg",
	"audio/opus":   ".opus",
	"audio/flac":   ".flac",
	"audio/L16":    ".pcm",
	"audio/x-aiff": ".aiff",
}

// FileExtension returns the file extension for synthesized audio of the given
// MIME type. Parameters such as "; codecs=opus" are ignored; unknown types get ".bin".
func FileExtension(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	base = strings.TrimSpace(base)
	if ext, ok := extensionByMIME[base]; ok {
		return ext
	}
	for k, ext := range extensionByMIME {
		if strings.EqualFold(k, base) {
			return ext
		}
	}
	return ".bin"
}
