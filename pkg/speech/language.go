package speech

import "strings"

var languageCodes = map[string]string{
	"english":    "en-US",
	"spanish":    "es-ES",
	"french":     "fr-FR",
	"german":     "de-DE",
	"italian":    "it-IT",
	"portuguese": "pt-BR",
	"dutch":      "nl-NL",
	"japanese":   "ja-JP",
	"korean":     "ko-KR",
	"chinese":    "cmn-CN",
	"hindi":      "hi-IN",
	"vietnamese": "vi-VN",
	"russian":    "ru-RU",
}

var languageNames = map[string]string{
	"en":  "English",
	"es":  "Spanish",
	"fr":  "French",
	"de":  "German",
	"it":  "Italian",
	"pt":  "Portuguese",
	"nl":  "Dutch",
	"ja":  "Japanese",
	"ko":  "Korean",
	"zh":  "Chinese",
	"cmn": "Chinese",
	"hi":  "Hindi",
	"vi":  "Vietnamese",
	"ru":  "Russian",
}

// LanguageCode turns a language name or tag into a BCP-47 tag understood by
// Google Cloud. Unknown names fall back to DefaultLanguageCode.
func LanguageCode(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		return DefaultLanguageCode
	}
	if code, ok := languageCodes[lang]; ok {
		return code
	}
	if strings.Contains(lang, "-") {
		return language
	}
	if name, ok := languageNames[lang]; ok {
		return languageCodes[strings.ToLower(name)]
	}
	return DefaultLanguageCode
}

// LanguageName turns a tag such as "en" or "es-ES" into the English name used
// in prompts. Names pass through; unknown tags are returned unchanged.
func LanguageName(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		return ""
	}
	if _, ok := languageCodes[lang]; ok {
		return strings.ToUpper(lang[:1]) + lang[1:]
	}
	base, _, _ := strings.Cut(lang, "-")
	if name, ok := languageNames[base]; ok {
		return name
	}
	return language
}

// IsEnglish reports whether language names or tags English.
func IsEnglish(language string) bool {
	lang := strings.ToLower(strings.TrimSpace(language))
	return lang == "english" || lang == "en" || strings.HasPrefix(lang, "en-")
}
