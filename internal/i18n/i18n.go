// Package i18n provides the message-lookup functions injected into the
// validators. Validators never read locale from ambient state; they receive
// a MessageFunc and stay locale-agnostic.
package i18n

import "golang.org/x/text/language"

const DefaultLocale = "en"

var (
	supported = []language.Tag{
		language.English,
		language.Ukrainian,
	}
	localeNames = []string{"en", "uk"}
	matcher     = language.NewMatcher(supported)
)

type MessageFunc func(key string) string

// Match resolves an Accept-Language header to a supported locale.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, _ := matcher.Match(tags...)
	return localeNames[idx]
}

// Lookup returns the message function for a locale, falling back to English
// per key and finally to the key itself so a missing entry is visible
// instead of blank.
func Lookup(locale string) MessageFunc {
	table, ok := messages[normalize(locale)]
	if !ok {
		table = messages[DefaultLocale]
	}
	fallback := messages[DefaultLocale]

	return func(key string) string {
		if msg, ok := table[key]; ok {
			return msg
		}
		if msg, ok := fallback[key]; ok {
			return msg
		}
		return key
	}
}

func normalize(locale string) string {
	for i := 0; i < len(locale); i++ {
		if locale[i] == '-' || locale[i] == '_' {
			return locale[:i]
		}
	}
	return locale
}
