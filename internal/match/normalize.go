package match

import (
	"strings"
	"unicode"
)

// unitSuffixes are stripped by NormalizeKeyStripped, longest first.
var unitSuffixes = []string{"seconds", "millis", "secs", "ids", "ms", "id"}

// NormalizeKey folds the spelling variants of an option key into one form:
// "logLevel", "log_level", "log-level" and "log.level" all become "loglevel".
func NormalizeKey(s string) string {
	return strings.ToLower(strings.Join(splitWords(s), ""))
}

// NormalizeKeyStripped is NormalizeKey without a trailing unit suffix,
// so "timeout_ms" and "timeoutSeconds" both become "timeout".
// A key made only of a suffix is kept as is.
func NormalizeKeyStripped(s string) string {
	normalized := NormalizeKey(s)

	for _, suffix := range unitSuffixes {
		if len(normalized) > len(suffix) && strings.HasSuffix(normalized, suffix) {
			return strings.TrimSuffix(normalized, suffix)
		}
	}

	return normalized
}

// splitWords splits a key on separators and camel case boundaries:
//   - "retryCount" -> ["retry", "Count"]
//   - "TLSConfig" -> ["TLS", "Config"]
//   - "max_idle-conns" -> ["max", "idle", "conns"]
func splitWords(s string) []string {
	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ' '
}

// startsWord reports a lower-to-upper transition ("retryCount") or the
// last capital of an acronym followed by a lower case rune ("TLSConfig").
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
