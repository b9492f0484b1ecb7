package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"hello", "hello", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"ABC", "abc", 3},

		// Option keys
		{"timeout", "timeuot", 2},
		{"port", "prt", 1},
		{"loglevel", "logleve", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			if reverse := Levenshtein(tt.b, tt.a); result != reverse {
				t.Errorf("Levenshtein(%q, %q) = %d is not symmetric (%d)", tt.a, tt.b, result, reverse)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"hello", "hello", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"port", "prt", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Similarity(tt.a, tt.b)
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestKeySimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		// Spelling variants
		{"logLevel", "log_level", 1.0},
		{"log-level", "log.level", 1.0},
		{"TLSConfig", "tls_config", 1.0},

		// Unit suffixes
		{"timeout_ms", "timeout", 1.0},
		{"timeoutSeconds", "timeout_secs", 1.0},
		{"user_ids", "userId", 1.0},

		// Unrelated
		{"abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := KeySimilarity(tt.a, tt.b)
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("KeySimilarity(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Levenshtein("max_idle_connections", "max_idle_conections")
	}
}

func BenchmarkKeySimilarity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		KeySimilarity("maxIdleTimeoutSeconds", "max_idle_timeout")
	}
}
