package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEveryKindHasTag(t *testing.T) {
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		assert.True(t, k.IsValid(), k.String())
		assert.NotEmpty(t, k.Tag(), k.String())
	}

	assert.False(t, KindEnum(0).IsValid())
	assert.Empty(t, KindEnum(0).Tag())
}

func TestIsStructured(t *testing.T) {
	type server struct{ Host string }

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"struct", server{}, true},
		{"pointer", &server{}, true},
		{"time", time.Now(), true},
		{"nil pointer", (*server)(nil), false},
		{"nil", nil, false},
		{"int", 1, false},
		{"string", "x", false},
		{"map", map[string]any{}, false},
		{"slice", []string{"a"}, false},
		{"func", func() {}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.value).IsStructured())
		})
	}
}
