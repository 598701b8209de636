package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsImageRequest(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"draw an image", "draw an image of a cat", true},
		{"create a picture", "create a picture of the sea", true},
		{"generate uppercase", "Generate an image of the sea", true},
		{"make a drawing", "make a drawing of my house", true},
		{"show me a sketch", "show me a sketch of a bridge", true},
		{"create a sketch", "create a sketch of a tree", true},
		{"no article", "draw image of a dog", true},
		{"leading whitespace", "   draw a picture of snow", true},
		{"verb without noun", "draw conclusions from this data", false},
		{"noun mid-sentence", "can you draw an image of a cat", false},
		{"plain question", "what is the capital of France", false},
		{"mentions image only", "my image won't load, help", false},
		{"empty", "", false},
		{"image noun without verb", "picture this scenario", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImageRequest(tt.input))
		})
	}
}
