package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeEmbedURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=LjLamj-b0I8", "https://www.youtube.com/embed/LjLamj-b0I8?rel=0"},
		{"https://www.youtube.com/watch?v=LjLamj-b0I8&t=10s", "https://www.youtube.com/embed/LjLamj-b0I8?rel=0"},
		{"https://youtu.be/LjLamj-b0I8", "https://www.youtube.com/embed/LjLamj-b0I8?rel=0"},
		{"https://www.youtube.com/embed/LjLamj-b0I8", "https://www.youtube.com/embed/LjLamj-b0I8?rel=0"},
		{"https://vimeo.com/12345", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, YouTubeEmbedURL(tt.in), tt.in)
	}
}
