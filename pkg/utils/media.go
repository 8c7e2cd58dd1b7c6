package utils

import (
	"strings"

	"github.com/dlclark/regexp2"
)

var youTubeVideo = regexp2.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)(?<id>[^&\n?#]+)`, regexp2.None)

// YouTubeEmbedURL returns the player URL for a YouTube link, or "" when
// trailerURL is not one.
func YouTubeEmbedURL(trailerURL string) string {
	m, err := youTubeVideo.FindStringMatch(strings.TrimSpace(trailerURL))
	if err != nil || m == nil {
		return ""
	}
	return "https://www.youtube.com/embed/" + m.GroupByName("id").String() + "?rel=0"
}
