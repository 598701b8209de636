package chat

import (
	"regexp"
	"strings"
)

// imageRequestRE matches an image-generation intent: a request verb followed
// by an optional article and an image noun, anchored at the start of the text.
// "draw a picture of a cat" routes to the image path; "draw conclusions" does not.
var imageRequestRE = regexp.MustCompile(`(?i)^(create|draw|generate|make|show me) (an |a )?(image|picture|drawing|sketch)`)

// IsImageRequest classifies a draft's text as an image-generation request.
func IsImageRequest(text string) bool {
	return imageRequestRE.MatchString(strings.TrimSpace(text))
}
