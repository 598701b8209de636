package chat

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
)

// maxAttachmentBytes bounds inline image attachments; anything larger would
// bloat the persisted log and the request payload.
const maxAttachmentBytes = 8 << 20

// Composer aggregates the three input modalities (typed text, attached
// image, voice transcript) into one pending draft. Single-image-at-a-time:
// a new attachment replaces the previous one.
type Composer struct {
	text  string
	image *models.Attachment
}

func (c *Composer) SetText(text string) {
	c.text = text
}

func (c *Composer) Text() string {
	return c.text
}

// AppendTranscript appends a recognized voice transcript to the text buffer,
// space-separated from any existing text.
func (c *Composer) AppendTranscript(transcript string) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return
	}
	if c.text == "" {
		c.text = transcript
		return
	}
	c.text = c.text + " " + transcript
}

// AttachImageFile reads a local image file fully into memory for inline
// transport, replacing any previously attached image.
func (c *Composer) AttachImageFile(path string) error {
	img, err := LoadImageFile(path)
	if err != nil {
		return err
	}
	c.image = img
	return nil
}

// LoadImageFile reads an image from disk into an inline attachment, sniffing
// the MIME type from content.
func LoadImageFile(path string) (*models.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading attachment: %w", err)
	}
	if len(data) > maxAttachmentBytes {
		return nil, fmt.Errorf("attachment too large: %d bytes (max %d)", len(data), maxAttachmentBytes)
	}
	return &models.Attachment{
		MIME: http.DetectContentType(data),
		Data: data,
	}, nil
}

func (c *Composer) Image() *models.Attachment {
	return c.image
}

func (c *Composer) ClearImage() {
	c.image = nil
}

// Take returns the pending draft and clears the composer. Called on submit;
// the clear happens regardless of send outcome.
func (c *Composer) Take() models.Draft {
	draft := models.Draft{
		Text:  strings.TrimSpace(c.text),
		Image: c.image,
	}
	c.text = ""
	c.image = nil
	return draft
}
