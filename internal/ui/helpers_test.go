package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
)

func TestPromptPreview(t *testing.T) {
	assert.Equal(t, "hello world", PromptPreview("  hello\n  world  "))
	assert.Equal(t, "(image)", PromptPreview("   "))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "hello", TruncateRunes("hello", 10))
	assert.Equal(t, "hell…", TruncateRunes("hello world", 5))
	assert.Equal(t, "", TruncateRunes("hello", 1))
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "just now", RelativeTime(now.Add(-10*time.Second)))
	assert.Equal(t, "5m ago", RelativeTime(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", RelativeTime(now.Add(-3*time.Hour)))
	assert.Equal(t, "2d ago", RelativeTime(now.Add(-49*time.Hour)))
}

func TestWrappedLineCount(t *testing.T) {
	assert.Equal(t, 1, WrappedLineCount("", 10))
	assert.Equal(t, 2, WrappedLineCount("a\nb", 10))
	assert.Equal(t, 3, WrappedLineCount("aaaaaaaaaaaaaaaaaaaaa", 10)) // 21 chars at width 10
	assert.Equal(t, 1, WrappedLineCount("anything", 0))
}

func TestExportImageIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	msg := models.Message{
		ID:    "m1",
		Image: &models.Attachment{MIME: "image/png", Data: []byte{1, 2, 3}},
	}

	first, err := ExportImage(dir, msg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "m1.png"), first)

	// Mutate the file; a second export must not overwrite it.
	require.NoError(t, os.WriteFile(first, []byte{9}, 0o600))
	second, err := ExportImage(dir, msg)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, data)
}

func TestExportImageRequiresImage(t *testing.T) {
	_, err := ExportImage(t.TempDir(), models.Message{ID: "m1"})
	assert.Error(t, err)
}

func TestExtForMIME(t *testing.T) {
	assert.Equal(t, ".jpg", extForMIME("image/jpeg"))
	assert.Equal(t, ".webp", extForMIME("image/webp"))
	assert.Equal(t, ".png", extForMIME("image/png"))
	assert.Equal(t, ".png", extForMIME("application/octet-stream"))
}

func TestNextMode(t *testing.T) {
	assert.Equal(t, models.ModeWeb, nextMode(models.ModeGeneral))
	assert.Equal(t, models.ModeReasoning, nextMode(models.ModeWeb))
	assert.Equal(t, models.ModeCoding, nextMode(models.ModeReasoning))
	assert.Equal(t, models.ModeGeneral, nextMode(models.ModeCoding))
	assert.Equal(t, models.ModeGeneral, nextMode(models.Mode("bogus")))
}
