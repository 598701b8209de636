package chat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG header, enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func writeTempImage(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestComposerAppendTranscript(t *testing.T) {
	var c Composer

	c.AppendTranscript("hello")
	assert.Equal(t, "hello", c.Text())

	c.AppendTranscript("  world  ")
	assert.Equal(t, "hello world", c.Text())

	c.AppendTranscript("   ")
	assert.Equal(t, "hello world", c.Text())
}

func TestComposerAttachReplacesPreviousImage(t *testing.T) {
	var c Composer

	first := writeTempImage(t, "a.png", pngHeader)
	require.NoError(t, c.AttachImageFile(first))
	require.NotNil(t, c.Image())
	assert.Equal(t, "image/png", c.Image().MIME)

	second := writeTempImage(t, "b.png", append(append([]byte{}, pngHeader...), 1, 2, 3))
	require.NoError(t, c.AttachImageFile(second))
	require.NotNil(t, c.Image())
	assert.Len(t, c.Image().Data, len(pngHeader)+3)
}

func TestComposerAttachRejectsOversizedFile(t *testing.T) {
	var c Composer

	big := writeTempImage(t, "big.bin", make([]byte, maxAttachmentBytes+1))
	err := c.AttachImageFile(big)

	assert.Error(t, err)
	assert.Nil(t, c.Image())
}

func TestComposerTakeClearsEverything(t *testing.T) {
	var c Composer
	c.SetText("  describe this  ")
	require.NoError(t, c.AttachImageFile(writeTempImage(t, "a.png", pngHeader)))

	draft := c.Take()

	assert.Equal(t, "describe this", draft.Text)
	assert.NotNil(t, draft.Image)
	assert.Empty(t, c.Text())
	assert.Nil(t, c.Image())

	assert.True(t, c.Take().Empty())
}

func TestDraftEmpty(t *testing.T) {
	var c Composer
	c.SetText("   ")
	assert.True(t, c.Take().Empty())

	c.SetText("")
	require.NoError(t, c.AttachImageFile(writeTempImage(t, "a.png", pngHeader)))
	assert.False(t, c.Take().Empty())
}
