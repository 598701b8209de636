// Package speech defines the optional speech-to-text capability. The
// capability is external and absent on most terminal platforms; a nil
// Recognizer means voice input is unavailable and the UI surfaces a notice.
package speech

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by recognizers that cannot capture audio.
var ErrUnavailable = errors.New("speech recognition is not available on this platform")

// Recognizer turns one listening session into a transcript. Recognize blocks
// until a transcript is ready, the capability fails, or ctx is cancelled.
// No partial or interim transcripts: listening is a simple on/off toggle.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// System returns the platform speech-to-text capability, or nil when the
// platform has none. Terminal builds currently ship without one.
func System() Recognizer {
	return nil
}
