package editor

import "errors"

// ErrClipboardUnavailable is returned when no clipboard capability is wired
// in, or the host's clipboard cannot serve the request.
var ErrClipboardUnavailable = errors.New("editor: clipboard unavailable")

// Clipboard is the host-provided capability behind Copy, Cut and Paste. A
// failing clipboard must not corrupt editor state: the engine only mutates
// the buffer after a successful call.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// noClipboard is the default capability; every operation fails.
type noClipboard struct{}

func (noClipboard) ReadText() (string, error)  { return "", ErrClipboardUnavailable }
func (noClipboard) WriteText(string) error     { return ErrClipboardUnavailable }
