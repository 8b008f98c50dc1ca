package hal

import "github.com/atotto/clipboard"

// SystemClipboard talks to the OS clipboard utility (xclip/xsel, pbcopy,
// or the Windows API). Calls are synchronous and never overlap: the console
// is single threaded.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteText(s string) error {
	return clipboard.WriteAll(s)
}
