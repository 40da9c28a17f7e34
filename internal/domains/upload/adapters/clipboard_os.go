package adapters

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/chatdrop/chatdrop/internal/domains/upload/ports"
)

// OSClipboard writes text through atotto/clipboard and falls back to pbcopy
// when the library is unsupported or its write fails.
type OSClipboard struct {
	Exec ports.Exec

	write       func(string) error
	unsupported bool
}

func NewOSClipboard(x ports.Exec) OSClipboard {
	return OSClipboard{
		Exec:        x,
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

func (c OSClipboard) WriteText(text string) error {
	var libErr error
	if !c.unsupported && c.write != nil {
		if libErr = c.write(text); libErr == nil {
			return nil
		}
	}

	if err := runTool(c.Exec, "pbcopy", ports.ExecRequest{Stdin: text}); err != nil {
		if libErr != nil {
			return fmt.Errorf("clipboard write failed (%v); fallback: %w", libErr, err)
		}
		return err
	}
	return nil
}
