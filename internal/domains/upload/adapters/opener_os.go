package adapters

import (
	"github.com/chatdrop/chatdrop/internal/domains/upload/ports"
)

// OSOpener reveals files with open(1) -R, which selects the file in a Finder window.
type OSOpener struct {
	Exec ports.Exec
}

func NewOSOpener(x ports.Exec) OSOpener {
	return OSOpener{Exec: x}
}

func (o OSOpener) Reveal(path string) error {
	return runTool(o.Exec, "open", ports.ExecRequest{
		Args: []string{"-R", path},
	})
}
