package adapters

import (
	"fmt"
	"strings"

	"github.com/chatdrop/chatdrop/internal/domains/upload/ports"
	plat "github.com/chatdrop/chatdrop/internal/platform/exec"
)

type PlatformExec struct{}

func NewPlatformExec() PlatformExec {
	return PlatformExec{}
}

func (PlatformExec) Which(name string) (string, bool) {
	return plat.Which(name)
}

func (PlatformExec) Run(req ports.ExecRequest) ports.ExecResult {
	r := plat.Run(plat.Request{
		LaunchPath: req.LaunchPath,
		Args:       req.Args,
		Dir:        req.Dir,
		Stdin:      req.Stdin,
		Timeout:    req.Timeout,
	})
	return ports.ExecResult{
		ExitCode: r.ExitCode,
		Stdout:   r.Stdout,
		Stderr:   r.Stderr,
		TimedOut: r.TimedOut,
	}
}

// runTool looks name up on PATH and runs it, turning a non-zero exit into an error
// that carries the tool's stderr.
func runTool(x ports.Exec, name string, req ports.ExecRequest) error {
	path, ok := x.Which(name)
	if !ok {
		return fmt.Errorf("%s not found on PATH", name)
	}
	req.LaunchPath = path
	return checkResult(name, x.Run(req))
}

func checkResult(name string, r ports.ExecResult) error {
	if r.TimedOut {
		return fmt.Errorf("%s timed out", name)
	}
	if r.ExitCode != 0 {
		msg := strings.TrimSpace(r.Stderr)
		if msg == "" {
			return fmt.Errorf("%s exited with status %d", name, r.ExitCode)
		}
		return fmt.Errorf("%s exited with status %d: %s", name, r.ExitCode, msg)
	}
	return nil
}
