package adapters

import (
	"time"

	"github.com/chatdrop/chatdrop/internal/domains/upload/ports"
)

// OSAScriptRunner runs AppleScript through osascript(1).
type OSAScriptRunner struct {
	Exec    ports.Exec
	Timeout time.Duration
}

func NewOSAScriptRunner(x ports.Exec) OSAScriptRunner {
	return OSAScriptRunner{Exec: x, Timeout: 30 * time.Second}
}

func (r OSAScriptRunner) RunScript(script string) error {
	return runTool(r.Exec, "osascript", ports.ExecRequest{
		Args:    []string{"-e", script},
		Timeout: r.Timeout,
	})
}
