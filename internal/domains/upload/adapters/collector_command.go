package adapters

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/chatdrop/chatdrop/internal/domains/upload/ports"
	"github.com/chatdrop/chatdrop/internal/platform/paths"
)

const DefaultCollectTimeout = 10 * time.Minute

// CommandCollector runs the collect command directly, without a shell.
// An empty dir means the invocation directory.
type CommandCollector struct {
	Exec    ports.Exec
	Timeout time.Duration
}

func NewCommandCollector(x ports.Exec) CommandCollector {
	return CommandCollector{Exec: x, Timeout: DefaultCollectTimeout}
}

func (c CommandCollector) Collect(dir string, argv []string) error {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return errors.New("collect command is empty")
	}
	if dir == "" {
		dir = paths.InvocationDir()
	}

	req := ports.ExecRequest{
		Args:    argv[1:],
		Dir:     dir,
		Timeout: c.Timeout,
	}

	name := argv[0]
	if !strings.ContainsRune(name, filepath.Separator) {
		return runTool(c.Exec, name, req)
	}

	// Paths with a separator are taken against dir, not the process cwd.
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	req.LaunchPath = name
	return checkResult(filepath.Base(name), c.Exec.Run(req))
}
