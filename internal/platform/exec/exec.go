package exec

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

const DefaultTimeout = 60 * time.Second

type Request struct {
	LaunchPath string
	Args       []string
	Dir        string

	// Stdin is written to the process before it is waited on. Empty means no input.
	Stdin string

	Timeout time.Duration
}

type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

func Which(name string) (string, bool) {
	p, err := exec.LookPath(name)
	if err == nil && strings.TrimSpace(p) != "" {
		return p, true
	}
	return "", false
}

// Run executes a process with a timeout and captures stdout/stderr.
// - LaunchPath must be an executable path (no shell expansion).
// - exitCode=124 is used for timeout, matching common conventions.
func Run(req Request) Result {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, req.LaunchPath, req.Args...)
	if strings.TrimSpace(req.Dir) != "" {
		cmd.Dir = req.Dir
	}
	if req.Stdin != "" {
		cmd.Stdin = strings.NewReader(req.Stdin)
	}

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Start(); err != nil {
		return Result{
			ExitCode: -1,
			Stderr:   "Failed to start " + req.LaunchPath + ": " + err.Error(),
		}
	}

	waitErr := cmd.Wait()

	timedOut := ctx.Err() == context.DeadlineExceeded
	if timedOut && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}

	exitCode := 0
	switch {
	case timedOut:
		exitCode = 124
	case waitErr != nil:
		if ee, ok := waitErr.(*exec.ExitError); ok && ee.ProcessState != nil {
			exitCode = ee.ProcessState.ExitCode()
		} else {
			exitCode = 1
		}
	case cmd.ProcessState != nil:
		exitCode = cmd.ProcessState.ExitCode()
	}

	return Result{
		ExitCode: exitCode,
		Stdout:   outBuf.String(),
		Stderr:   errBuf.String(),
		TimedOut: timedOut,
	}
}
