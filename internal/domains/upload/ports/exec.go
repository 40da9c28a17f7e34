package ports

import "time"

type ExecRequest struct {
	LaunchPath string
	Args       []string
	Dir        string
	Stdin      string
	Timeout    time.Duration
}

type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

type Exec interface {
	Which(name string) (string, bool)
	Run(req ExecRequest) ExecResult
}
