package console

import (
	"fmt"
	"io"
)

// Logger writes human-readable lines. It is not a machine-readable protocol.
type Logger struct {
	w io.Writer
}

func New(w io.Writer) Logger {
	return Logger{w: w}
}

func (l Logger) Info(message string) {
	l.write("info", message)
}

func (l Logger) Warn(message string) {
	l.write("warn", message)
}

func (l Logger) Error(message string) {
	l.write("error", message)
}

// Step prints a progress line such as "[2/5] selecting and copying file".
func (l Logger) Step(index int, total int, message string) {
	l.write(fmt.Sprintf("%d/%d", index, total), message)
}

func (l Logger) write(level string, message string) {
	if l.w == nil {
		return
	}
	_, _ = fmt.Fprintf(l.w, "[%s] %s\n", level, message)
}
