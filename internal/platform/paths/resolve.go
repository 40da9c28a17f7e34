package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/chatdrop/chatdrop/internal/platform/errors"
)

// EnvCallerPWD lets a wrapper script that changes directories before running
// chatdrop preserve the directory the user actually invoked it from.
const EnvCallerPWD = "CHATDROP_CALLER_PWD"

func InvocationDir() string {
	if v := strings.TrimSpace(os.Getenv(EnvCallerPWD)); v != "" {
		if abs, err := filepath.Abs(v); err == nil {
			return abs
		}
		return v
	}

	if cwd, err := os.Getwd(); err == nil && strings.TrimSpace(cwd) != "" {
		return cwd
	}
	return "."
}

// Resolve returns a clean absolute path. A leading "~/" expands to the home
// directory; other relative paths are taken against InvocationDir. Surrounding
// whitespace is part of the name.
func Resolve(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", errors.NewUsage("path is empty")
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.NewInternal("failed to determine home directory", err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}

	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}

	abs, err := filepath.Abs(filepath.Join(InvocationDir(), p))
	if err != nil {
		return "", errors.NewInternal("failed to resolve path", err)
	}
	return abs, nil
}
