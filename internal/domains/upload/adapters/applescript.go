package adapters

import (
	"fmt"
	"strings"
)

// Virtual key codes address physical keys, so the shortcuts still fire when a
// non-Latin input source is active.
const (
	keyCodeC      = 8
	keyCodeV      = 9
	keyCodeReturn = 36
)

// quoteAppleScript renders s as an AppleScript string literal.
func quoteAppleScript(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

func closeFinderWindowsScript() string {
	return `
tell application "Finder"
  close every window
end tell
`
}

// The two one-second pauses give Finder time to apply the selection and
// the clipboard time to receive the file before focus moves away.
func selectAndCopyScript(path string) string {
	return fmt.Sprintf(`
tell application "Finder"
  activate
  select file (POSIX file %s as alias)
  delay 1
end tell

tell application "System Events"
  key code %d using {command down}
  delay 1
end tell
`, quoteAppleScript(path), keyCodeC)
}

func openLocationScript(app string, url string) string {
	return fmt.Sprintf(`
tell application %s
  activate
  open location %s
end tell
`, quoteAppleScript(app), quoteAppleScript(url))
}

func pasteIntoScript(app string) string {
	return fmt.Sprintf(`
tell application %s
  activate
  delay 1
end tell

tell application "System Events"
  key code %d using {command down}
  delay 2
end tell
`, quoteAppleScript(app), keyCodeV)
}

func pasteAndSubmitScript() string {
	return fmt.Sprintf(`
tell application "System Events"
  key code %d using {command down}
  delay 1
  key code %d
end tell
`, keyCodeV, keyCodeReturn)
}
