package ports

// Clipboard replaces the system clipboard contents with text.
// Unlike a best-effort copy, failure is reported to the caller.
type Clipboard interface {
	WriteText(text string) error
}
