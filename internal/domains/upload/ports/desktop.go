package ports

// Desktop is the OS automation capability the upload runner drives.
// Every call blocks until the underlying action has been issued. None of them
// can observe whether the target application actually did what was asked.
type Desktop interface {
	// RevealFile shows path selected in the file manager.
	RevealFile(path string) error
	CloseFinderWindows() error
	// CopyFile selects path in the file manager and copies it to the clipboard.
	CopyFile(path string) error
	// OpenURL brings app to the front and navigates it to url.
	OpenURL(app string, url string) error
	// PasteInto brings app to the front and pastes the clipboard.
	PasteInto(app string) error
	SetClipboardText(text string) error
	// PasteAndSubmit pastes into the foreground application and presses Return.
	PasteAndSubmit() error
}

// Progress receives one line per executed step.
type Progress interface {
	Info(message string)
	Step(index int, total int, message string)
}
