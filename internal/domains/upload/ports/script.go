package ports

// ScriptRunner executes one AppleScript program to completion.
type ScriptRunner interface {
	RunScript(script string) error
}

// Opener reveals a path in the file manager.
type Opener interface {
	Reveal(path string) error
}
