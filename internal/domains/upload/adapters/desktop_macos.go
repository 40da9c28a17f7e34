package adapters

import (
	"github.com/chatdrop/chatdrop/internal/domains/upload/ports"
	"github.com/chatdrop/chatdrop/internal/platform/errors"
)

// MacDesktop drives Finder, the browser and System Events through AppleScript.
type MacDesktop struct {
	Scripts   ports.ScriptRunner
	Opener    ports.Opener
	Clipboard ports.Clipboard
}

func NewMacDesktop(scripts ports.ScriptRunner, opener ports.Opener, clipboard ports.Clipboard) MacDesktop {
	return MacDesktop{
		Scripts:   scripts,
		Opener:    opener,
		Clipboard: clipboard,
	}
}

func (d MacDesktop) RevealFile(path string) error {
	if err := d.Opener.Reveal(path); err != nil {
		return errors.NewAutomation("reveal "+path+" in Finder", err)
	}
	return nil
}

func (d MacDesktop) CloseFinderWindows() error {
	return d.run("close Finder windows", closeFinderWindowsScript())
}

func (d MacDesktop) CopyFile(path string) error {
	return d.run("select and copy file", selectAndCopyScript(path))
}

func (d MacDesktop) OpenURL(app string, url string) error {
	return d.run("open "+url+" in "+app, openLocationScript(app, url))
}

func (d MacDesktop) PasteInto(app string) error {
	return d.run("paste into "+app, pasteIntoScript(app))
}

func (d MacDesktop) SetClipboardText(text string) error {
	if err := d.Clipboard.WriteText(text); err != nil {
		return errors.NewAutomation("set clipboard text", err)
	}
	return nil
}

func (d MacDesktop) PasteAndSubmit() error {
	return d.run("paste and submit", pasteAndSubmitScript())
}

func (d MacDesktop) run(action string, script string) error {
	if err := d.Scripts.RunScript(script); err != nil {
		return errors.NewAutomation(action, err)
	}
	return nil
}
