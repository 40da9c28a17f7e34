package adapters

import (
	"log/slog"
)

// DryRunDesktop logs every capability call and performs none of them.
type DryRunDesktop struct {
	Logger *slog.Logger
}

func NewDryRunDesktop(logger *slog.Logger) DryRunDesktop {
	if logger == nil {
		logger = slog.Default()
	}
	return DryRunDesktop{Logger: logger}
}

func (d DryRunDesktop) RevealFile(path string) error {
	d.Logger.Info("dry run: reveal file", "path", path)
	return nil
}

func (d DryRunDesktop) CloseFinderWindows() error {
	d.Logger.Info("dry run: close Finder windows")
	return nil
}

func (d DryRunDesktop) CopyFile(path string) error {
	d.Logger.Info("dry run: select and copy file", "path", path)
	return nil
}

func (d DryRunDesktop) OpenURL(app string, url string) error {
	d.Logger.Info("dry run: open url", "app", app, "url", url)
	return nil
}

func (d DryRunDesktop) PasteInto(app string) error {
	d.Logger.Info("dry run: paste", "app", app)
	return nil
}

func (d DryRunDesktop) SetClipboardText(text string) error {
	d.Logger.Info("dry run: set clipboard text", "chars", len([]rune(text)))
	return nil
}

func (d DryRunDesktop) PasteAndSubmit() error {
	d.Logger.Info("dry run: paste and submit")
	return nil
}

// DryRunCollector logs the collect command instead of running it.
type DryRunCollector struct {
	Logger *slog.Logger
}

func NewDryRunCollector(logger *slog.Logger) DryRunCollector {
	if logger == nil {
		logger = slog.Default()
	}
	return DryRunCollector{Logger: logger}
}

func (c DryRunCollector) Collect(dir string, argv []string) error {
	c.Logger.Info("dry run: collect", "dir", dir, "argv", argv)
	return nil
}
