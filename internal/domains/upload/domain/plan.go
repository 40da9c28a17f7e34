package domain

import (
	"time"

	"github.com/chatdrop/chatdrop/internal/domains/upload/ports"
)

const (
	StepReveal      = "reveal"
	StepCloseFinder = "close-finder"
	StepCopy        = "copy"
	StepOpenURL     = "open-url"
	StepPasteFile   = "paste-file"
	StepSendPrompt  = "send-prompt"
)

// CloseFinderPause follows closing the Finder windows so the selection that
// comes next targets a freshly opened window.
const CloseFinderPause = 200 * time.Millisecond

// Waits are the configurable pauses between steps. They stand in for
// completion signals the desktop applications never give.
type Waits struct {
	Finder        time.Duration
	BrowserSettle time.Duration
	Delay         time.Duration
	Upload        time.Duration
}

func (w Waits) Total() time.Duration {
	return w.Finder + w.BrowserSettle + w.Delay + w.Upload
}

type Input struct {
	FilePath    string // absolute, already checked to exist
	URL         string
	Browser     string
	Prompt      string
	CloseFinder bool
	Waits       Waits
}

type Wait struct {
	Label    string
	Duration time.Duration
}

type Step struct {
	Name    string
	Message string
	Action  func(d ports.Desktop) error
	Waits   []Wait
}

func (s Step) WaitTotal() time.Duration {
	var total time.Duration
	for _, w := range s.Waits {
		total += w.Duration
	}
	return total
}

// Plan returns the fixed step sequence for one upload. There is exactly one
// path through it; CloseFinder only inserts an extra step.
func Plan(in Input) []Step {
	steps := []Step{
		{
			Name:    StepReveal,
			Message: "opening file in Finder",
			Action:  func(d ports.Desktop) error { return d.RevealFile(in.FilePath) },
			Waits:   []Wait{{Label: "finder", Duration: in.Waits.Finder}},
		},
	}

	if in.CloseFinder {
		steps = append(steps, Step{
			Name:    StepCloseFinder,
			Message: "closing Finder windows",
			Action:  func(d ports.Desktop) error { return d.CloseFinderWindows() },
			Waits:   []Wait{{Label: "close-finder", Duration: CloseFinderPause}},
		})
	}

	steps = append(steps,
		Step{
			Name:    StepCopy,
			Message: "selecting and copying file",
			Action:  func(d ports.Desktop) error { return d.CopyFile(in.FilePath) },
		},
		Step{
			Name:    StepOpenURL,
			Message: "opening " + in.URL + " in " + in.Browser,
			Action:  func(d ports.Desktop) error { return d.OpenURL(in.Browser, in.URL) },
			Waits: []Wait{
				{Label: "browser-settle", Duration: in.Waits.BrowserSettle},
				{Label: "delay", Duration: in.Waits.Delay},
			},
		},
		Step{
			Name:    StepPasteFile,
			Message: "pasting file",
			Action:  func(d ports.Desktop) error { return d.PasteInto(in.Browser) },
			Waits:   []Wait{{Label: "upload", Duration: in.Waits.Upload}},
		},
		Step{
			Name:    StepSendPrompt,
			Message: "sending prompt",
			Action: func(d ports.Desktop) error {
				if err := d.SetClipboardText(in.Prompt); err != nil {
					return err
				}
				return d.PasteAndSubmit()
			},
		},
	)

	return steps
}

func TotalWait(steps []Step) time.Duration {
	var total time.Duration
	for _, s := range steps {
		total += s.WaitTotal()
	}
	return total
}
