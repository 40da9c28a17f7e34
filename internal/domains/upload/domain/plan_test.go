package domain

import (
	"reflect"
	"testing"
	"time"
)

type callLog struct {
	calls []string
}

func (c *callLog) RevealFile(path string) error { c.calls = append(c.calls, "reveal "+path); return nil }
func (c *callLog) CloseFinderWindows() error { c.calls = append(c.calls, "close-finder"); return nil }
func (c *callLog) CopyFile(path string) error { c.calls = append(c.calls, "copy "+path); return nil }
func (c *callLog) OpenURL(app, url string) error { c.calls = append(c.calls, "open "+app+" "+url); return nil }
func (c *callLog) PasteInto(app string) error { c.calls = append(c.calls, "paste "+app); return nil }
func (c *callLog) SetClipboardText(string) error { c.calls = append(c.calls, "clipboard"); return nil }
func (c *callLog) PasteAndSubmit() error { c.calls = append(c.calls, "submit"); return nil }

func testInput() Input {
	return Input{
		FilePath: "/data/all_data.json",
		URL:      "https://chatgpt.com/",
		Browser:  "Google Chrome",
		Prompt:   "analyze",
		Waits: Waits{
			Finder:        2 * time.Second,
			BrowserSettle: 3 * time.Second,
			Delay:         3 * time.Second,
			Upload:        20 * time.Second,
		},
	}
}

func stepNames(steps []Step) []string {
	var names []string
	for _, s := range steps {
		names = append(names, s.Name)
	}
	return names
}

func TestPlanOrder(t *testing.T) {
	tests := []struct {
		name        string
		closeFinder bool
		want        []string
	}{
		{
			name: "default",
			want: []string{StepReveal, StepCopy, StepOpenURL, StepPasteFile, StepSendPrompt},
		},
		{
			name:        "close finder",
			closeFinder: true,
			want:        []string{StepReveal, StepCloseFinder, StepCopy, StepOpenURL, StepPasteFile, StepSendPrompt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testInput()
			in.CloseFinder = tt.closeFinder
			if got := stepNames(Plan(in)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("steps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanActions(t *testing.T) {
	log := &callLog{}
	for _, s := range Plan(testInput()) {
		if err := s.Action(log); err != nil {
			t.Fatalf("%s: %v", s.Name, err)
		}
	}

	want := []string{
		"reveal /data/all_data.json",
		"copy /data/all_data.json",
		"open Google Chrome https://chatgpt.com/",
		"paste Google Chrome",
		"clipboard",
		"submit",
	}
	if !reflect.DeepEqual(log.calls, want) {
		t.Errorf("calls = %v, want %v", log.calls, want)
	}
}

func TestPlanWaitsCoverConfiguredWaits(t *testing.T) {
	in := testInput()
	if got, want := TotalWait(Plan(in)), in.Waits.Total(); got != want {
		t.Errorf("TotalWait = %v, want %v", got, want)
	}

	in.CloseFinder = true
	if got, want := TotalWait(Plan(in)), in.Waits.Total()+CloseFinderPause; got != want {
		t.Errorf("TotalWait with close-finder = %v, want %v", got, want)
	}
}
