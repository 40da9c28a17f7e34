package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chatdrop/chatdrop/internal/app/wiring"
	contractupload "github.com/chatdrop/chatdrop/internal/contracts/v1/upload"
	"github.com/chatdrop/chatdrop/internal/platform/clock"
	"github.com/chatdrop/chatdrop/internal/platform/paths"
)

type fakeDesktop struct {
	calls  []string
	args   []string
	failOn string
}

func (f *fakeDesktop) do(method, arg string) error {
	f.calls = append(f.calls, method)
	f.args = append(f.args, arg)
	if method == f.failOn {
		return errors.New("System Events got an error: not allowed to send keystrokes")
	}
	return nil
}

func (f *fakeDesktop) RevealFile(path string) error       { return f.do("RevealFile", path) }
func (f *fakeDesktop) CloseFinderWindows() error          { return f.do("CloseFinderWindows", "") }
func (f *fakeDesktop) CopyFile(path string) error         { return f.do("CopyFile", path) }
func (f *fakeDesktop) OpenURL(app, url string) error      { return f.do("OpenURL", url) }
func (f *fakeDesktop) PasteInto(app string) error         { return f.do("PasteInto", app) }
func (f *fakeDesktop) SetClipboardText(text string) error { return f.do("SetClipboardText", text) }
func (f *fakeDesktop) PasteAndSubmit() error              { return f.do("PasteAndSubmit", "") }

type fakeCollector struct {
	dir   string
	argv  []string
	err   error
	calls int
}

func (f *fakeCollector) Collect(dir string, argv []string) error {
	f.calls++
	f.dir = dir
	f.argv = argv
	return f.err
}

type harness struct {
	desktop   *fakeDesktop
	collector *fakeCollector
	clock     *clock.Fake
	stdout    bytes.Buffer
	stderr    bytes.Buffer
}

func newHarness() *harness {
	return &harness{
		desktop:   &fakeDesktop{},
		collector: &fakeCollector{},
		clock:     clock.NewFake(time.Date(2026, 10, 15, 7, 30, 0, 0, time.UTC)),
	}
}

func (h *harness) run(args ...string) int {
	return run(append([]string{"chatdrop"}, args...), env{
		stdout: &h.stdout,
		stderr: &h.stderr,
		getenv: func(string) string { return "" },
		newContainer: func(o wiring.Options) wiring.Container {
			o.Clock = h.clock
			o.Desktop = h.desktop
			o.Collector = h.collector
			return wiring.New(o)
		},
	})
}

func writeFile(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"daily_hrv": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatal(err)
	}
	return resolved
}

func TestMissingFileExitsOneWithoutAutomation(t *testing.T) {
	h := newHarness()
	code := h.run(filepath.Join(t.TempDir(), "all_data.json"))

	if code != exitError {
		t.Fatalf("exit = %d, want %d", code, exitError)
	}
	if len(h.desktop.calls) != 0 {
		t.Errorf("expected no automation calls, got %v", h.desktop.calls)
	}
	if !strings.Contains(h.stderr.String(), "not found: file not found:") {
		t.Errorf("stderr = %q", h.stderr.String())
	}
}

func TestSuccessfulRun(t *testing.T) {
	h := newHarness()
	path := writeFile(t, filepath.Join(t.TempDir(), "all_data.json"))

	if code := h.run(path); code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, h.stderr.String())
	}

	want := "RevealFile CopyFile OpenURL PasteInto SetClipboardText PasteAndSubmit"
	if got := strings.Join(h.desktop.calls, " "); got != want {
		t.Errorf("calls = %s, want %s", got, want)
	}

	out := h.stdout.String()
	for _, line := range []string{
		"[info] file: " + path,
		"[1/5] opening file in Finder",
		"[2/5] selecting and copying file",
		"[3/5] opening https://chatgpt.com/ in Google Chrome",
		"[4/5] pasting file",
		"[5/5] sending prompt",
		"[info] done",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("stdout missing %q:\n%s", line, out)
		}
	}

	if waited := h.clock.NowUTC().Sub(time.Date(2026, 10, 15, 7, 30, 0, 0, time.UTC)); waited < 28*time.Second {
		t.Errorf("waited %v, want at least the 28s of default waits", waited)
	}
}

func TestDefaultPathWhenArgumentOmitted(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvCallerPWD, dir)
	path := writeFile(t, filepath.Join(dir, "results", "all_data.json"))

	h := newHarness()
	if code := h.run(); code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, h.stderr.String())
	}
	if h.desktop.args[0] != path {
		t.Errorf("revealed %q, want default %q", h.desktop.args[0], path)
	}
}

func TestAutomationFailureExitsOne(t *testing.T) {
	h := newHarness()
	h.desktop.failOn = "PasteInto"
	path := writeFile(t, filepath.Join(t.TempDir(), "all_data.json"))

	if code := h.run(path); code != exitError {
		t.Fatalf("exit = %d, want %d", code, exitError)
	}
	if got := strings.Join(h.desktop.calls, " "); got != "RevealFile CopyFile OpenURL PasteInto" {
		t.Errorf("calls after failure = %s", got)
	}
	if !strings.Contains(h.stderr.String(), "[error] automation:") {
		t.Errorf("stderr = %q", h.stderr.String())
	}
	if lines := strings.Split(strings.TrimSpace(h.stderr.String()), "\n"); len(lines) != 1 {
		t.Errorf("stderr should carry a single error line, got %d:\n%s", len(lines), h.stderr.String())
	}
	if strings.Contains(h.stdout.String(), "done") {
		t.Error("failed run printed done")
	}
}

func TestProfileFlag(t *testing.T) {
	h := newHarness()
	path := writeFile(t, filepath.Join(t.TempDir(), "morning_data.json"))

	if code := h.run("--profile", "morning", path); code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, h.stderr.String())
	}
	if h.desktop.calls[1] != "CloseFinderWindows" {
		t.Errorf("morning profile should close Finder windows, calls = %v", h.desktop.calls)
	}
	if !strings.HasPrefix(h.desktop.args[len(h.desktop.args)-2], "Ты — AI-ассистент") {
		t.Errorf("morning prompt not used")
	}
}

func TestJSONReport(t *testing.T) {
	h := newHarness()
	path := writeFile(t, filepath.Join(t.TempDir(), "all_data.json"))

	if code := h.run("--json", path); code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, h.stderr.String())
	}

	var report contractupload.RunReportV1
	if err := json.Unmarshal(h.stdout.Bytes(), &report); err != nil {
		t.Fatalf("stdout is not a JSON report: %v\n%s", err, h.stdout.String())
	}
	if report.FilePath != path || report.Profile != "default" || len(report.Steps) != 5 {
		t.Errorf("report = %+v", report)
	}
	if report.WaitedMs != 28000 {
		t.Errorf("WaitedMs = %d, want 28000", report.WaitedMs)
	}
	if !strings.Contains(h.stderr.String(), "[1/5] opening file in Finder") {
		t.Error("progress should move to stderr with --json")
	}
}

func TestConfigErrorExitsOne(t *testing.T) {
	h := newHarness()
	if code := h.run("--profile", "lunch"); code != exitError {
		t.Fatalf("exit = %d, want %d", code, exitError)
	}
	if !strings.Contains(h.stderr.String(), `config: unknown profile "lunch"`) {
		t.Errorf("stderr = %q", h.stderr.String())
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"too many arguments", []string{"a.json", "b.json"}},
		{"unknown flag", []string{"--upload-twice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			if code := h.run(tt.args...); code != exitUsage {
				t.Fatalf("exit = %d, want %d", code, exitUsage)
			}
			if len(h.desktop.calls) != 0 {
				t.Errorf("usage errors must not automate anything")
			}
		})
	}
}

func TestHelp(t *testing.T) {
	h := newHarness()
	if code := h.run("--help"); code != exitOK {
		t.Fatalf("exit = %d, want 0", code)
	}
	if !strings.Contains(h.stdout.String(), "chatdrop [FILE]") {
		t.Errorf("help output = %q", h.stdout.String())
	}
}

func TestFailedCopyPrintsOneErrorLine(t *testing.T) {
	h := newHarness()
	h.desktop.failOn = "CopyFile"
	path := writeFile(t, filepath.Join(t.TempDir(), "all_data.json"))

	if code := h.run(path); code != exitError {
		t.Fatalf("exit = %d, want %d", code, exitError)
	}
	lines := strings.Split(strings.TrimSpace(h.stderr.String()), "\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "[error] automation: step copy failed") {
		t.Errorf("stderr = %q", h.stderr.String())
	}
}

func writeCollectConfig(t *testing.T) (configPath string, dataPath string) {
	t.Helper()
	dir := t.TempDir()
	dataPath = writeFile(t, filepath.Join(dir, "results", "all_data.json"))
	configPath = filepath.Join(dir, "chatdrop.yaml")
	body := "file: results/all_data.json\ncollect: [python3, collect_garmin_data.py]\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return configPath, dataPath
}

func TestCollectRunsBeforeUpload(t *testing.T) {
	h := newHarness()
	cfgPath, dataPath := writeCollectConfig(t)

	if code := h.run("--config", cfgPath); code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, h.stderr.String())
	}
	if h.collector.calls != 1 || strings.Join(h.collector.argv, " ") != "python3 collect_garmin_data.py" {
		t.Errorf("collector calls=%d argv=%v", h.collector.calls, h.collector.argv)
	}
	if h.collector.dir != filepath.Dir(cfgPath) {
		t.Errorf("collect dir = %q, want %q", h.collector.dir, filepath.Dir(cfgPath))
	}
	if h.desktop.args[0] != dataPath {
		t.Errorf("revealed %q, want %q", h.desktop.args[0], dataPath)
	}
	if !strings.Contains(h.stdout.String(), "[info] collecting data: python3 collect_garmin_data.py") {
		t.Errorf("stdout = %s", h.stdout.String())
	}
}

func TestCollectFailureExitsOneWithoutAutomation(t *testing.T) {
	h := newHarness()
	h.collector.err = errors.New("python3 exited with status 1")
	cfgPath, _ := writeCollectConfig(t)

	if code := h.run("--config", cfgPath); code != exitError {
		t.Fatalf("exit = %d, want %d", code, exitError)
	}
	if len(h.desktop.calls) != 0 {
		t.Errorf("expected no automation calls, got %v", h.desktop.calls)
	}
	if !strings.Contains(h.stderr.String(), "[error] collect: data collection failed: python3 exited with status 1") {
		t.Errorf("stderr = %q", h.stderr.String())
	}
}

func TestSkipCollect(t *testing.T) {
	h := newHarness()
	cfgPath, _ := writeCollectConfig(t)

	if code := h.run("--config", cfgPath, "--skip-collect"); code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, h.stderr.String())
	}
	if h.collector.calls != 0 {
		t.Errorf("collector ran despite --skip-collect")
	}
	if len(h.desktop.calls) != 6 {
		t.Errorf("calls = %v", h.desktop.calls)
	}
}

func TestDryRunWarns(t *testing.T) {
	h := newHarness()
	path := writeFile(t, filepath.Join(t.TempDir(), "all_data.json"))

	if code := h.run("--dry-run", path); code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, h.stderr.String())
	}
	if !strings.Contains(h.stderr.String(), "[warn] dry run:") {
		t.Errorf("stderr = %q", h.stderr.String())
	}
}
