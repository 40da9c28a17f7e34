package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	contractupload "github.com/chatdrop/chatdrop/internal/contracts/v1/upload"
	"github.com/chatdrop/chatdrop/internal/domains/upload/domain"
	"github.com/chatdrop/chatdrop/internal/domains/upload/ports"
	"github.com/chatdrop/chatdrop/internal/platform/clock"
	"github.com/chatdrop/chatdrop/internal/platform/errors"
	"github.com/chatdrop/chatdrop/internal/platform/paths"
)

type Service struct {
	Clock    clock.Clock
	Desktop  ports.Desktop
	Progress ports.Progress
	Logger   *slog.Logger

	// Collector is required only when a request carries a collect command.
	Collector ports.Collector

	// NewRunID defaults to a random UUID.
	NewRunID func() string
}

type RunRequest struct {
	Profile     string
	FilePath    string
	URL         string
	Browser     string
	Prompt      string
	CloseFinder bool
	Waits       domain.Waits

	// Collect is run before the existence check when not empty, in CollectDir
	// (empty means the invocation directory).
	Collect    []string
	CollectDir string

	// DryRun is recorded in the report only; the caller picks the Desktop.
	DryRun bool
}

type RunResult struct {
	Report contractupload.RunReportV1
	Waited time.Duration
}

// Run optionally refreshes the input file with the collect command, checks
// that it exists and then executes the upload plan once, in order. The first
// failing step aborts the run; nothing is retried or rolled back.
func (s *Service) Run(req RunRequest) (RunResult, error) {
	if s.Clock == nil {
		return RunResult{}, errors.NewInternal("Clock is nil", nil)
	}
	if s.Desktop == nil {
		return RunResult{}, errors.NewInternal("Desktop is nil", nil)
	}

	runID := uuid.NewString()
	if s.NewRunID != nil {
		runID = s.NewRunID()
	}
	log := s.logger().With("run_id", runID)

	collected := false
	if len(req.Collect) > 0 {
		if s.Collector == nil {
			return RunResult{}, errors.NewInternal("Collector is nil", nil)
		}
		s.info("collecting data: " + strings.Join(req.Collect, " "))
		if err := s.Collector.Collect(req.CollectDir, req.Collect); err != nil {
			log.Debug("collect failed", "argv", req.Collect, "err", err)
			return RunResult{}, errors.NewCollect("data collection failed", err)
		}
		collected = true
	}

	absPath, err := checkInputFile(req.FilePath)
	if err != nil {
		log.Debug("input file check failed", "path", req.FilePath, "err", err)
		return RunResult{}, err
	}
	s.info("file: " + absPath)

	steps := domain.Plan(domain.Input{
		FilePath:    absPath,
		URL:         req.URL,
		Browser:     req.Browser,
		Prompt:      req.Prompt,
		CloseFinder: req.CloseFinder,
		Waits:       req.Waits,
	})
	planned := domain.TotalWait(steps)
	log.Debug("plan", "steps", len(steps), "planned_wait", planned)

	started := s.Clock.NowUTC()
	report := contractupload.RunReportV1{
		RunID:     runID,
		Profile:   req.Profile,
		FilePath:  absPath,
		URL:       req.URL,
		Browser:   req.Browser,
		DryRun:    req.DryRun,
		Collected: collected,
		StartedAt: contractupload.FormatRFC3339NanoUTC(started),

		PlannedWaitMs: planned.Milliseconds(),
	}

	var waited time.Duration
	for i, step := range steps {
		s.step(i+1, len(steps), step.Message)
		log.Debug("step start", "step", step.Name)

		if err := step.Action(s.Desktop); err != nil {
			log.Debug("step failed", "step", step.Name, "err", err)
			return RunResult{}, asAutomation(step.Name, err)
		}

		for _, w := range step.Waits {
			if w.Duration <= 0 {
				continue
			}
			log.Debug("waiting", "step", step.Name, "wait", w.Label, "duration", w.Duration)
			s.Clock.Sleep(w.Duration)
		}

		stepWait := step.WaitTotal()
		waited += stepWait
		report.Steps = append(report.Steps, contractupload.StepReportV1{
			Name:     step.Name,
			WaitedMs: stepWait.Milliseconds(),
		})
	}

	finished := s.Clock.NowUTC()
	report.FinishedAt = contractupload.FormatRFC3339NanoUTC(finished)
	report.WaitedMs = waited.Milliseconds()

	log.Info("upload finished", "path", absPath, "steps", len(steps), "elapsed", finished.Sub(started))
	s.info("done")

	return RunResult{Report: report, Waited: waited}, nil
}

// checkInputFile resolves p and requires it to name an existing non-directory.
// Symlinks are resolved so Finder selects the target, not the link.
func checkInputFile(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", errors.NewNotFound("no input file configured", nil)
	}

	abs, err := paths.Resolve(p)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFound("file not found: "+abs, nil)
		}
		return "", errors.NewNotFound("cannot access "+abs, err)
	}
	if info.IsDir() {
		return "", errors.NewNotFound("not a file: "+abs, nil)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return abs, nil
}

func asAutomation(stepName string, err error) error {
	if errors.KindOf(err) == errors.KindAutomation {
		return err
	}
	return errors.NewAutomation(fmt.Sprintf("step %s failed", stepName), err)
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Service) info(message string) {
	if s.Progress != nil {
		s.Progress.Info(message)
	}
}

func (s *Service) step(index int, total int, message string) {
	if s.Progress != nil {
		s.Progress.Step(index, total, message)
	}
}
