package wiring

import (
	"log/slog"

	uploadadapters "github.com/chatdrop/chatdrop/internal/domains/upload/adapters"
	uploadapi "github.com/chatdrop/chatdrop/internal/domains/upload/api"
	uploadports "github.com/chatdrop/chatdrop/internal/domains/upload/ports"
	"github.com/chatdrop/chatdrop/internal/platform/clock"
)

type Options struct {
	DryRun   bool
	Logger   *slog.Logger
	Progress uploadports.Progress

	// Clock, Desktop and Collector replace the OS-backed defaults when set.
	Clock     clock.Clock
	Desktop   uploadports.Desktop
	Collector uploadports.Collector
}

// Container is the in-process DI container for one invocation.
type Container struct {
	Clock     clock.Clock
	Desktop   uploadports.Desktop
	Collector uploadports.Collector

	Upload uploadapi.API
}

func New(opts Options) Container {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clk := opts.Clock
	if clk == nil {
		if opts.DryRun {
			clk = clock.Instant{}
		} else {
			clk = clock.SystemUTC{}
		}
	}

	// OS-backed adapters share one exec port.
	x := uploadadapters.NewPlatformExec()

	desktop := opts.Desktop
	if desktop == nil {
		if opts.DryRun {
			desktop = uploadadapters.NewDryRunDesktop(logger)
		} else {
			desktop = uploadadapters.NewMacDesktop(
				uploadadapters.NewOSAScriptRunner(x),
				uploadadapters.NewOSOpener(x),
				uploadadapters.NewOSClipboard(x),
			)
		}
	}

	collector := opts.Collector
	if collector == nil {
		if opts.DryRun {
			collector = uploadadapters.NewDryRunCollector(logger)
		} else {
			collector = uploadadapters.NewCommandCollector(x)
		}
	}

	upload := uploadapi.New(uploadapi.Dependencies{
		Clock:    clk,
		Desktop:  desktop,
		Progress: opts.Progress,
		Logger:   logger,

		Collector: collector,
	})

	return Container{
		Clock:     clk,
		Desktop:   desktop,
		Collector: collector,
		Upload:    upload,
	}
}
