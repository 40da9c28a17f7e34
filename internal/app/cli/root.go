package cli

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chatdrop/chatdrop/internal/app/config"
	"github.com/chatdrop/chatdrop/internal/app/wiring"
	uploadapp "github.com/chatdrop/chatdrop/internal/domains/upload/app"
	"github.com/chatdrop/chatdrop/internal/platform/console"
	"github.com/chatdrop/chatdrop/internal/platform/errors"
)

const (
	exitOK    = 0
	exitUsage = 2
	exitError = 1
)

type env struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	newContainer func(wiring.Options) wiring.Container
}

type rootOptions struct {
	configPath  string
	profile     string
	logLevel    string
	dryRun      bool
	jsonOut     bool
	skipCollect bool
}

func Run(argv []string) int {
	return run(argv, env{
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		getenv:       os.Getenv,
		newContainer: wiring.New,
	})
}

func run(argv []string, e env) int {
	log := console.New(e.stderr)

	var opts rootOptions
	exit := exitOK

	cmd := &cobra.Command{
		Use:   "chatdrop [FILE]",
		Short: "Attach a local data file to a browser chat and send an analysis prompt",
		Long: strings.TrimSpace(`
When the profile sets a collect command, chatdrop runs it first to refresh FILE.
It then reveals FILE in Finder, copies it, pastes it into the chat page open in
the browser, waits for the upload and then pastes and submits the analysis prompt.

FILE defaults to the profile's file (results/all_data.json for the default profile).
Relative paths are resolved against the directory chatdrop was invoked from.

The run drives the desktop with synthetic keystrokes: leave the keyboard alone
until it prints "done". macOS only.`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileArg := ""
			if len(args) == 1 {
				fileArg = args[0]
			}
			exit = runUpload(opts, fileArg, e)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (default $"+config.EnvConfigPath+").")
	flags.StringVarP(&opts.profile, "profile", "p", config.DefaultProfile, "Profile to run: default, morning, evening or one defined in the config file.")
	flags.StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level on stderr: debug, info, warn or error.")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Log each desktop action instead of performing it; skip waits.")
	flags.BoolVar(&opts.jsonOut, "json", false, "Print the run report as JSON on stdout (progress moves to stderr).")
	flags.BoolVar(&opts.skipCollect, "skip-collect", false, "Upload FILE as it is without running the profile's collect command.")

	cmd.SetArgs(argv[1:])
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)

	if err := cmd.Execute(); err != nil {
		log.Error(err.Error())
		_, _ = io.WriteString(e.stderr, cmd.UsageString())
		return exitUsage
	}
	return exit
}

func runUpload(opts rootOptions, fileArg string, e env) int {
	log := console.New(e.stderr)

	cfg, err := config.Load(config.LoadOptions{
		Path:     opts.configPath,
		Profile:  opts.profile,
		FileArg:  fileArg,
		LogLevel: opts.logLevel,
		Getenv:   e.getenv,
	})
	if err != nil {
		log.Error(err.Error())
		return exitCodeFor(err)
	}

	progress := console.New(e.stdout)
	if opts.jsonOut {
		progress = console.New(e.stderr)
	}

	collect := cfg.Collect
	if opts.skipCollect {
		collect = nil
	}
	if opts.dryRun {
		log.Warn("dry run: desktop actions and the collect command are logged, not performed")
	}

	ctr := e.newContainer(wiring.Options{
		DryRun:   opts.dryRun,
		Logger:   newLogger(cfg.Log, e.stderr),
		Progress: progress,
	})

	res, err := ctr.Upload.Run(uploadapp.RunRequest{
		Profile:     cfg.Profile,
		FilePath:    cfg.FilePath,
		URL:         cfg.URL,
		Browser:     cfg.Browser,
		Prompt:      cfg.Prompt,
		CloseFinder: cfg.CloseFinder,
		Waits:       cfg.Waits,
		Collect:     collect,
		CollectDir:  cfg.CollectDir,
		DryRun:      opts.dryRun,
	})
	if err != nil {
		log.Error(err.Error())
		return exitCodeFor(err)
	}

	if opts.jsonOut {
		b, err := json.MarshalIndent(res.Report, "", "  ")
		if err != nil {
			log.Error("failed to encode report: " + err.Error())
			return exitError
		}
		if _, err := e.stdout.Write(append(b, '\n')); err != nil {
			log.Error("failed writing to stdout: " + err.Error())
			return exitError
		}
	}

	return exitOK
}

func exitCodeFor(err error) int {
	if errors.IsUsage(err) {
		return exitUsage
	}
	return exitError
}
