package upload

import "time"

// RunReportV1 is the v1 contract for the --json summary of a completed run.
type RunReportV1 struct {
	RunID      string `json:"runId"`
	Profile    string `json:"profile"`
	FilePath   string `json:"filePath"`
	URL        string `json:"url"`
	Browser    string `json:"browser"`
	DryRun     bool   `json:"dryRun"`
	Collected  bool   `json:"collected"`
	StartedAt  string `json:"startedAt"`  // RFC3339Nano UTC
	FinishedAt string `json:"finishedAt"` // RFC3339Nano UTC

	Steps         []StepReportV1 `json:"steps"`
	PlannedWaitMs int64          `json:"plannedWaitMs"`
	WaitedMs      int64          `json:"waitedMs"`
}

type StepReportV1 struct {
	Name     string `json:"name"`
	WaitedMs int64  `json:"waitedMs"`
}

func FormatRFC3339NanoUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
