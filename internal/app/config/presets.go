package config

import (
	"path/filepath"
	"time"
)

// presets are the built-in profiles. The morning and evening runs upload a
// smaller daily extract, so they wait less and start from a clean Finder.
func presets() map[string]Overlay {
	return map[string]Overlay{
		DefaultProfile: {},
		"morning": dailyPreset(filepath.Join("results", "morning_data.json"), morningPrompt),
		"evening": dailyPreset(filepath.Join("results", "evening_data.json"), eveningPrompt),
	}
}

func dailyPreset(file string, prompt string) Overlay {
	closeFinder := true
	return Overlay{
		File:        file,
		Prompt:      prompt,
		CloseFinder: &closeFinder,
		Waits: WaitsOverlay{
			Finder:        durationPtr(1000 * time.Millisecond),
			BrowserSettle: durationPtr(1500 * time.Millisecond),
			Delay:         durationPtr(2000 * time.Millisecond),
			Upload:        durationPtr(8000 * time.Millisecond),
		},
	}
}

func durationPtr(d time.Duration) *Duration {
	v := Duration(d)
	return &v
}
