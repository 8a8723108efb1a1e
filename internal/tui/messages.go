package tui

import "github.com/Dat0801/jarvis-cli/internal/dashboard"

// snapshotLoadedMsg delivers a finished dashboard fetch. The generation
// lets the model drop responses from superseded refreshes, so a stale
// fetch can never overwrite a newer one.
type snapshotLoadedMsg struct {
	data       *dashboard.Data
	generation int
}

type snapshotFailedMsg struct {
	err        error
	generation int
}
