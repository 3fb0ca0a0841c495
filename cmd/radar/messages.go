package main

import (
	"github.com/sevigo/review-radar/internal/core"
)

// A fresh aggregate arrived, either from the poller or a manual refresh.
type snapshotMsg struct {
	snapshot core.Snapshot
}

// A manual refresh failed; the previous snapshot stays on screen.
type refreshFailedMsg struct {
	err error
}

// The review prompt for a request was built and copied to the clipboard.
type promptCopiedMsg struct {
	repository string
	number     int
	err        error
}

// A pull request was handed to the browser.
type browserOpenedMsg struct {
	err error
}
