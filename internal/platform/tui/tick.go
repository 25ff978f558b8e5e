// Package tui provides the Bubble Tea front end for the catch game.
// It turns key presses into driver messages and draws the frames the driver publishes.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/catch"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/loop"
)

// FrameMsg carries a snapshot published by the driver.
type FrameMsg catch.Snapshot

// releaseMsg fires when a held direction saw no key repeat for a while.
// seq identifies the press it belongs to; a newer press makes it stale.
type releaseMsg struct {
	dir core.Intent
	seq uint64
}

// waitForFrame returns a command that waits for the next driver frame.
func waitForFrame(sink *loop.FrameSink) tea.Cmd {
	return func() tea.Msg {
		select {
		case snap := <-sink.Frames():
			return FrameMsg(snap)
		case <-sink.Done():
			return nil
		}
	}
}

// releaseCmd schedules an inferred key release.
func releaseCmd(dir core.Intent, seq uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return releaseMsg{dir: dir, seq: seq}
	})
}
