package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"glyphwatch/internal/detect"
	"glyphwatch/internal/scan"
	"glyphwatch/internal/ui"
)

type scanOutcome struct {
	result *scan.Result
	err    error
}

// runScanWithUI runs scan.Run in the background and draws its progress
// until the event channel is closed. Quitting the view early cancels
// the scan.
func runScanWithUI(ctx context.Context, title string, det *detect.Detector, sources []scan.Source, opts scan.Options) (*scan.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan scan.Event, 256)
	outcomeCh := make(chan scanOutcome, 1)

	files := make([]string, 0, len(sources))
	for _, src := range sources {
		files = append(files, src.Name)
	}

	go func() {
		optsCopy := opts
		optsCopy.Progress = scan.ChannelSink{Ch: events}
		res, err := scan.Run(ctx, det, sources, optsCopy)
		outcomeCh <- scanOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	cancel()
	// view is gone; keep workers from blocking on a full channel
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
