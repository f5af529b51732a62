// Package tui is a scaled-down live view of the benchmark driver, modeled
// on the teacher's tui.App: a struct wrapping *tview.Application, with
// shared state written from a background goroutine under a mutex and read
// back on the UI thread via QueueUpdateDraw, plus an atomic completion
// flag the caller can poll.
package tui

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/nfiedler/mkqsortbench/bench"
)

// Dashboard shows benchmark progress and a running results table as the
// driver executes.
type Dashboard struct {
	app         *tview.Application
	progress    *tview.TextView
	resultsView *tview.TextView

	mu      sync.Mutex
	results []bench.Result
	status  string

	done    atomic.Bool
	running atomic.Bool
}

// NewDashboard builds a Dashboard ready to Run.
func NewDashboard() *Dashboard {
	d := &Dashboard{app: tview.NewApplication()}

	d.progress = tview.NewTextView().SetDynamicColors(true)
	d.progress.SetBorder(true).SetTitle(" progress ")

	d.resultsView = tview.NewTextView().SetDynamicColors(true)
	d.resultsView.SetBorder(true).SetTitle(" results ")

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.progress, 3, 0, false).
		AddItem(d.resultsView, 0, 1, false)

	d.app.SetRoot(root, true)
	d.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			d.app.Stop()
			return nil
		}
		return event
	})
	return d
}

// ReportProgress updates the status line shown above the results table.
// Safe to call from the goroutine driving the benchmark.
func (d *Dashboard) ReportProgress(status string) {
	d.mu.Lock()
	d.status = status
	d.mu.Unlock()

	if !d.running.Load() {
		return
	}
	d.app.QueueUpdateDraw(func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.progress.SetText(d.status)
	})
}

// ReportResult appends result to the running results table. Safe to call
// from the goroutine driving the benchmark.
func (d *Dashboard) ReportResult(result bench.Result) {
	d.mu.Lock()
	d.results = append(d.results, result)
	snapshot := make([]bench.Result, len(d.results))
	copy(snapshot, d.results)
	d.mu.Unlock()

	if !d.running.Load() {
		return
	}
	d.app.QueueUpdateDraw(func() {
		d.resultsView.Clear()
		for _, r := range snapshot {
			fmt.Fprintf(d.resultsView, "%-12s %-8s %-12s %6d ms\n", r.Generator, r.Size, r.Runner, r.ElapsedMillis)
		}
	})
}

// Finish marks the run complete and, if the event loop is running, shows a
// done message. It does not stop the event loop; Run keeps blocking until
// the user exits.
func (d *Dashboard) Finish() {
	d.done.Store(true)
	if !d.running.Load() {
		return
	}
	d.app.QueueUpdateDraw(func() {
		d.progress.SetText("done, press q to exit")
	})
}

// Done reports whether Finish has been called.
func (d *Dashboard) Done() bool { return d.done.Load() }

// Run blocks until the user exits the dashboard (q or Escape) or the
// underlying tview application errors.
func (d *Dashboard) Run() error {
	d.running.Store(true)
	defer d.running.Store(false)
	return d.app.Run()
}

// Stop ends the event loop immediately, for callers driving Run from code
// rather than from user input (e.g. tests).
func (d *Dashboard) Stop() {
	d.app.Stop()
}
