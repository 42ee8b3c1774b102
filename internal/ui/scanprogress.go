package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/openbootdotdev/synap/internal/snapshot"
	"github.com/openbootdotdev/synap/internal/system"
)

var (
	scanCheckStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22c55e"))

	scanErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444"))

	scanActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06b6d4"))

	scanPendingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	scanDetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

var scanSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type stepState struct {
	name    string
	status  string
	detail  string
	elapsed time.Duration
}

// ScanProgress draws the per-probe progress block on stderr. On a terminal
// it redraws in place with a spinner; otherwise it prints one line per
// finished probe.
type ScanProgress struct {
	out            io.Writer
	steps          []stepState
	totalSteps     int
	spinnerIdx     int
	spinnerStop    chan struct{}
	closeOnce      sync.Once
	mu             sync.Mutex
	isTTY          bool
	rendered       bool
	stepStartTimes []time.Time
	completedCount int
}

func NewScanProgress(names []string) *ScanProgress {
	f, ok := Output.(*os.File)
	return newScanProgress(Output, names, ok && system.IsTerminal(f))
}

func newScanProgress(out io.Writer, names []string, isTTY bool) *ScanProgress {
	steps := make([]stepState, len(names))
	for i := range steps {
		steps[i].name = names[i]
		steps[i].status = "pending"
	}

	sp := &ScanProgress{
		out:            out,
		steps:          steps,
		totalSteps:     len(names),
		spinnerStop:    make(chan struct{}),
		isTTY:          isTTY,
		stepStartTimes: make([]time.Time, len(names)),
	}

	if sp.isTTY {
		go sp.spin()
	}

	return sp
}

func (sp *ScanProgress) spin() {
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-sp.spinnerStop:
			return
		case <-ticker.C:
			sp.mu.Lock()
			sp.spinnerIdx = (sp.spinnerIdx + 1) % len(scanSpinnerFrames)
			for _, s := range sp.steps {
				if s.status == "scanning" {
					sp.render()
					break
				}
			}
			sp.mu.Unlock()
		}
	}
}

func (sp *ScanProgress) Update(step snapshot.ScanStep) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if step.Index < 0 || step.Index >= sp.totalSteps {
		return
	}

	if step.Status == "scanning" && sp.steps[step.Index].status != "scanning" {
		sp.stepStartTimes[step.Index] = time.Now()
	}

	if (step.Status == "done" || step.Status == "error") && sp.steps[step.Index].status == "scanning" {
		sp.steps[step.Index].elapsed = time.Since(sp.stepStartTimes[step.Index])
		sp.completedCount++
	}

	sp.steps[step.Index].name = step.Name
	sp.steps[step.Index].status = step.Status
	sp.steps[step.Index].detail = step.Detail

	sp.render()
}

func (sp *ScanProgress) Finish() {
	sp.closeOnce.Do(func() { close(sp.spinnerStop) })

	sp.mu.Lock()
	defer sp.mu.Unlock()

	sp.render()
	fmt.Fprintf(sp.out, "\n")
}

func (sp *ScanProgress) render() {
	if sp.isTTY {
		sp.renderTTY()
	} else {
		sp.renderPlain()
	}
}

func (sp *ScanProgress) renderTTY() {
	if sp.rendered {
		fmt.Fprintf(sp.out, "\033[%dA", sp.totalSteps+1)
	}
	sp.rendered = true

	fmt.Fprintf(sp.out, "\033[K  Collecting host facts... [%d/%d]\n", sp.completedCount, sp.totalSteps)

	for i, s := range sp.steps {
		fmt.Fprintf(sp.out, "\033[K")

		switch s.status {
		case "done":
			fmt.Fprintf(sp.out, "  %s %s\n",
				scanCheckStyle.Render("✓ "+s.name),
				scanDetailStyle.Render(formatStepDetail(s.detail, s.elapsed)))
		case "error":
			fmt.Fprintf(sp.out, "  %s %s\n",
				scanErrorStyle.Render("✗ "+s.name),
				scanDetailStyle.Render(fmt.Sprintf("failed, %s", formatStepDuration(s.elapsed))))
		case "scanning":
			spinner := scanSpinnerFrames[sp.spinnerIdx]
			live := time.Since(sp.stepStartTimes[i])
			fmt.Fprintf(sp.out, "  %s %s\n",
				scanActiveStyle.Render(spinner+" "+s.name),
				scanDetailStyle.Render(formatStepDuration(live)+"..."))
		default:
			fmt.Fprintf(sp.out, "  %s\n", scanPendingStyle.Render("  "+s.name))
		}
	}
}

func (sp *ScanProgress) renderPlain() {
	for i, s := range sp.steps {
		switch s.status {
		case "done":
			sp.plainHeader()
			fmt.Fprintf(sp.out, "  ✓ %s (%s)\n", s.name, formatStepDetail(s.detail, s.elapsed))
			sp.steps[i].status = "done_printed"
		case "error":
			sp.plainHeader()
			fmt.Fprintf(sp.out, "  ✗ %s (failed, %s)\n", s.name, formatStepDuration(s.elapsed))
			sp.steps[i].status = "error_printed"
		}
	}
}

func (sp *ScanProgress) plainHeader() {
	if !sp.rendered {
		fmt.Fprintf(sp.out, "  Collecting host facts...\n")
		sp.rendered = true
	}
}

func formatStepDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func formatStepDetail(detail string, elapsed time.Duration) string {
	if detail == "" {
		return formatStepDuration(elapsed)
	}
	return fmt.Sprintf("%s, %s", detail, formatStepDuration(elapsed))
}
