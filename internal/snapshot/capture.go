package snapshot

import (
	"fmt"
	"time"

	"github.com/openbootdotdev/synap/internal/config"
	"github.com/openbootdotdev/synap/internal/system"
)

const CurrentVersion = 1

// ScanStep reports the progress of one probe.
type ScanStep struct {
	Index  int
	Name   string
	Status string // "scanning", "done" or "error"
	Detail string
}

type probe struct {
	name string
	run  func(h *config.Host, snap *Snapshot) (string, error)
}

var probes = []probe{
	{"Identity", captureIdentity},
	{"OS release", func(h *config.Host, snap *Snapshot) (string, error) {
		osr, err := CaptureOSRelease(h)
		if err != nil {
			return "", err
		}
		snap.OS = osr
		return osr.PrettyName, nil
	}},
	{"Kernel", captureKernel},
	{"Memory", func(h *config.Host, snap *Snapshot) (string, error) {
		mem, err := CaptureMemory(h)
		if err != nil {
			return "", err
		}
		snap.Memory = mem
		return fmt.Sprintf("%d MiB total", mem.TotalMB), nil
	}},
	{"Desktop", func(h *config.Host, snap *Snapshot) (string, error) {
		snap.Desktop = CaptureDesktop(h)
		return snap.Desktop.Environment, nil
	}},
	{"Packages", func(h *config.Host, snap *Snapshot) (string, error) {
		snap.Packages = CapturePackages(h).Resolve()
		return fmt.Sprintf("%d installed", snap.Packages.Total), nil
	}},
	{"Terminal", func(h *config.Host, snap *Snapshot) (string, error) {
		snap.Desktop.Terminal = CaptureTerminal(h)
		return snap.Desktop.Terminal, nil
	}},
}

// StepNames lists the probes in the order Capture runs them.
func StepNames() []string {
	names := make([]string, len(probes))
	for i, p := range probes {
		names[i] = p.name
	}
	return names
}

// Capture runs every probe once and returns the snapshot.
func Capture(h *config.Host) (*Snapshot, error) {
	return CaptureWithProgress(h, nil)
}

// CaptureWithProgress is Capture with a callback invoked before and after
// each probe. The first mandatory probe failure aborts the capture.
func CaptureWithProgress(h *config.Host, onStep func(ScanStep)) (*Snapshot, error) {
	report := func(step ScanStep) {
		if onStep != nil {
			onStep(step)
		}
	}

	snap := &Snapshot{
		Version:            CurrentVersion,
		CapturedAt:         time.Now(),
		SystemArchitecture: system.Architecture(),
	}

	for i, p := range probes {
		report(ScanStep{Index: i, Name: p.name, Status: "scanning"})
		detail, err := p.run(h, snap)
		if err != nil {
			report(ScanStep{Index: i, Name: p.name, Status: "error"})
			return nil, err
		}
		report(ScanStep{Index: i, Name: p.name, Status: "done", Detail: detail})
	}

	return snap, nil
}

func captureIdentity(h *config.Host, snap *Snapshot) (string, error) {
	hostname, err := system.Line("hostname")
	if err != nil {
		return "", required("hostname", err)
	}
	username, err := system.Line("whoami")
	if err != nil {
		return "", required("whoami", err)
	}
	snap.Hostname = hostname
	snap.Username = username
	return username + "@" + hostname, nil
}

func captureKernel(h *config.Host, snap *Snapshot) (string, error) {
	kernel, err := system.Line("uname")
	if err != nil {
		return "", required("uname", err)
	}
	version, err := system.Line("uname", "-r")
	if err != nil {
		return "", required("uname -r", err)
	}
	snap.Kernel = kernel
	snap.KernelVersion = version
	return kernel + " " + version, nil
}
