package snapshot

import (
	"strings"

	"github.com/openbootdotdev/synap/internal/config"
	"github.com/openbootdotdev/synap/internal/system"
)

// Count is a package count that may be absent when the manager is not
// installed or its listing failed.
type Count struct {
	N  int
	OK bool
}

func (c Count) OrZero() int {
	if !c.OK {
		return 0
	}
	return c.N
}

// PackageCounts is the raw per-manager result before absent counts are
// resolved to zero.
type PackageCounts struct {
	Dpkg    Count
	Pacman  Count
	Snap    Count
	Flatpak Count
	Apt     Count
	Dnf     Count
}

// Resolve substitutes zero for absent counts and computes the total.
func (pc PackageCounts) Resolve() PackageSnapshot {
	p := PackageSnapshot{
		Dpkg:    pc.Dpkg.OrZero(),
		Pacman:  pc.Pacman.OrZero(),
		Snap:    pc.Snap.OrZero(),
		Flatpak: pc.Flatpak.OrZero(),
		Apt:     pc.Apt.OrZero(),
		Dnf:     pc.Dnf.OrZero(),
	}
	p.Total = p.Dpkg + p.Pacman + p.Snap + p.Flatpak + p.Apt + p.Dnf
	return p
}

type packageQuery struct {
	manager string
	command string
	args    []string
	// token is counted once per installed package.
	token string
	// header marks listings that print one non-package line.
	header bool
}

var packageQueries = []packageQuery{
	{manager: "dpkg", command: "dpkg-query", args: []string{"-f", ".", "-W"}, token: "."},
	{manager: "pacman", command: "pacman", args: []string{"-Q"}, token: "\n"},
	{manager: "snap", command: "snap", args: []string{"list"}, token: "\n", header: true},
	{manager: "flatpak", command: "flatpak", args: []string{"list"}, token: "\n"},
	{manager: "apt", command: "apt", args: []string{"list", "--installed"}, token: "\n", header: true},
	{manager: "dnf", command: "dnf", args: []string{"list", "installed"}, token: "\n", header: true},
}

// PackageCommand returns the executable queried for manager, or "" when the
// manager is not probed.
func PackageCommand(manager string) string {
	for _, q := range packageQueries {
		if q.manager == manager {
			return q.command
		}
	}
	return ""
}

// CapturePackages queries every package manager once.
func CapturePackages(h *config.Host) PackageCounts {
	var pc PackageCounts
	for _, q := range packageQueries {
		var c Count
		if h.Skips(q.manager) {
			h.Logf("%s skipped by settings", q.manager)
		} else {
			c = queryPackages(h, q)
		}
		switch q.manager {
		case "dpkg":
			pc.Dpkg = c
		case "pacman":
			pc.Pacman = c
		case "snap":
			pc.Snap = c
		case "flatpak":
			pc.Flatpak = c
		case "apt":
			pc.Apt = c
		case "dnf":
			pc.Dnf = c
		}
	}
	return pc
}

func queryPackages(h *config.Host, q packageQuery) Count {
	if !system.IsInstalled(q.command) {
		h.Logf("%s not found on PATH", q.command)
		return Count{}
	}
	out, err := system.Output(q.command, q.args...)
	if err != nil {
		h.Logf("%s %s failed: %v", q.command, strings.Join(q.args, " "), err)
		return Count{}
	}
	return Count{N: countToken(out, q.token, q.header), OK: true}
}

func countToken(output, token string, header bool) int {
	n := strings.Count(output, token)
	if header && n > 0 {
		n--
	}
	return n
}
