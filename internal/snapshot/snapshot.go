package snapshot

import "time"

// Unknown is the fallback for optional facts that could not be resolved.
const Unknown = "Unknown"

// Snapshot is the complete set of host facts gathered in one run.
// It is built once by Capture and only read afterwards.
type Snapshot struct {
	Version            int             `json:"version"`
	CapturedAt         time.Time       `json:"captured_at"`
	Hostname           string          `json:"hostname"`
	Username           string          `json:"username"`
	SystemArchitecture string          `json:"system_architecture"`
	OS                 OSRelease       `json:"os"`
	Kernel             string          `json:"kernel"`
	KernelVersion      string          `json:"kernel_version"`
	Desktop            DesktopSnapshot `json:"desktop"`
	Packages           PackageSnapshot `json:"packages"`
	Memory             MemorySnapshot  `json:"memory"`
}

// OSRelease holds the identifying fields of the os-release descriptor.
type OSRelease struct {
	Name       string `json:"name"`
	PrettyName string `json:"pretty_name"`
	Version    string `json:"version"`
	ID         string `json:"id"`
	IDLike     string `json:"id_like"`
}

// DesktopSnapshot captures the graphical session and terminal environment.
type DesktopSnapshot struct {
	Environment string `json:"environment"`
	GTKTheme    string `json:"gtk_theme"`
	QTTheme     string `json:"qt_theme"`
	Shell       string `json:"shell"`
	Terminal    string `json:"terminal"`
}

// PackageSnapshot holds resolved installed-package counts. Total is always
// the sum of the per-manager counts.
type PackageSnapshot struct {
	Total   int `json:"total"`
	Dpkg    int `json:"dpkg"`
	Pacman  int `json:"pacman"`
	Snap    int `json:"snap"`
	Flatpak int `json:"flatpak"`
	Apt     int `json:"apt"`
	Dnf     int `json:"dnf"`
}

// MemorySnapshot holds RAM and swap figures. The kB values are read from the
// kernel; every other field is derived from them by NewMemory and WithSwap.
type MemorySnapshot struct {
	TotalKB      int64   `json:"total_kb"`
	UsedKB       int64   `json:"used_kb"`
	AvailableKB  int64   `json:"available_kb"`
	TotalMB      int64   `json:"total_mb"`
	UsedMB       int64   `json:"used_mb"`
	AvailableMB  int64   `json:"available_mb"`
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	AvailableGB  float64 `json:"available_gb"`
	UsagePercent float64 `json:"usage_percent"`

	SwapTotalKB int64   `json:"swap_total_kb"`
	SwapFreeKB  int64   `json:"swap_free_kb"`
	SwapUsedKB  int64   `json:"swap_used_kb"`
	SwapTotalMB int64   `json:"swap_total_mb"`
	SwapUsedMB  int64   `json:"swap_used_mb"`
	SwapTotalGB float64 `json:"swap_total_gb"`
	SwapUsedGB  float64 `json:"swap_used_gb"`
}

// NewMemory derives every RAM figure from the two raw kB readings.
func NewMemory(totalKB, availableKB int64) MemorySnapshot {
	used := totalKB - availableKB

	m := MemorySnapshot{
		TotalKB:     totalKB,
		UsedKB:      used,
		AvailableKB: availableKB,
		TotalMB:     totalKB / 1024,
		UsedMB:      used / 1024,
		AvailableMB: availableKB / 1024,
		TotalGB:     kbToGB(totalKB),
		UsedGB:      kbToGB(used),
		AvailableGB: kbToGB(availableKB),
	}
	if totalKB > 0 {
		m.UsagePercent = float64(used) / float64(totalKB) * 100
	}
	return m
}

// WithSwap returns a copy of m carrying swap figures.
func (m MemorySnapshot) WithSwap(totalKB, freeKB int64) MemorySnapshot {
	used := totalKB - freeKB
	m.SwapTotalKB = totalKB
	m.SwapFreeKB = freeKB
	m.SwapUsedKB = used
	m.SwapTotalMB = totalKB / 1024
	m.SwapUsedMB = used / 1024
	m.SwapTotalGB = kbToGB(totalKB)
	m.SwapUsedGB = kbToGB(used)
	return m
}

// Normalize recomputes the derived figures (package total, used memory,
// unit conversions, usage percent) from the raw readings.
func (s *Snapshot) Normalize() {
	p := s.Packages
	s.Packages = PackageCounts{
		Dpkg:    Count{N: p.Dpkg, OK: true},
		Pacman:  Count{N: p.Pacman, OK: true},
		Snap:    Count{N: p.Snap, OK: true},
		Flatpak: Count{N: p.Flatpak, OK: true},
		Apt:     Count{N: p.Apt, OK: true},
		Dnf:     Count{N: p.Dnf, OK: true},
	}.Resolve()

	m := s.Memory
	s.Memory = NewMemory(m.TotalKB, m.AvailableKB).WithSwap(m.SwapTotalKB, m.SwapFreeKB)
}

func kbToGB(kb int64) float64 {
	return float64(kb) / 1024 / 1024
}
