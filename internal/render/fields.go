package render

import "github.com/openbootdotdev/synap/internal/snapshot"

// Fields flattens a snapshot into placeholder values. Strings lose embedded
// newlines, floats get two decimals and integers are plain decimal.
func Fields(s *snapshot.Snapshot) map[string]string {
	m := s.Memory
	p := s.Packages
	return map[string]string{
		"hostname":            text(s.Hostname),
		"username":            text(s.Username),
		"system_architecture": text(s.SystemArchitecture),

		"os_name":        text(s.OS.Name),
		"os_pretty_name": text(s.OS.PrettyName),
		"os_version":     text(s.OS.Version),
		"os_id":          text(s.OS.ID),
		"os_id_like":     text(s.OS.IDLike),

		"kernel":         text(s.Kernel),
		"kernel_version": text(s.KernelVersion),

		"desktop_environment": text(s.Desktop.Environment),
		"gtk_theme":           text(s.Desktop.GTKTheme),
		"qt_theme":            text(s.Desktop.QTTheme),
		"shell":               text(s.Desktop.Shell),
		"terminal":            text(s.Desktop.Terminal),

		"packages":         integer(p.Total),
		"dpkg_packages":    integer(p.Dpkg),
		"pacman_packages":  integer(p.Pacman),
		"snap_packages":    integer(p.Snap),
		"flatpak_packages": integer(p.Flatpak),
		"apt_packages":     integer(p.Apt),
		"dnf_packages":     integer(p.Dnf),

		"total_memory_kb":      integer(m.TotalKB),
		"total_memory_mb":      integer(m.TotalMB),
		"total_memory":         decimal(m.TotalGB),
		"used_memory_kb":       integer(m.UsedKB),
		"used_memory_mb":       integer(m.UsedMB),
		"used_memory":          decimal(m.UsedGB),
		"available_memory_kb":  integer(m.AvailableKB),
		"available_memory_mb":  integer(m.AvailableMB),
		"available_memory":     decimal(m.AvailableGB),
		"memory_usage_percent": decimal(m.UsagePercent),

		"swap_total_kb": integer(m.SwapTotalKB),
		"swap_free_kb":  integer(m.SwapFreeKB),
		"swap_used_kb":  integer(m.SwapUsedKB),
		"swap_total_mb": integer(m.SwapTotalMB),
		"swap_used_mb":  integer(m.SwapUsedMB),
		"swap_total":    decimal(m.SwapTotalGB),
		"swap_used":     decimal(m.SwapUsedGB),
	}
}

// FieldNames lists the snapshot placeholder names.
func FieldNames() []string {
	fields := Fields(&snapshot.Snapshot{})
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	return names
}
