package snapshot

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/openbootdotdev/synap/internal/config"
)

// ParseMeminfo extracts the numeric kB value of every "Key: value kB" line.
// Lines whose first value token is not an integer are skipped.
func ParseMeminfo(content string) map[string]int64 {
	values := make(map[string]int64)
	for _, line := range strings.Split(content, "\n") {
		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			continue
		}
		values[strings.TrimSpace(key)] = v
	}
	return values
}

// CaptureMemory reads RAM and swap figures. MemTotal and MemAvailable are
// mandatory; swap lines are optional and default to zero.
func CaptureMemory(h *config.Host) (MemorySnapshot, error) {
	data, err := os.ReadFile(h.MeminfoPath)
	if err != nil {
		return MemorySnapshot{}, required("meminfo", err)
	}

	values := ParseMeminfo(string(data))
	total, ok := values["MemTotal"]
	if !ok {
		return MemorySnapshot{}, required("meminfo", fmt.Errorf("MemTotal not found in %s", h.MeminfoPath))
	}
	available, ok := values["MemAvailable"]
	if !ok {
		return MemorySnapshot{}, required("meminfo", fmt.Errorf("MemAvailable not found in %s", h.MeminfoPath))
	}

	mem := NewMemory(total, available)

	swapTotal, hasTotal := values["SwapTotal"]
	swapFree, hasFree := values["SwapFree"]
	if hasTotal && hasFree {
		mem = mem.WithSwap(swapTotal, swapFree)
	} else {
		h.Logf("swap figures missing from %s", h.MeminfoPath)
	}

	return mem, nil
}
