package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openbootdotdev/synap/internal/config"
)

const LocalFileName = "snapshot.json"

func LocalPath(h *config.Host) string {
	dir := h.AppDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, LocalFileName)
}

// SaveLocal writes the snapshot as indented JSON (temp file + rename).
func SaveLocal(path string, snap *Snapshot) error {
	if path == "" {
		return fmt.Errorf("no snapshot path: config directory unknown")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename snapshot file: %w", err)
	}

	return nil
}

func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("snapshot file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}

	if snap.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported snapshot version: %d", snap.Version)
	}

	// saved files may be hand-edited; totals are never trusted
	snap.Normalize()

	return &snap, nil
}
