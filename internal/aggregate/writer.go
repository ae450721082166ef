package aggregate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"statusboard-srv/internal/source"
)

// Write replaces the configured output file with the snapshot.
func (r *Runner) Write(snap *source.Snapshot) error {
	return WriteSnapshot(r.cfg.Fetch.OutputFile, snap)
}

// WriteSnapshot writes the snapshot to path atomically: the document is
// staged in a temp file in the same directory and renamed over the target,
// so a failed write leaves the previous document untouched and readers never
// observe a partial file.
func WriteSnapshot(path string, snap *source.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("stage snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
