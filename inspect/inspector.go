// Package inspect dumps the UI state as JSON so tooling can follow the slider
// without looking at the screen.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar turns inspection on when set to "1".
const EnvVar = "RL_INSPECT"

// Introspectable is implemented by UI components that can report their state.
type Introspectable interface {
	// InspectNode returns a structured representation of this component.
	InspectNode() *Node
}

var (
	mu          sync.Mutex
	enabled     bool
	enabledOnce sync.Once
	inspectFile string
)

func detect() {
	enabledOnce.Do(func() {
		if os.Getenv(EnvVar) == "1" {
			enabled = true
			inspectFile = filepath.Join(os.TempDir(), "rangeline-inspect.json")
		}
	})
}

// IsEnabled returns true if inspection mode is active.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	detect()
	return enabled
}

// Enable turns inspection on and sends snapshots to path. An empty path
// turns it off.
func Enable(path string) {
	mu.Lock()
	defer mu.Unlock()
	detect()
	enabled = path != ""
	inspectFile = path
}

// GetInspectFile returns the path to the inspection output file.
func GetInspectFile() string {
	mu.Lock()
	defer mu.Unlock()
	detect()
	if !enabled {
		return ""
	}
	return inspectFile
}

// WriteSnapshot writes a snapshot to the inspection file. It is a no-op when
// inspection is off.
func WriteSnapshot(snapshot *Snapshot) error {
	path := GetInspectFile()
	if path == "" {
		return nil
	}
	return WriteSnapshotToPath(snapshot, path)
}

// WriteSnapshotToPath writes a snapshot to a specific path.
func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}
