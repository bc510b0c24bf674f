// Package telemetry records what a drawing run did: every turtle command
// with the pen state it produced, plus a snapshot of the configuration.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/turtlesoup/config"
)

// OutputManager handles structured run output with CSV logging.
// A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir          string
	commandsFile *os.File

	// Track if headers have been written
	commandsHeaderWritten bool
	written               int
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	commandsPath := filepath.Join(dir, "commands.csv")
	f, err := os.Create(commandsPath)
	if err != nil {
		return nil, fmt.Errorf("creating commands.csv: %w", err)
	}
	om.commandsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteCommands appends command records to commands.csv.
func (om *OutputManager) WriteCommands(records []CommandRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}

	if !om.commandsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.commandsFile); err != nil {
			return fmt.Errorf("writing commands: %w", err)
		}
		om.commandsHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.commandsFile); err != nil {
			return fmt.Errorf("writing commands: %w", err)
		}
	}
	om.written += len(records)

	return nil
}

// Written returns the number of command records written.
func (om *OutputManager) Written() int {
	if om == nil {
		return 0
	}
	return om.written
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	if om.commandsFile != nil {
		return om.commandsFile.Close()
	}
	return nil
}
