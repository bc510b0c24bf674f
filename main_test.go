package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/turtlesoup/config"
	"github.com/pthm-cable/turtlesoup/turtle"
)

func loadDefaults(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func TestBuildSpecs(t *testing.T) {
	cfg := loadDefaults(t)

	specs, err := buildSpecs(cfg, false)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "art", specs[0].Name)

	specs, err = buildSpecs(cfg, true)
	require.NoError(t, err)
	require.Len(t, specs, len(cfg.Gallery.Programs))
	for i, spec := range specs {
		assert.Equal(t, cfg.Gallery.Programs[i], spec.Name)
	}
}

func TestBuildSpecsErrors(t *testing.T) {
	cfg := loadDefaults(t)
	cfg.Program.Name = "spiral"
	_, err := buildSpecs(cfg, false)
	assert.ErrorIs(t, err, turtle.ErrUnknownProgram)

	cfg = loadDefaults(t)
	cfg.Program.Name = "path"
	_, err = buildSpecs(cfg, false)
	assert.Error(t, err, "path needs a waypoint file")

	cfg.Program.Waypoints = filepath.Join(t.TempDir(), "missing.csv")
	_, err = buildSpecs(cfg, false)
	assert.Error(t, err)
}

func TestBuildSpecsWaypointFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y,forward\n0,0,\n0,2,\n2,2,\n"), 0o644))

	cfg := loadDefaults(t)
	cfg.Program.Name = "path"
	cfg.Program.Waypoints = path

	specs, err := buildSpecs(cfg, false)
	require.NoError(t, err)
	require.Len(t, specs, 1)

	commands, err := turtle.Record(specs[0].Program)
	require.NoError(t, err)
	assert.Equal(t, []turtle.Command{
		turtle.Turn(0), turtle.Forward(50),
		turtle.Turn(90), turtle.Forward(50),
	}, commands)
}

func TestRunHeadlessWritesOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := loadDefaults(t)
	cfg.Output.Dir = dir

	specs, err := buildSpecs(cfg, true)
	require.NoError(t, err)
	require.NoError(t, runHeadless(cfg, specs))

	data, err := os.ReadFile(filepath.Join(dir, "commands.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "drawing,index,kind,value,x,y,heading", lines[0])
	assert.Greater(t, len(lines), 1)

	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
}

func TestRunHeadlessWithoutOutput(t *testing.T) {
	cfg := loadDefaults(t)
	specs, err := buildSpecs(cfg, false)
	require.NoError(t, err)
	assert.NoError(t, runHeadless(cfg, specs))
}
