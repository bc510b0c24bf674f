package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/turtlesoup/config"
	"github.com/pthm-cable/turtlesoup/turtle"
)

func TestNilOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)

	assert.NoError(t, om.WriteCommands([]CommandRecord{{Drawing: "x"}}))
	assert.NoError(t, om.WriteConfig(nil))
	assert.NoError(t, om.Close())
	assert.Equal(t, "", om.Dir())
	assert.Zero(t, om.Written())
}

func TestCommandLog(t *testing.T) {
	log := NewCommandLog("square", turtle.NewPen(r2.Vec{}))
	turtle.DrawSquare(log, 10)

	records := log.Records()
	require.Len(t, records, 8)

	assert.Equal(t, "forward", records[0].Kind)
	assert.InDelta(t, 10, records[0].Y, 1e-9)
	assert.Equal(t, "turn", records[1].Kind)
	assert.Equal(t, 90.0, records[1].Heading)
	assert.Equal(t, 7, records[7].Index)
	assert.Equal(t, 0.0, records[7].Heading)
	assert.Len(t, log.Pen().Trail(), 4)
}

func TestWriteCommands(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	log := NewCommandLog("square", turtle.NewPen(r2.Vec{}))
	turtle.DrawSquare(log, 10)
	require.NoError(t, om.WriteCommands(log.Records()[:4]))
	require.NoError(t, om.WriteCommands(log.Records()[4:]))

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, om.WriteConfig(cfg))
	require.NoError(t, om.Close())
	assert.Equal(t, 8, om.Written())

	data, err := os.ReadFile(filepath.Join(dir, "commands.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 9, "header written once")
	assert.Equal(t, "drawing,index,kind,value,x,y,heading", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "square,0,forward,10,"))

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}
