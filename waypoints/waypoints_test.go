package waypoints

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/turtlesoup/geometry"
)

func TestLoad(t *testing.T) {
	table, err := Load(strings.NewReader("x,y\n0,0\n0,2\n3,6\n"))
	require.NoError(t, err)

	assert.Equal(t, []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 6}}, table.Points())
	assert.Equal(t, []int{20, 50}, table.Lengths(10))
}

func TestLoadForwardColumn(t *testing.T) {
	table, err := Load(strings.NewReader("x,y,forward\n0,0,7\n0,2,\n3,6,0\n"))
	require.NoError(t, err)

	assert.Equal(t, []int{7, 5}, table.Lengths(1))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader("x,y\n1,1\n"))
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = Load(strings.NewReader("x,y,forward\n0,0,abc\n1,1,2\n"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("x,y,forward\n0,0,-3\n1,1,2\n"))
	assert.Error(t, err)

	_, err = LoadFile("does-not-exist.csv")
	assert.Error(t, err)
}

func TestPersonalArt(t *testing.T) {
	art := PersonalArt()
	require.Len(t, art.Rows, 20)

	points := art.Points()
	assert.Equal(t, geometry.Point{X: 0, Y: 0}, points[0])
	assert.Equal(t, geometry.Point{X: 6, Y: 0}, points[len(points)-1])

	lengths := art.Lengths(25)
	require.Len(t, lengths, 19)
	assert.Equal(t, 150, lengths[0])
	assert.Equal(t, 112, lengths[5])
	assert.Equal(t, 71, lengths[18])
}

func TestWriteRoundTripsRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PersonalArt().Write(&buf))

	again, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, PersonalArt().Rows, again.Rows)
}
